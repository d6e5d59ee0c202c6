package response_models

type ExpenseResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	SpentBy         string  `json:"spentBy"`
	TripID          string  `json:"tripId,omitempty"`
	TripName        string  `json:"tripName,omitempty"`
	TripDestination string  `json:"tripDestination,omitempty"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Date            string  `json:"date"`
	Currency        string  `json:"currency"`
	PaymentMethod   string  `json:"paymentMethod"`
}

type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage string  `json:"percentage"`
}

type ExpenseStatsResponse struct {
	TotalAmount       float64             `json:"totalAmount"`
	TotalExpenses     int64               `json:"totalExpenses"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
}
