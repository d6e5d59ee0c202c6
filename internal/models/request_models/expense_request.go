package request_models

type CreateExpenseRequest struct {
	Title         string  `json:"title" binding:"required"`
	SpentBy       string  `json:"spentBy" binding:"required"`
	TripID        string  `json:"tripId"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Category      string  `json:"category" binding:"required"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
}

type UpdateExpenseRequest struct {
	Title         *string  `json:"title"`
	SpentBy       *string  `json:"spentBy"`
	Amount        *float64 `json:"amount"`
	Category      *string  `json:"category"`
	Description   *string  `json:"description"`
	Date          *string  `json:"date"`
	PaymentMethod *string  `json:"paymentMethod"`
}

type ExpenseFilter struct {
	TripID    string
	Category  string
	StartDate string
	EndDate   string
	Limit     int
}
