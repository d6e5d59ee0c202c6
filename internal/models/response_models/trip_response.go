package response_models

type TripResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Destination  string  `json:"destination"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Budget       float64 `json:"budget"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
	Description  string  `json:"description"`
	TotalSpent   float64 `json:"totalSpent"`
	Remaining    float64 `json:"remaining"`
	ExpenseCount int     `json:"expenseCount"`
}

type TripDetailResponse struct {
	TripResponse
	Expenses []ExpenseResponse `json:"expenses"`
}
