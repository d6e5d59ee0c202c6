package response_models

type AccountResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	BudgetRange    string `json:"budgetRange,omitempty"`
	TravelStyle    string `json:"travelStyle,omitempty"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}
