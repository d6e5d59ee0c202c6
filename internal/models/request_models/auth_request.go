package request_models

type SignUpRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName      *string `json:"firstName"`
	ProfilePicture *string `json:"profilePicture"`
	BudgetRange    *string `json:"budgetRange"`
	TravelStyle    *string `json:"travelStyle"`
}
