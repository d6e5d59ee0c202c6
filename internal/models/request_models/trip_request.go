package request_models

type CreateTripRequest struct {
	Name        string  `json:"name" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
	Description string  `json:"description"`
}

type UpdateTripRequest struct {
	Name        *string  `json:"name"`
	Destination *string  `json:"destination"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Budget      *float64 `json:"budget"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
}
