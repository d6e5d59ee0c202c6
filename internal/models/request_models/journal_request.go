package request_models

type CreateJournalRequest struct {
	Title       string   `json:"title" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	TripDate    string   `json:"tripDate" binding:"required"`
	Notes       string   `json:"notes" binding:"required"`
	Images      []string `json:"images" binding:"required"`
	IsPublic    bool     `json:"isPublic"`
}

type UpdateJournalRequest struct {
	Title       *string   `json:"title"`
	Destination *string   `json:"destination"`
	TripDate    *string   `json:"tripDate"`
	Notes       *string   `json:"notes"`
	Images      *[]string `json:"images"`
	IsPublic    *bool     `json:"isPublic"`
}
