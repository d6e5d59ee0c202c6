package response_models

type JournalResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Destination string   `json:"destination"`
	TripDate    string   `json:"tripDate"`
	Notes       string   `json:"notes"`
	Images      []string `json:"images"`
	IsPublic    bool     `json:"isPublic"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}
