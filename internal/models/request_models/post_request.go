package request_models

type CreatePostRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Destination string   `json:"destination"`
	Tags        []string `json:"tags"`
	ItineraryID string   `json:"itineraryId"`
	TripID      string   `json:"tripId"`
}

type UpdatePostRequest struct {
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Destination *string   `json:"destination"`
	Tags        *[]string `json:"tags"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type PostFeedFilter struct {
	Page        int
	Limit       int
	Destination string
	Tag         string
	Search      string
}
