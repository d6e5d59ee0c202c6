package response_models

type PostResponse struct {
	ID          string            `json:"id"`
	AuthorName  string            `json:"authorName"`
	AuthorPhoto string            `json:"authorPhoto,omitempty"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Destination string            `json:"destination,omitempty"`
	Tags        []string          `json:"tags"`
	ItineraryID string            `json:"itineraryId,omitempty"`
	TripID      string            `json:"tripId,omitempty"`
	LikeCount   int               `json:"likeCount"`
	LikedByMe   bool              `json:"likedByMe"`
	ViewCount   int               `json:"viewCount"`
	Comments    []CommentResponse `json:"comments"`
	CreatedAt   int64             `json:"createdAt"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto,omitempty"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalPosts  int64 `json:"totalPosts"`
	HasMore     bool  `json:"hasMore"`
}

type PostFeedResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination Pagination     `json:"pagination"`
}
