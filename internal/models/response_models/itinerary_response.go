package response_models

// GenerateItineraryResponse pairs the generated document with its stored id.
type GenerateItineraryResponse struct {
	ItineraryID string             `json:"itineraryId"`
	Data        *ItineraryDocument `json:"data"`
}

// ItinerarySummary is one row of the "my itineraries" listing.
type ItinerarySummary struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	TotalDays   int    `json:"totalDays"`
	Travelers   int    `json:"travelers"`
	IsFavorite  bool   `json:"isFavorite"`
	CreatedAt   int64  `json:"createdAt"`
}
