package request_models

// GenerateItineraryRequest carries the trip preferences the planning form
// submits. Dates are calendar dates ("2024-01-10"); the day count is always
// derived server-side from the range, inclusive of both endpoints.
type GenerateItineraryRequest struct {
	Destination   string   `json:"destination" binding:"required"`
	StartingCity  string   `json:"startingCity"`
	StartDate     string   `json:"startDate" binding:"required"`
	EndDate       string   `json:"endDate" binding:"required"`
	Travelers     int      `json:"travelers"`
	Budget        string   `json:"budget"`
	Themes        []string `json:"themes"`
	Pace          string   `json:"pace"` // relaxed | balanced | intense
	Weather       string   `json:"weather"`
	Accommodation []string `json:"accommodation"`
	Food          []string `json:"food"`
	Transport     []string `json:"transport"`
	Additional    string   `json:"additional"`
}
