package db_models

type Account struct {
	BaseModel
	FirstName      string
	Email          string `gorm:"uniqueIndex"`
	PasswordHash   string
	ProfilePicture string

	// Saved planning preferences
	BudgetRange string
	TravelStyle string // adventure | leisure | cultural | food-focused

	Trips       []Trip
	Itineraries []Itinerary
}
