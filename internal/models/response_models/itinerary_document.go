package response_models

// ItineraryDocument is the full structured trip plan returned to and stored
// for a user. Field names and nesting are the wire contract already encoded
// in stored documents; do not rename keys.
type ItineraryDocument struct {
	TripOverview    TripOverview    `json:"trip_overview"`
	DailyItinerary  []DayPlan       `json:"daily_itinerary"`
	BudgetBreakdown BudgetBreakdown `json:"budget_breakdown"`
	PackingList     PackingList     `json:"packing_list"`
	LocalTips       LocalTips       `json:"local_tips"`
	WeatherForecast WeatherForecast `json:"weather_forecast"`
}

type TripOverview struct {
	Destination          string `json:"destination"`
	TotalDays            int    `json:"total_days"`
	StartingCity         string `json:"starting_city"`
	TotalEstimatedBudget string `json:"total_estimated_budget"`
	BestTimeToVisit      string `json:"best_time_to_visit"`
	TravelSummary        string `json:"travel_summary"`
}

// DayPlan is one day's entry: morning/afternoon/evening blocks, lodging,
// meals and the day's aggregate cost.
type DayPlan struct {
	Day                 int                  `json:"day"`
	Date                string               `json:"date"`
	Title               string               `json:"title"`
	Theme               string               `json:"theme"`
	Morning             ActivityBlock        `json:"morning"`
	Afternoon           ActivityBlock        `json:"afternoon"`
	Evening             ActivityBlock        `json:"evening"`
	Accommodation       Accommodation        `json:"accommodation"`
	FoodRecommendations []FoodRecommendation `json:"food_recommendations"`
	DailyEstimatedCost  string               `json:"daily_estimated_cost"`
	TravelNotes         string               `json:"travel_notes"`
}

type ActivityBlock struct {
	Time          string `json:"time"`
	Activity      string `json:"activity"`
	Location      string `json:"location"`
	Duration      string `json:"duration"`
	Description   string `json:"description"`
	EstimatedCost string `json:"estimated_cost"`
	Tips          string `json:"tips"`
}

type Accommodation struct {
	HotelName     string   `json:"hotel_name"`
	Location      string   `json:"location"`
	EstimatedCost string   `json:"estimated_cost"`
	Category      string   `json:"category"` // Budget/Mid-Range/Luxury
	Amenities     []string `json:"amenities"`
}

type FoodRecommendation struct {
	MealType      string   `json:"meal_type"`
	Restaurant    string   `json:"restaurant"`
	Dishes        []string `json:"dishes"`
	EstimatedCost string   `json:"estimated_cost"`
	Location      string   `json:"location"`
}

type BudgetBreakdown struct {
	Accommodation  BudgetLine      `json:"accommodation"`
	Food           BudgetLine      `json:"food"`
	Activities     BudgetLine      `json:"activities"`
	Transport      TransportBudget `json:"transport"`
	Miscellaneous  string          `json:"miscellaneous"`
	TotalEstimated string          `json:"total_estimated"`
}

type BudgetLine struct {
	Total     string `json:"total"`
	PerDayAvg string `json:"per_day_avg"`
}

type TransportBudget struct {
	Intercity string `json:"intercity"`
	Local     string `json:"local"`
}

type PackingList struct {
	Essentials  []string `json:"essentials"`
	Clothing    []string `json:"clothing"`
	Accessories []string `json:"accessories"`
	Documents   []string `json:"documents"`
}

type LocalTips struct {
	Language          string            `json:"language"`
	Currency          string            `json:"currency"`
	BestTransport     string            `json:"best_transport"`
	SafetyTips        []string          `json:"safety_tips"`
	CulturalNotes     []string          `json:"cultural_notes"`
	EmergencyContacts EmergencyContacts `json:"emergency_contacts"`
}

type EmergencyContacts struct {
	Police          string `json:"police"`
	Ambulance       string `json:"ambulance"`
	TouristHelpline string `json:"tourist_helpline"`
}

type WeatherForecast struct {
	AverageTemperature string `json:"average_temperature"`
	Conditions         string `json:"conditions"`
	WhatToExpect       string `json:"what_to_expect"`
}
