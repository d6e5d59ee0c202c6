package services

// pointOfInterest is one visitable spot with the activity it is known for.
type pointOfInterest struct {
	Name     string
	Activity string
}

// destinationKnowledge seeds plausible content for the mock generator.
type destinationKnowledge struct {
	Themes      []string
	Locations   []pointOfInterest
	Restaurants []string

	Language        string
	BestTimeToVisit string
	BestTransport   string

	AverageTemperature string
	Conditions         string
	WhatToExpect       string
}

// destinationTable is read-only static data; lookups on unknown keys fall
// back to defaultKnowledge so synthesis never fails.
var destinationTable = map[string]destinationKnowledge{
	"Goa": {
		Themes: []string{"Beach Paradise", "Portuguese Heritage", "Water Sports", "Sunset Views", "Night Markets"},
		Locations: []pointOfInterest{
			{Name: "Baga Beach", Activity: "Beach hopping and water sports"},
			{Name: "Fort Aguada", Activity: "Historic fort exploration"},
			{Name: "Anjuna Flea Market", Activity: "Shopping and local crafts"},
			{Name: "Dudhsagar Falls", Activity: "Waterfall trekking"},
			{Name: "Old Goa Churches", Activity: "Heritage walk"},
		},
		Restaurants:        []string{"Fisherman's Wharf", "Pousada by the Beach", "Vinayak Family Restaurant", "Souza Lobo"},
		Language:           "Konkani, Hindi, and English are widely spoken",
		BestTimeToVisit:    "October to March (Pleasant weather, ideal for beach activities)",
		BestTransport:      "Rent a scooter for flexibility, or use app-based cabs",
		AverageTemperature: "25°C - 32°C",
		Conditions:         "Sunny with occasional sea breeze",
		WhatToExpect:       "Pleasant weather perfect for beach activities. Mornings are cooler, afternoons can be warm. Evenings bring a refreshing sea breeze.",
	},
	"Kerala": {
		Themes: []string{"Backwater Bliss", "Tea Gardens", "Ayurveda", "Wildlife", "Beach Relaxation"},
		Locations: []pointOfInterest{
			{Name: "Alleppey Backwaters", Activity: "Houseboat cruise"},
			{Name: "Munnar Tea Gardens", Activity: "Tea plantation visit"},
			{Name: "Periyar Wildlife Sanctuary", Activity: "Wildlife safari"},
			{Name: "Fort Kochi", Activity: "Heritage walk"},
			{Name: "Kovalam Beach", Activity: "Beach relaxation"},
		},
		Restaurants:        []string{"Dhe Puttu", "Paragon Restaurant", "Kayees Rahmathulla Hotel", "Villa Maya"},
		Language:           "Malayalam, Hindi, and English are widely spoken",
		BestTimeToVisit:    "September to March (Post-monsoon greenery, calm backwaters)",
		BestTransport:      "Pre-booked cabs between towns, ferries on the backwaters",
		AverageTemperature: "23°C - 31°C",
		Conditions:         "Humid with lush green surroundings",
		WhatToExpect:       "Warm, humid days with cool mornings in the hills. Short showers are possible; the backwaters are calmest before noon.",
	},
	"Rajasthan": {
		Themes: []string{"Royal Heritage", "Desert Safari", "Colorful Bazaars", "Palaces & Forts", "Cultural Shows"},
		Locations: []pointOfInterest{
			{Name: "Amber Fort", Activity: "Fort exploration"},
			{Name: "City Palace", Activity: "Royal palace tour"},
			{Name: "Jal Mahal", Activity: "Lake palace viewing"},
			{Name: "Thar Desert", Activity: "Camel safari"},
			{Name: "Hawa Mahal", Activity: "Palace photography"},
		},
		Restaurants:        []string{"Chokhi Dhani", "LMB", "Rawat Mishthan Bhandar", "1135 AD"},
		Language:           "Hindi, Rajasthani, and English are widely spoken",
		BestTimeToVisit:    "October to March (Cool days, ideal for forts and the desert)",
		BestTransport:      "Hired car with driver for intercity, auto-rickshaws in town",
		AverageTemperature: "15°C - 28°C",
		Conditions:         "Dry and sunny, cold desert nights",
		WhatToExpect:       "Clear sunny days suited to long fort walks. Carry layers; desert evenings turn cold quickly.",
	},
}

// defaultKnowledge serves destinations missing from the table. Names are
// deliberately generic so any destination string reads naturally.
var defaultKnowledge = destinationKnowledge{
	Themes: []string{"Local Highlights", "Cultural Discovery", "Markets & Cuisine", "Scenic Escapes", "Hidden Gems"},
	Locations: []pointOfInterest{
		{Name: "Old Town Quarter", Activity: "Heritage walk"},
		{Name: "Central Market", Activity: "Shopping and local crafts"},
		{Name: "City Viewpoint", Activity: "Panoramic sightseeing"},
		{Name: "Riverside Promenade", Activity: "Evening stroll"},
		{Name: "Heritage Museum", Activity: "Local history tour"},
	},
	Restaurants:        []string{"The Local Table", "Spice Route Kitchen", "Heritage Cafe", "Sunset Terrace"},
	Language:           "Hindi and English are widely spoken",
	BestTimeToVisit:    "October to March (Comfortable sightseeing weather)",
	BestTransport:      "App-based cabs and auto-rickshaws",
	AverageTemperature: "20°C - 30°C",
	Conditions:         "Mostly clear skies",
	WhatToExpect:       "Comfortable daytime weather for sightseeing. Mornings and evenings are the best time to be outdoors.",
}

// lookupDestination never fails; unknown keys get the default entry.
func lookupDestination(destination string) destinationKnowledge {
	if k, ok := destinationTable[destination]; ok {
		return k
	}
	return defaultKnowledge
}
