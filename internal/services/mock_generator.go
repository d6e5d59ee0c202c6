package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/pkg/utils"
)

// mockItineraryGenerator synthesizes a full itinerary from the static
// destination table. It is a pure function of its inputs: the same
// preferences always produce the same document, which keeps the path
// testable and cacheable.
type mockItineraryGenerator struct{}

func NewMockItineraryGenerator() ItineraryGenerator {
	return &mockItineraryGenerator{}
}

func (g *mockItineraryGenerator) Generate(_ context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, error) {
	start, totalDays, err := deriveTripWindow(req)
	if err != nil {
		return nil, err
	}

	destination := strings.TrimSpace(req.Destination)
	knowledge := lookupDestination(destination)

	travelers := req.Travelers
	if travelers < 1 {
		travelers = 2
	}

	startingCity := req.StartingCity
	if startingCity == "" {
		startingCity = "Mumbai"
	}

	budget := req.Budget
	if budget == "" {
		budget = "₹25,000 - ₹35,000"
	}

	themes := strings.Join(req.Themes, ", ")
	if themes == "" {
		themes = "adventure and relaxation"
	}

	doc := &response_models.ItineraryDocument{
		TripOverview: response_models.TripOverview{
			Destination:          destination,
			TotalDays:            totalDays,
			StartingCity:         startingCity,
			TotalEstimatedBudget: budget,
			BestTimeToVisit:      knowledge.BestTimeToVisit,
			TravelSummary: fmt.Sprintf(
				"Experience the best of %s with this %d-day itinerary covering its landmark sights, culture, and local cuisine. Perfect for %d travelers seeking %s.",
				destination, totalDays, travelers, themes),
		},
		BudgetBreakdown: buildBudgetBreakdown(totalDays),
		PackingList:     buildPackingList(),
		LocalTips:       buildLocalTips(knowledge),
		WeatherForecast: response_models.WeatherForecast{
			AverageTemperature: knowledge.AverageTemperature,
			Conditions:         knowledge.Conditions,
			WhatToExpect:       knowledge.WhatToExpect,
		},
	}

	doc.DailyItinerary = make([]response_models.DayPlan, 0, totalDays)
	for day := 1; day <= totalDays; day++ {
		date := utils.AddDays(start, day-1)
		doc.DailyItinerary = append(doc.DailyItinerary, synthesizeDayPlan(day, totalDays, date, destination, knowledge))
	}

	enforceDistinctNeighborCosts(doc)

	return doc, nil
}

// synthesizeDayPlan builds one day of the plan. Theme and locations rotate
// by index arithmetic so consecutive days tend to visit different spots
// without any randomness. Day 1 gets an arrival morning, the final day a
// departure evening; a 1-day trip gets both.
func synthesizeDayPlan(dayNum, totalDays int, date time.Time, destination string, knowledge destinationKnowledge) response_models.DayPlan {
	isFirstDay := dayNum == 1
	isLastDay := dayNum == totalDays

	theme := knowledge.Themes[(dayNum-1)%len(knowledge.Themes)]
	loc1 := knowledge.Locations[(dayNum*2-2)%len(knowledge.Locations)]
	loc2 := knowledge.Locations[(dayNum*2-1)%len(knowledge.Locations)]
	loc3 := knowledge.Locations[(dayNum*2)%len(knowledge.Locations)]

	title := theme
	var morning, evening response_models.ActivityBlock

	if isFirstDay {
		title = "Arrival and Local Exploration"
		morning = response_models.ActivityBlock{
			Time:          "10:00 AM",
			Activity:      "Arrival and Check-in",
			Location:      "Hotel",
			Duration:      "2 hours",
			Description:   "Arrive at your destination, check into your hotel, freshen up and get ready for the trip ahead. Take some time to relax after your journey.",
			EstimatedCost: utils.FormatINR(500),
			Tips:          "Book airport/station transfer in advance for a hassle-free arrival",
		}
	} else {
		morning = response_models.ActivityBlock{
			Time:          "08:00 AM",
			Activity:      loc1.Activity,
			Location:      loc1.Name,
			Duration:      "3 hours",
			Description: fmt.Sprintf(
				"Start your day early with a visit to %s. Experience the authentic charm and take in the views. This is one of the must-visit spots in %s.",
				loc1.Name, destination),
			EstimatedCost: utils.FormatINR(600 + dayNum*100),
			Tips:          "Arrive early to avoid crowds and get the best experience",
		}
	}

	afternoon := response_models.ActivityBlock{
		Time:          "01:00 PM",
		Activity:      loc2.Activity,
		Location:      loc2.Name,
		Duration:      "3-4 hours",
		Description: fmt.Sprintf(
			"After lunch, head to %s for an unforgettable experience. This location offers unique attractions and plenty of photo opportunities. Don't miss the local specialties here.",
			loc2.Name),
		EstimatedCost: utils.FormatINR(800 + dayNum*150),
		Tips:          "Carry water and wear comfortable shoes",
	}

	if isLastDay {
		if isFirstDay {
			title = "Arrival, Highlights and Departure"
		} else {
			title = "Departure Day"
		}
		evening = response_models.ActivityBlock{
			Time:          "05:00 PM",
			Activity:      "Departure Preparation",
			Location:      "Hotel Area",
			Duration:      "2 hours",
			Description:   "Enjoy some last-minute shopping for souvenirs, pack your bags, and prepare for departure. Take a final stroll to soak in the memories of the trip.",
			EstimatedCost: utils.FormatINR(400),
			Tips:          "Keep some buffer time for airport/station check-in",
		}
	} else {
		evening = response_models.ActivityBlock{
			Time:          "06:00 PM",
			Activity:      loc3.Activity,
			Location:      loc3.Name,
			Duration:      "2-3 hours",
			Description: fmt.Sprintf(
				"As the sun sets, visit %s for a relaxed evening. Soak in the views and enjoy the local evening vibe. A good time for photography.",
				loc3.Name),
			EstimatedCost: utils.FormatINR(500 + dayNum*120),
			Tips:          "Sunset timing varies by season, check local timings",
		}
	}

	baseCost := 2000 + dayNum*500
	dailyCost := baseCost + costVariationDelta(dayNum-1, totalDays)

	return response_models.DayPlan{
		Day:       dayNum,
		Date:      utils.FormatDateOnly(date),
		Title:     title,
		Theme:     theme,
		Morning:   morning,
		Afternoon: afternoon,
		Evening:   evening,
		Accommodation: response_models.Accommodation{
			HotelName:     fmt.Sprintf("%s Heritage Resort", destination),
			Location:      "Near the main sights",
			EstimatedCost: utils.FormatINR(2500 + dayNum*200),
			Category:      "Mid-Range",
			Amenities:     []string{"Free WiFi", "Swimming Pool", "Breakfast Included", "Air Conditioning"},
		},
		FoodRecommendations: []response_models.FoodRecommendation{
			{
				MealType:      "Breakfast",
				Restaurant:    "Hotel Restaurant",
				Dishes:        []string{"Local breakfast platter", "Fresh fruits", "Coffee"},
				EstimatedCost: utils.FormatINR(300),
				Location:      "Hotel",
			},
			{
				MealType:      "Lunch",
				Restaurant:    knowledge.Restaurants[dayNum%len(knowledge.Restaurants)],
				Dishes:        []string{"Regional curry", "Rice", "Local specialties"},
				EstimatedCost: utils.FormatINR(600 + dayNum*50),
				Location:      "Near main attractions",
			},
			{
				MealType:      "Dinner",
				Restaurant:    knowledge.Restaurants[(dayNum+1)%len(knowledge.Restaurants)],
				Dishes:        []string{"Traditional thali", "Desserts", "Beverages"},
				EstimatedCost: utils.FormatINR(700 + dayNum*50),
				Location:      "City center",
			},
		},
		DailyEstimatedCost: utils.FormatINR(dailyCost),
		TravelNotes: fmt.Sprintf(
			"Day %d focuses on %s. Start early to make the most of your day. Carry essentials and stay hydrated.",
			dayNum, strings.ToLower(theme)),
	}
}

func buildBudgetBreakdown(totalDays int) response_models.BudgetBreakdown {
	perDay := func(total int) string {
		return utils.FormatINR(total / totalDays)
	}
	return response_models.BudgetBreakdown{
		Accommodation: response_models.BudgetLine{
			Total:     utils.FormatINR(12000),
			PerDayAvg: perDay(12000),
		},
		Food: response_models.BudgetLine{
			Total:     utils.FormatINR(8000),
			PerDayAvg: perDay(8000),
		},
		Activities: response_models.BudgetLine{
			Total:     utils.FormatINR(6000),
			PerDayAvg: perDay(6000),
		},
		Transport: response_models.TransportBudget{
			Intercity: utils.FormatINR(4000),
			Local:     utils.FormatINR(2000),
		},
		Miscellaneous:  utils.FormatINR(3000),
		TotalEstimated: utils.FormatINR(35000),
	}
}

func buildPackingList() response_models.PackingList {
	return response_models.PackingList{
		Essentials: []string{
			"Sunscreen (SPF 50+)",
			"Insect repellent",
			"Basic first-aid kit",
			"Power bank and chargers",
			"Reusable water bottle",
		},
		Clothing: []string{
			"Light cotton clothes",
			"Comfortable walking shoes",
			"Sunglasses and hat",
			"Light jacket for evenings",
		},
		Accessories: []string{
			"Camera or phone with good storage",
			"Waterproof bag",
			"Day backpack",
		},
		Documents: []string{
			"ID proof (Aadhar/Passport)",
			"Hotel booking confirmations",
			"Travel insurance",
			"Emergency contacts list",
		},
	}
}

func buildLocalTips(knowledge destinationKnowledge) response_models.LocalTips {
	return response_models.LocalTips{
		Language:      knowledge.Language,
		Currency:      "Indian Rupee (₹)",
		BestTransport: knowledge.BestTransport,
		SafetyTips: []string{
			"Avoid isolated areas after dark",
			"Bargain at local markets",
			"Stay hydrated",
			"Keep valuables secured",
		},
		CulturalNotes: []string{
			"Dress modestly when visiting temples",
			"Remove footwear before entering religious sites",
			"Respect local customs and traditions",
		},
		EmergencyContacts: response_models.EmergencyContacts{
			Police:          "100",
			Ambulance:       "108",
			TouristHelpline: "1363",
		},
	}
}
