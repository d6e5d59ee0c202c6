package services

import (
	"context"
	"time"

	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/models/response_models"
	"travelbuddy/pkg/utils"
)

// ItineraryGenerator is the strategy shared by the mock synthesizer and the
// external-model path; the route never branches on a provider flag itself.
type ItineraryGenerator interface {
	Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, error)
}

// deriveTripWindow parses the preference dates and returns the trip start
// plus the inclusive day count. End before start is rejected; end equal to
// start is a valid 1-day trip.
func deriveTripWindow(req request_models.GenerateItineraryRequest) (time.Time, int, error) {
	start, err := utils.ParseDateOnly(req.StartDate)
	if err != nil {
		return time.Time{}, 0, utils.ErrInvalidDateRange
	}
	end, err := utils.ParseDateOnly(req.EndDate)
	if err != nil {
		return time.Time{}, 0, utils.ErrInvalidDateRange
	}
	if end.Before(start) {
		return time.Time{}, 0, utils.ErrInvalidDateRange
	}
	return start, utils.InclusiveDayCount(start, end), nil
}
