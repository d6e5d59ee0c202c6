package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingDestination = errors.New("destination is required")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrInvalidTravelers   = errors.New("invalid traveler count")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTripNotFound         = errors.New("trip not found")
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrJournalNotFound      = errors.New("journal not found")
	ErrJournalPrivate       = errors.New("journal is private")
	ErrPostNotFound         = errors.New("post not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrCommentNotOwned      = errors.New("comment belongs to another account")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrItineraryNotFound    = errors.New("itinerary not found")

	// Generation failures stay distinct so a caller can tell a retryable
	// parse problem from a provider outage.
	ErrGenerationParse    = errors.New("failed to parse generated itinerary")
	ErrGenerationProvider = errors.New("itinerary provider call failed")

	ErrDatabaseError = errors.New("database error")
)
