package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	v, _ := c.Get("trace_id")
	s, _ := v.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels to HTTP responses. Messages are
// short and human readable; internals never leak to the caller.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrMissingDestination),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidTravelers),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrJournalPrivate):
		RespondError(c, http.StatusForbidden, "This journal is private")
	case errors.Is(err, ErrCommentNotOwned):
		RespondError(c, http.StatusForbidden, "You cannot delete this comment")
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrExpenseNotFound),
		errors.Is(err, ErrJournalNotFound),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrNotificationNotFound),
		errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrGenerationParse):
		RespondError(c, http.StatusBadGateway, "Failed to parse AI response. Please try again.")
	case errors.Is(err, ErrGenerationProvider):
		RespondError(c, http.StatusServiceUnavailable, "Itinerary provider is unavailable. Please try again.")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
