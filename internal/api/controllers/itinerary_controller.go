package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/services"
	"travelbuddy/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate godoc
// @Summary Generate a day-by-day itinerary from trip preferences
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip preferences"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /itinerary/generate [post]
func (i *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := i.itineraryService.GenerateItinerary(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Itinerary generated successfully")
}

// List godoc
// @Summary List the user's saved itineraries
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /itinerary [get]
func (i *ItineraryController) List(c *gin.Context) {
	resp, err := i.itineraryService.ListItineraries(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itineraries fetched successfully")
}

// Get godoc
// @Summary Get a saved itinerary with its full document
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id} [get]
func (i *ItineraryController) Get(c *gin.Context) {
	resp, err := i.itineraryService.GetItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary fetched successfully")
}

// ToggleFavorite godoc
// @Summary Toggle the favorite flag on an itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id}/favorite [put]
func (i *ItineraryController) ToggleFavorite(c *gin.Context) {
	favorite, err := i.itineraryService.ToggleFavorite(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"isFavorite": favorite}, "Favorite updated")
}

// Delete godoc
// @Summary Delete a saved itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id} [delete]
func (i *ItineraryController) Delete(c *gin.Context) {
	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
