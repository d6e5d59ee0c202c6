package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/services"
	"travelbuddy/pkg/utils"
)

type JournalController struct {
	journalService services.JournalServiceInterface
}

func NewJournalController(journalService services.JournalServiceInterface) *JournalController {
	return &JournalController{
		journalService: journalService,
	}
}

// Create godoc
// @Summary Create a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body request_models.CreateJournalRequest true "Journal payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /journal [post]
func (j *JournalController) Create(c *gin.Context) {
	var req request_models.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := j.journalService.CreateJournal(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Journal entry created successfully")
}

// List godoc
// @Summary List the user's journal entries
// @Tags Journal
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /journal [get]
func (j *JournalController) List(c *gin.Context) {
	resp, err := j.journalService.ListJournals(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Journal entries fetched successfully")
}

// ListPublic godoc
// @Summary Browse recent public journal entries
// @Tags Journal
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /journal/public [get]
func (j *JournalController) ListPublic(c *gin.Context) {
	resp, err := j.journalService.ListPublicJournals(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Public journal entries fetched successfully")
}

// Get godoc
// @Summary Get a journal entry
// @Tags Journal
// @Produce json
// @Param id path string true "Journal ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /journal/{id} [get]
func (j *JournalController) Get(c *gin.Context) {
	resp, err := j.journalService.GetJournal(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Journal entry fetched successfully")
}

// Update godoc
// @Summary Update a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param id path string true "Journal ID"
// @Param request body request_models.UpdateJournalRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /journal/{id} [put]
func (j *JournalController) Update(c *gin.Context) {
	var req request_models.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := j.journalService.UpdateJournal(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Journal entry updated successfully")
}

// Delete godoc
// @Summary Delete a journal entry
// @Tags Journal
// @Produce json
// @Param id path string true "Journal ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /journal/{id} [delete]
func (j *JournalController) Delete(c *gin.Context) {
	if err := j.journalService.DeleteJournal(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journal entry deleted successfully")
}
