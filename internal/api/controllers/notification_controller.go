package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/services"
	"travelbuddy/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// Create godoc
// @Summary Create a notification for the authenticated user
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body request_models.CreateNotificationRequest true "Notification payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /notifications [post]
func (n *NotificationController) Create(c *gin.Context) {
	var req request_models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := n.notificationService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Notification created successfully")
}

// UnreadCount godoc
// @Summary Get the unread notification count
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/unread-count [get]
func (n *NotificationController) UnreadCount(c *gin.Context) {
	count, err := n.notificationService.UnreadCount(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"unreadCount": count}, "Unread count fetched successfully")
}

// List godoc
// @Summary List notifications with the unread count
// @Tags Notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {object} utils.APIResponse
// @Router /notifications [get]
func (n *NotificationController) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	resp, err := n.notificationService.List(c.Request.Context(), c.GetString("user_id"), unreadOnly)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Notifications fetched successfully")
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id}/read [put]
func (n *NotificationController) MarkRead(c *gin.Context) {
	if err := n.notificationService.MarkRead(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification marked as read")
}

// MarkAllRead godoc
// @Summary Mark every notification as read
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/read-all [put]
func (n *NotificationController) MarkAllRead(c *gin.Context) {
	if err := n.notificationService.MarkAllRead(c.Request.Context(), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "All notifications marked as read")
}

// Delete godoc
// @Summary Delete a notification
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id} [delete]
func (n *NotificationController) Delete(c *gin.Context) {
	if err := n.notificationService.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification deleted successfully")
}
