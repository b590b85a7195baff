package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/services"
	"github.com/siwes/interntrack/internal/middleware"
)

// NotificationController serves the caller's in-app notifications
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List returns the caller's recent notifications
// @Summary My notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of notifications (default and max 50)"
// @Success 200 {object} dto.APIResponse{data=[]models.Notification}
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "limit must be a positive number").WithField("limit")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = parsed
	}

	notifications, err := c.notificationService.ListNotifications(ctx.Request.Context(), id, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notifications))
}

// MarkRead marks one notification as read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse "Notification not found"
// @Router /notifications/{id}/read [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	notificationID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.notificationService.MarkRead(ctx.Request.Context(), id, notificationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "notification marked as read"}))
}
