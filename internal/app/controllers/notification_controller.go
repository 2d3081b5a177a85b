package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/app/models/dto"
	"github.com/adith/hostelcore/internal/app/queries"
	"github.com/adith/hostelcore/internal/app/services"
	"github.com/adith/hostelcore/internal/middleware"
)

// NotificationController handles role-scoped notification views
type NotificationController struct {
	notificationService *services.NotificationService
	queries             *queries.Queries
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService, q *queries.Queries) *NotificationController {
	return &NotificationController{notificationService: notificationService, queries: q}
}

// List returns the notifications visible to the authenticated role,
// with the unread count for the badge.
func (c *NotificationController) List(ctx *gin.Context) {
	role, _ := middleware.RoleFrom(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"notifications": c.queries.NotificationsFor(role),
		"unread":        c.queries.UnreadCount(role),
	}))
}

// Publish broadcasts a new notification. Staff only (route-gated).
func (c *NotificationController) Publish(ctx *gin.Context) {
	var req dto.PublishNotificationRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	role, _ := middleware.RoleFrom(ctx)
	notification, err := c.notificationService.Publish(services.PublishInput{
		Title:       req.Title,
		Message:     req.Message,
		Type:        models.NotificationType(req.Type),
		Priority:    req.Priority,
		TargetRoles: req.TargetRoles,
	}, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(notification))
}

// MarkRead flags one notification as read
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	if err := c.notificationService.MarkRead(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Notification marked as read"))
}
