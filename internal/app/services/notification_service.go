package services

import (
	"strings"
	"time"

	"github.com/adith/hostelcore/internal/app/models"
	"github.com/adith/hostelcore/internal/pkg/apperrors"
	"github.com/adith/hostelcore/internal/store"
)

// NotificationService publishes dashboard notifications and handles the
// single post-creation mutation: mark-as-read.
type NotificationService struct {
	store *store.Store
}

// NewNotificationService creates a new notification service
func NewNotificationService(s *store.Store) *NotificationService {
	return &NotificationService{store: s}
}

// PublishInput carries a new notification. TargetRoles may contain role
// tags or the "all" wildcard; empty defaults to "all".
type PublishInput struct {
	Title       string
	Message     string
	Type        models.NotificationType
	Priority    string
	TargetRoles []string
}

// Publish creates a notification. Staff only.
func (n *NotificationService) Publish(in PublishInput, role models.RoleType) (*models.Notification, error) {
	if !role.IsStaff() {
		return nil, apperrors.NewForbiddenError("only hostel staff publish notifications")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperrors.NewValidationError("title is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, apperrors.NewValidationError("message is required")
	}
	targets := in.TargetRoles
	if len(targets) == 0 {
		targets = []string{models.TargetAllRoles}
	}

	notification := models.Notification{
		ID:          n.store.NextID(store.PrefixNotice),
		Title:       strings.TrimSpace(in.Title),
		Message:     strings.TrimSpace(in.Message),
		Type:        in.Type,
		Priority:    in.Priority,
		Timestamp:   time.Now(),
		TargetRoles: targets,
	}
	n.store.Notifications.Add(notification)
	return &notification, nil
}

// MarkRead flags a notification as read
func (n *NotificationService) MarkRead(id string) error {
	if !n.store.Notifications.Update(id, func(m *models.Notification) { m.Read = true }) {
		return apperrors.NewResourceNotFoundError("notification not found")
	}
	return nil
}
