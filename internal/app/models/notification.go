package models

import "time"

// NotificationType groups notifications for dashboard filtering
type NotificationType string

const (
	NotifyComplaint   NotificationType = "complaint"
	NotifyLeave       NotificationType = "leave"
	NotifyFee         NotificationType = "fee"
	NotifyGeneral     NotificationType = "general"
	NotifyMaintenance NotificationType = "maintenance"
	NotifyFood        NotificationType = "food"
)

// TargetAllRoles is the wildcard target meaning every role sees the notification
const TargetAllRoles = "all"

// Notification is a broadcast message shown on dashboards. TargetRoles
// holds role tags (or the "all" wildcard). The only mutation after
// creation is marking it read.
type Notification struct {
	ID          string           `json:"id"`
	Title       string           `json:"title" example:"Water supply maintenance"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type" example:"maintenance"`
	Priority    string           `json:"priority" example:"High"`
	Timestamp   time.Time        `json:"timestamp"`
	Read        bool             `json:"read"`
	TargetRoles []string         `json:"targetRoles"`
}

// EntityID implements store.Entity
func (n Notification) EntityID() string { return n.ID }

// Targets reports whether the notification is visible to the given role
func (n Notification) Targets(role RoleType) bool {
	for _, t := range n.TargetRoles {
		if t == TargetAllRoles || t == string(role) {
			return true
		}
	}
	return false
}
