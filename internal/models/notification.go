package models

import (
	"time"
)

// NotificationType tags a notification event.
type NotificationType string

// Notification type constants
const (
	NotifyTypeTip     NotificationType = "tip"
	NotifyTypeVote    NotificationType = "vote"
	NotifyTypeComment NotificationType = "comment"
	NotifyTypeFollow  NotificationType = "follow"
)

// Notification is a directed event record shown to the viewer.
// Amount is set only for tip notifications.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	FromUser  User             `json:"fromUser"`
	Amount    float64          `json:"amount,omitempty"`
	PostID    string           `json:"postId,omitempty"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
	IsRead    bool             `json:"isRead"`
}
