package models

type NotificationType string

const (
	NotificationReminder  NotificationType = "reminder"
	NotificationEmergency NotificationType = "emergency"
	NotificationCommunity NotificationType = "community"
	NotificationSystem    NotificationType = "system"
	NotificationAlarm     NotificationType = "alarm"
)

type AppNotification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp int64            `json:"timestamp"`
	Read      bool             `json:"read"`
}

func (n AppNotification) EntityID() string { return n.ID }
