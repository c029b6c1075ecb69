package models

import "time"

// NotificationType classifies a notification for the client's bell menu
type NotificationType string

const (
	NotificationOrder  NotificationType = "order"
	NotificationSystem NotificationType = "system"
	NotificationAlert  NotificationType = "alert"
	NotificationUpdate NotificationType = "update"
)

type Notification struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	UserID    uint             `json:"user_id" gorm:"not null"`
	User      User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Type      NotificationType `json:"type" gorm:"not null"`
	Message   string           `json:"message" gorm:"not null"`
	Read      bool             `json:"read" gorm:"default:false"`
	Link      string           `json:"link"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
