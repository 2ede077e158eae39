package entities

import (
	"github.com/google/uuid"
	"job-dashboard/constant"
	"time"
)

// Notification is created once per job event; EventID makes redelivered
// events a no-op.
type Notification struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	EventID     uuid.UUID          `json:"eventId" gorm:"type:varchar(36);not null;uniqueIndex:uq_notifications_event_id"`
	Type        constant.EventType `json:"type" gorm:"type:varchar(64);not null"`
	JobID       *uint              `json:"jobId" gorm:"index:idx_notifications_job_id"`
	Title       string             `json:"title" gorm:"type:varchar(255);not null"`
	Content     string             `json:"content" gorm:"type:text"`
	CreatedByID uint               `json:"createdById"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}

type UserNotification struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	UserID         uint          `json:"userId" gorm:"not null;uniqueIndex:uq_user_notifications_user_notification"`
	NotificationID uint          `json:"notificationId" gorm:"not null;uniqueIndex:uq_user_notifications_user_notification"`
	Notification   *Notification `json:"notification,omitempty" gorm:"foreignKey:NotificationID"`
	ReadAt         *time.Time    `json:"readAt"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func (UserNotification) TableName() string {
	return "user_notifications"
}
