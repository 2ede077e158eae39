package repository

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"job-dashboard/entities"
	"time"
)

// CreateNotification stores the notification and its recipients. It reports
// false without writing when a notification for the same event exists.
func (r *repo) CreateNotification(ctx context.Context, notification *entities.Notification, userIds []uint) (bool, error) {
	created := false
	err := r.Transaction(ctx, func(ctx context.Context) error {
		db := r.GetDB(ctx)
		existing := &entities.Notification{}
		err := db.First(existing, "event_id = ?", notification.EventID).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := db.Create(notification).Error; err != nil {
			return err
		}
		rows := make([]entities.UserNotification, 0, len(userIds))
		for _, userId := range userIds {
			rows = append(rows, entities.UserNotification{UserID: userId, NotificationID: notification.ID})
		}
		if len(rows) > 0 {
			if err := db.Omit("Notification").Create(&rows).Error; err != nil {
				return err
			}
		}
		created = true
		return nil
	})
	return created, err
}

func (r *repo) ListUserNotifications(ctx context.Context, userId uint, unreadOnly bool) ([]*entities.UserNotification, error) {
	query := r.GetDB(ctx).Preload("Notification").Where("user_id = ?", userId)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}

	items := make([]*entities.UserNotification, 0)
	err := query.Order("created_at DESC").Order("id DESC").Limit(100).Find(&items).Error
	return items, err
}

func (r *repo) MarkNotificationRead(ctx context.Context, userId uint, id uint, at time.Time) error {
	result := r.GetDB(ctx).Model(&entities.UserNotification{}).
		Where("id = ? AND user_id = ?", id, userId).
		Update("read_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
