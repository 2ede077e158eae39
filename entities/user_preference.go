package entities

import "time"

type JobTablePreference struct {
	VisibleColumns []string `json:"visibleColumns"`
	Sort           string   `json:"sort"`
	HideFinished   bool     `json:"hideFinished"`
}

// UserPreference holds every persisted UI preference of one user. Version is
// bumped on each save.
type UserPreference struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	UserID    uint               `json:"userId" gorm:"not null;uniqueIndex:uq_user_preferences_user_id"`
	Version   int                `json:"version" gorm:"not null;default:0"`
	JobTable  JobTablePreference `json:"jobTable" gorm:"type:text;serializer:json"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
