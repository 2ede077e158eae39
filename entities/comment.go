package entities

import (
	"gorm.io/gorm"
	"time"
)

type Comment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	JobID     uint           `json:"jobId" gorm:"not null;index:idx_comments_job_id"`
	AuthorID  uint           `json:"authorId" gorm:"not null"`
	Author    *User          `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Comment) TableName() string {
	return "comments"
}
