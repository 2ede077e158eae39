package entities

import (
	"job-dashboard/constant"
	"time"
)

// JobActivityLog is append-only: rows are inserted next to the mutation they
// record and never updated or deleted.
type JobActivityLog struct {
	ID            uint                  `json:"id" gorm:"primaryKey"`
	JobID         uint                  `json:"jobId" gorm:"not null;index:idx_job_activity_logs_job_id"`
	FieldName     string                `json:"fieldName" gorm:"type:varchar(64);not null"`
	ActivityType  constant.ActivityType `json:"activityType" gorm:"type:varchar(32);not null"`
	PreviousValue string                `json:"previousValue" gorm:"type:text"`
	CurrentValue  string                `json:"currentValue" gorm:"type:text"`
	ModifiedByID  uint                  `json:"modifiedById" gorm:"not null"`
	ModifiedBy    *User                 `json:"modifiedBy,omitempty" gorm:"foreignKey:ModifiedByID"`
	ModifiedAt    time.Time             `json:"modifiedAt" gorm:"not null;index:idx_job_activity_logs_modified_at"`
}

func (JobActivityLog) TableName() string {
	return "job_activity_logs"
}
