package dto

import (
	"job-dashboard/constant"
	"time"
)

type StatusSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
	ThumbnailUrl string `json:"thumbnailUrl,omitempty"`
	Order        int    `json:"order"`
}

type UserSummary struct {
	ID          uint   `json:"id"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar,omitempty"`
}

// ActivityLogEntry is one rendered audit row. The typed fields are filled
// depending on ActivityType.
type ActivityLogEntry struct {
	ID              uint                  `json:"id"`
	JobId           uint                  `json:"jobId"`
	FieldName       string                `json:"fieldName"`
	ActivityType    constant.ActivityType `json:"activityType"`
	PreviousValue   string                `json:"previousValue"`
	CurrentValue    string                `json:"currentValue"`
	ModifiedAt      time.Time             `json:"modifiedAt"`
	ModifiedBy      *UserSummary          `json:"modifiedBy"`
	PreviousStatus  *StatusSummary        `json:"previousStatus,omitempty"`
	CurrentStatus   *StatusSummary        `json:"currentStatus,omitempty"`
	PreviousMembers []UserSummary         `json:"previousMembers,omitempty"`
	CurrentMembers  []UserSummary         `json:"currentMembers,omitempty"`
}
