package entities

import (
	"gorm.io/gorm"
	"job-dashboard/constant"
	"time"
)

type Job struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	No               string            `json:"no" gorm:"type:varchar(32);not null;uniqueIndex:uq_jobs_no"`
	TypeID           *uint             `json:"typeId" gorm:"index:idx_jobs_type_id"`
	Type             *JobType          `json:"type,omitempty" gorm:"foreignKey:TypeID"`
	DisplayName      string            `json:"displayName" gorm:"type:varchar(255);not null"`
	ClientName       string            `json:"clientName" gorm:"type:varchar(255)"`
	Income           float64           `json:"income" gorm:"type:numeric(14,2);not null;default:0"`
	StaffCost        float64           `json:"staffCost" gorm:"type:numeric(14,2);not null;default:0"`
	Assignees        []User            `json:"assignees" gorm:"many2many:job_assignees;"`
	PaymentChannelID *uint             `json:"paymentChannelId" gorm:"index:idx_jobs_payment_channel_id"`
	PaymentChannel   *PaymentChannel   `json:"paymentChannel,omitempty" gorm:"foreignKey:PaymentChannelID"`
	StatusID         uint              `json:"statusId" gorm:"not null;index:idx_jobs_status_id"`
	Status           *JobStatus        `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	Priority         constant.Priority `json:"priority" gorm:"type:varchar(16);not null;default:'MEDIUM'"`
	DueAt            *time.Time        `json:"dueAt"`
	CompletedAt      *time.Time        `json:"completedAt"`
	FinishedAt       *time.Time        `json:"finishedAt" gorm:"index:idx_jobs_finished_at"`
	IsPinned         bool              `json:"isPinned" gorm:"not null;default:false"`
	IsPublished      bool              `json:"isPublished" gorm:"not null;default:false"`
	IsPaid           bool              `json:"isPaid" gorm:"not null;default:false"`
	CreatedByID      uint              `json:"createdById" gorm:"not null"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt    `json:"deletedAt,omitempty" gorm:"index"`
}

func (Job) TableName() string {
	return "jobs"
}

// JobAssignee is the join row behind Job.Assignees.
type JobAssignee struct {
	JobID     uint      `json:"jobId" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"primaryKey;index:idx_job_assignees_user_id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (JobAssignee) TableName() string {
	return "job_assignees"
}
