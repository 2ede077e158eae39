package dto

import (
	"job-dashboard/constant"
	"time"
)

type CreateJobRequest struct {
	TypeId           *uint             `json:"typeId"`
	DisplayName      string            `json:"displayName" binding:"required"`
	ClientName       string            `json:"clientName"`
	Income           float64           `json:"income" binding:"gte=0"`
	StaffCost        float64           `json:"staffCost" binding:"gte=0"`
	PaymentChannelId *uint             `json:"paymentChannelId"`
	Priority         constant.Priority `json:"priority"`
	DueAt            *time.Time        `json:"dueAt"`
	MemberIds        IdList            `json:"memberIds"`
	IsPublished      bool              `json:"isPublished"`
}

// UpdateJobRequest only touches the fields that are present.
type UpdateJobRequest struct {
	TypeId           *uint              `json:"typeId"`
	DisplayName      *string            `json:"displayName"`
	ClientName       *string            `json:"clientName"`
	Income           *float64           `json:"income" binding:"omitempty,gte=0"`
	StaffCost        *float64           `json:"staffCost" binding:"omitempty,gte=0"`
	PaymentChannelId *uint              `json:"paymentChannelId"`
	Priority         *constant.Priority `json:"priority"`
	DueAt            *time.Time         `json:"dueAt"`
	CompletedAt      *time.Time         `json:"completedAt"`
	IsPinned         *bool              `json:"isPinned"`
	IsPublished      *bool              `json:"isPublished"`
	IsPaid           *bool              `json:"isPaid"`
}

type ChangeStatusRequest struct {
	FromStatusId *uint `json:"fromStatusId"`
	ToStatusId   uint  `json:"toStatusId" binding:"required"`
}

type AssignMemberRequest struct {
	PrevMemberIds   IdList `json:"prevMemberIds"`
	UpdateMemberIds IdList `json:"updateMemberIds"`
}

type JobListQuery struct {
	Search           string            `form:"search"`
	StatusId         uint              `form:"statusId"`
	TypeId           uint              `form:"typeId"`
	AssigneeId       uint              `form:"assigneeId"`
	PaymentChannelId uint              `form:"paymentChannelId"`
	Priority         constant.Priority `form:"priority"`
	HideFinished     bool              `form:"hideFinished"`
	Pinned           *bool             `form:"pinned"`
	Sort             string            `form:"sort"`
	Page             int               `form:"page" binding:"omitempty,min=1"`
	Limit            int               `form:"limit" binding:"omitempty,min=1,max=100"`
}

type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type StatusTransitions struct {
	Current  StatusSummary  `json:"current"`
	Forward  *StatusSummary `json:"forward"`
	Backward *StatusSummary `json:"backward"`
}
