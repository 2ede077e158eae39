package entities

import (
	"gorm.io/gorm"
	"job-dashboard/constant"
	"time"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Email        string         `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	DisplayName  string         `json:"displayName" gorm:"type:varchar(255);not null"`
	Avatar       string         `json:"avatar" gorm:"type:varchar(500)"`
	Role         constant.Role  `json:"role" gorm:"type:varchar(16);not null;default:'STAFF'"`
	DepartmentID *uint          `json:"departmentId"`
	Department   *Department    `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	JobTitleID   *uint          `json:"jobTitleId"`
	JobTitle     *JobTitle      `json:"jobTitle,omitempty" gorm:"foreignKey:JobTitleID"`
	IsActive     bool           `json:"isActive" gorm:"not null;default:true"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
