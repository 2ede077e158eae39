package entities

type Department struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"type:varchar(32);not null;uniqueIndex:uq_departments_code"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

func (Department) TableName() string {
	return "departments"
}

type JobTitle struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

func (JobTitle) TableName() string {
	return "job_titles"
}

type JobType struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"type:varchar(32);not null;uniqueIndex:uq_job_types_code"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

func (JobType) TableName() string {
	return "job_types"
}

type PaymentChannel struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	IsActive bool   `json:"isActive" gorm:"not null;default:true"`
}

func (PaymentChannel) TableName() string {
	return "payment_channels"
}
