package entities

// JobStatus is one node of the status progression. NextStatusOrder and
// PrevStatusOrder point at the Order of the neighbouring statuses and are
// nil at the ends of the chain.
type JobStatus struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"type:varchar(100);not null"`
	Color           string `json:"color" gorm:"type:varchar(32)"`
	Icon            string `json:"icon" gorm:"type:varchar(64)"`
	Thumbnail       string `json:"thumbnail" gorm:"type:varchar(500)"`
	Order           int    `json:"order" gorm:"column:sort_order;not null;uniqueIndex:uq_job_statuses_sort_order"`
	NextStatusOrder *int   `json:"nextStatusOrder"`
	PrevStatusOrder *int   `json:"prevStatusOrder"`
}

func (JobStatus) TableName() string {
	return "job_statuses"
}
