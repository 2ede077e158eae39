package dto

type JobTablePreference struct {
	Version        int      `json:"version" validate:"gte=0"`
	VisibleColumns []string `json:"visibleColumns" validate:"required,min=1,unique,dive,column_key"`
	Sort           string   `json:"sort" validate:"omitempty,sort_expr"`
	HideFinished   bool     `json:"hideFinished"`
}
