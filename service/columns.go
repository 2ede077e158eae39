package service

import (
	"fmt"
	"job-dashboard/repository"
	"strings"
)

// JobTableColumns is the allow-list of column keys the job table can show.
var JobTableColumns = []string{
	"no",
	"type",
	"displayName",
	"clientName",
	"income",
	"staffCost",
	"assignees",
	"paymentChannel",
	"status",
	"priority",
	"dueAt",
	"completedAt",
	"finishedAt",
	"isPinned",
	"isPublished",
	"isPaid",
	"createdAt",
}

// DefaultJobTableColumns is shown until the user saves a preference.
var DefaultJobTableColumns = []string{"no", "displayName", "clientName", "assignees", "status", "priority", "dueAt"}

var sortableColumns = map[string]string{
	"no":          "no",
	"displayName": "display_name",
	"clientName":  "client_name",
	"income":      "income",
	"staffCost":   "staff_cost",
	"status":      "status_id",
	"priority":    "priority",
	"dueAt":       "due_at",
	"completedAt": "completed_at",
	"finishedAt":  "finished_at",
	"isPinned":    "is_pinned",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

func IsJobTableColumn(key string) bool {
	for _, column := range JobTableColumns {
		if column == key {
			return true
		}
	}
	return false
}

func DefaultJobSort() []repository.SortField {
	return []repository.SortField{
		{Column: "is_pinned", Desc: true},
		{Column: "created_at", Desc: true},
	}
}

// ParseSort reads "key:dir,key:dir" where dir is asc (default) or desc and
// key is a sortable column.
func ParseSort(expr string) ([]repository.SortField, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	seen := make(map[string]struct{})
	fields := make([]repository.SortField, 0)
	for _, part := range strings.Split(expr, ",") {
		key, direction, _ := strings.Cut(strings.TrimSpace(part), ":")
		column, ok := sortableColumns[key]
		if !ok {
			return nil, fmt.Errorf("%w: cannot sort by %q", ErrInvalidInput, key)
		}
		if _, dup := seen[column]; dup {
			return nil, fmt.Errorf("%w: %q sorted twice", ErrInvalidInput, key)
		}
		seen[column] = struct{}{}

		field := repository.SortField{Column: column}
		switch strings.ToLower(direction) {
		case "", "asc":
		case "desc":
			field.Desc = true
		default:
			return nil, fmt.Errorf("%w: bad sort direction %q", ErrInvalidInput, direction)
		}
		fields = append(fields, field)
	}
	return fields, nil
}
