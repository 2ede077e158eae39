package constant

type ActivityType string

const (
	ActivityTypeCreate         ActivityType = "Create"
	ActivityTypeChangeStatus   ActivityType = "ChangeStatus"
	ActivityTypeAssignMember   ActivityType = "AssignMember"
	ActivityTypeUnassignMember ActivityType = "UnassignMember"
	ActivityTypeUpdateInfo     ActivityType = "UpdateInfo"
)

const (
	FieldNameJob      = "Job"
	FieldNameStatus   = "Status"
	FieldNameAssignee = "Assignee"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleAccountant Role = "ACCOUNTANT"
	RoleStaff      Role = "STAFF"
)

// CanDeleteJob reports whether the role may soft-delete jobs.
func (r Role) CanDeleteJob() bool {
	return r == RoleAdmin || r == RoleManager
}

type EventType string

const (
	EventJobCreated        EventType = "job.created"
	EventJobStatusChanged  EventType = "job.status_changed"
	EventJobMembersChanged EventType = "job.members_changed"
)

func (e EventType) String() string {
	return string(e)
}

type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentStaging    Environment = "staging"
	EnvironmentDevelop    Environment = "develop"
)

func (e Environment) String() string {
	return string(e)
}
