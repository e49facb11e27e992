package domain

// TaskStatus represents a task's position on the board.
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "ToDo"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusDone       TaskStatus = "Done"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority represents a task's urgency.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Role is the system-wide role assigned to a user. The capability matrix in
// internal/permission maps each role to what it may do; roles are not a
// strict hierarchy.
type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleProjectManager Role = "ProjectManager"
	RoleTeamMember     Role = "TeamMember"
	RoleGuest          Role = "Guest"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleTeamMember, RoleGuest:
		return true
	}
	return false
}

// MemberRole is a user's role within a single project.
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "Owner"
	MemberRoleMember MemberRole = "Member"
)

func (r MemberRole) String() string { return string(r) }

func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleMember:
		return true
	}
	return false
}

// ActivityType classifies an activity ledger entry.
type ActivityType string

const (
	ActivityTypeComment        ActivityType = "Comment"
	ActivityTypeStatusUpdate   ActivityType = "StatusUpdate"
	ActivityTypeAssigneeUpdate ActivityType = "AssigneeUpdate"
	ActivityTypeTaskCreated    ActivityType = "TaskCreated"
	ActivityTypeProjectCreated ActivityType = "ProjectCreated"
	ActivityTypeGeneral        ActivityType = "General"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeComment, ActivityTypeStatusUpdate, ActivityTypeAssigneeUpdate,
		ActivityTypeTaskCreated, ActivityTypeProjectCreated, ActivityTypeGeneral:
		return true
	}
	return false
}
