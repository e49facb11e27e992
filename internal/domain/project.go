package domain

import "time"

// ProjectStatusActive is the status newly created projects start in.
const ProjectStatusActive = "Active"

// Project groups tasks and members. Tasks reference the project by id; the
// project does not embed them.
type Project struct {
	ID          string  `json:"projectId" db:"project_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	Status      string  `json:"status" db:"status"`
	Creator     *string `json:"creator" db:"creator"`
	// Tags is a comma-separated list used for categorization in the UI.
	Tags *string `json:"tags" db:"tags"`
}

// ProjectMember is the join row between a project and a user.
// At most one row exists per (project, user) pair.
type ProjectMember struct {
	ID        int64      `json:"id" db:"id"`
	ProjectID string     `json:"projectId" db:"project_id"`
	UserID    int64      `json:"userId" db:"user_id"`
	Role      MemberRole `json:"role" db:"role"`
	JoinedAt  time.Time  `json:"joinedAt" db:"joined_at"`
}

// ProjectMemberInfo is a membership row joined with the member's profile,
// as served to the members list.
type ProjectMemberInfo struct {
	ID       int64      `json:"id" db:"id"`
	UserID   int64      `json:"userId" db:"user_id"`
	Role     MemberRole `json:"role" db:"role"`
	JoinedAt time.Time  `json:"joinedAt" db:"joined_at"`
	Name     string     `json:"name" db:"name"`
	Email    string     `json:"email" db:"email"`
}
