package domain

import "time"

// Task is a unit of work on a project board.
//
// Assignee is a free-text display name, not a user reference. This
// denormalization is deliberate: the board renders the name directly and a
// task may be assigned to someone before they ever log in. Two users sharing
// a display name is an unhandled ambiguity.
//
// ParentTaskID is a single-level prerequisite link: while the parent is not
// Done, this task cannot leave ToDo. Only the direct parent is checked; the
// link is not validated to be acyclic at write time.
type Task struct {
	ID           string       `json:"taskId" db:"task_id"`
	Title        string       `json:"title" db:"title"`
	Description  *string      `json:"description" db:"description"`
	Status       TaskStatus   `json:"status" db:"status"`
	Priority     TaskPriority `json:"priority" db:"priority"`
	DueDate      *time.Time   `json:"dueDate" db:"due_date"`
	Assignee     *string      `json:"assignee" db:"assignee"`
	ProjectID    *string      `json:"projectId" db:"project_id"`
	Creator      *string      `json:"creator" db:"creator"`
	ParentTaskID *string      `json:"parentTaskId" db:"parent_task_id"`
}
