package domain

import "time"

// Comment is a note on a task. Immutable once created, except for deletion.
type Comment struct {
	ID        string    `json:"commentId" db:"comment_id"`
	TaskID    string    `json:"taskId" db:"task_id"`
	Text      string    `json:"text" db:"text"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
