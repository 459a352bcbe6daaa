package models

import "time"

// Task is a unit of work owned by exactly one user. UserID is set once at
// creation and never changes.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskUpdate carries a partial update. Nil fields mean "leave unchanged",
// not "clear".
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}
