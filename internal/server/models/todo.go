package models

import "time"

// Todo is a single task record. UserID is the owning user's id, set once at
// creation and never reassigned.
type Todo struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UserID      string
}

// TodoPatch is a presence-based partial update. A nil field leaves the
// current value unchanged, which distinguishes "omitted" from "set to the
// zero value". ID, CreatedAt, and UserID are not patchable.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}
