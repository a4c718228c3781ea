package domain

import "time"

// MaxTaskTextLength is the upper bound on task text after trimming.
const MaxTaskTextLength = 500

type Task struct {
	ID        int64
	Text      string
	Done      bool
	ParentID  *int64 // nullable self-reference
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Children is populated by the recursive list operation, ordered by id.
	// Storage imposes no depth limit; rendering only three levels is a
	// client presentation choice.
	Children []*Task
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Text *string
	Done *bool
}
