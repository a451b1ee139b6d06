package task

import "errors"

var ErrNotFound = errors.New("task not found")

type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

// UpdateRequest carries the mutable fields of a task. All three are applied
// unconditionally, matching the task editor's full-form submit.
type UpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}
