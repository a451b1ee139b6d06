package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskflowhq/taskflow/internal/domain/task"
	"github.com/taskflowhq/taskflow/internal/repo/memory"
)

type TasksHandler struct {
	repo *memory.TasksRepo
}

func NewTasksHandler(repo *memory.TasksRepo) *TasksHandler {
	return &TasksHandler{repo: repo}
}

func (h *TasksHandler) ListTasks(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.repo.List())
}

func (h *TasksHandler) GetTask(ctx *gin.Context) {
	id, ok := taskID(ctx)
	if !ok {
		return
	}

	t, err := h.repo.GetByID(id)
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, t)
}

func (h *TasksHandler) CreateTask(ctx *gin.Context) {
	var t task.Task

	if !BindJSON(ctx, &t) {
		return
	}

	created := h.repo.Create(t)

	ctx.Header("Location", fmt.Sprintf("/api/tasks/%d", created.ID))
	ctx.JSON(http.StatusCreated, created)
}

func (h *TasksHandler) UpdateTask(ctx *gin.Context) {
	id, ok := taskID(ctx)
	if !ok {
		return
	}

	var req task.UpdateRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if err := h.repo.Update(id, req); err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *TasksHandler) DeleteTask(ctx *gin.Context) {
	id, ok := taskID(ctx)
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func taskID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		RespondBadRequest(ctx, "id must be an integer")
		return 0, false
	}

	return id, true
}
