package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/taskman/internal/database"
	"github.com/thenoetrevino/taskman/internal/models"
)

// taskHandlers serves the /tasks collection
type taskHandlers struct {
	repo    database.TaskRepository
	metrics *Metrics
	logger  *slog.Logger
}

func (h *taskHandlers) list(c *gin.Context) {
	tasks, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(tasks))
}

func (h *taskHandlers) get(c *gin.Context) {
	task, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(task))
}

func (h *taskHandlers) create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
		return
	}

	task, err := h.repo.Create(c.Request.Context(), req.toTask())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.TasksCreated.Add(1)
	h.logger.Info("task created", "id", task.ID, "title", task.Title)

	resp := models.OK(task)
	resp.Message = "Task created successfully"
	c.JSON(http.StatusCreated, resp)
}

func (h *taskHandlers) update(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
		return
	}

	task, err := h.repo.Replace(c.Request.Context(), c.Param("id"), req.toTask())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.TasksUpdated.Add(1)
	h.logger.Info("task updated", "id", task.ID)

	resp := models.OK(task)
	resp.Message = "Task updated successfully"
	c.JSON(http.StatusOK, resp)
}

func (h *taskHandlers) remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.metrics.TasksDeleted.Add(1)
	h.logger.Info("task deleted", "id", id)

	c.JSON(http.StatusOK, models.APIResponse[any]{Success: true, Message: "Task deleted successfully"})
}

// fail maps repository errors onto envelope responses
func (h *taskHandlers) fail(c *gin.Context, err error) {
	if errors.Is(err, database.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, models.Fail("Task not found"))
		return
	}
	h.logger.Error("task storage error", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, models.Fail("Internal server error"))
}
