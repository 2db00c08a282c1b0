package server

import "github.com/thenoetrevino/taskman/internal/models"

// taskRequest is the body accepted by create and update.
// Validation lives in the binding tags; the client does none of its own.
type taskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=5000"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// toTask converts the request, defaulting missing enums like a fresh draft
func (r taskRequest) toTask() models.Task {
	task := models.NewDraft()
	task.Title = r.Title
	task.Description = r.Description
	task.DueDate = r.DueDate
	if r.Status != "" {
		task.Status = models.Status(r.Status)
	}
	if r.Priority != "" {
		task.Priority = models.Priority(r.Priority)
	}
	return task
}
