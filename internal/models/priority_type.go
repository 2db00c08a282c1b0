package models

import (
	"fmt"
	"strings"
)

// Status is the workflow state of a task
type Status string

const (
	// StatusPending means work has not started
	StatusPending Status = "pending"

	// StatusInProgress means the task is being worked on
	StatusInProgress Status = "in-progress"

	// StatusCompleted means the task is done
	StatusCompleted Status = "completed"
)

// Priority is the urgency of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// String returns the wire representation of the status
func (s Status) String() string {
	return string(s)
}

// Label is the human readable status name
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// IsValid reports whether s is one of the known statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// String returns the wire representation of the priority
func (p Priority) String() string {
	return string(p)
}

// Label is the human readable priority name
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return string(p)
}

// IsValid reports whether p is one of the known priorities
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// AllStatuses returns every status in workflow order
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// AllPriorities returns every priority from lowest to highest
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParseStatus converts user input into a Status (case-insensitive)
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: '%s' (must be: pending, in-progress, completed)", ErrInvalidStatus, s)
	}
	return status, nil
}

// ParsePriority converts user input into a Priority (case-insensitive)
func ParsePriority(s string) (Priority, error) {
	priority := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !priority.IsValid() {
		return "", fmt.Errorf("%w: '%s' (must be: low, medium, high)", ErrInvalidPriority, s)
	}
	return priority, nil
}
