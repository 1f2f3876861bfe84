package entity

import (
	"fmt"
	"unicode/utf8"
)

type IssueStatus string

const (
	StatusOpen       IssueStatus = "open"
	StatusInProgress IssueStatus = "in progress"
	StatusClosed     IssueStatus = "closed"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

type IssuePriority string

const (
	PriorityLow    IssuePriority = "low"
	PriorityMedium IssuePriority = "medium"
	PriorityHigh   IssuePriority = "high"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Issue struct {
	ID          string        `json:"id"`
	Status      IssueStatus   `json:"status"`
	Priority    IssuePriority `json:"priority"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
}

// ValidationError reports a request field that violates the model constraints.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IssueCreate is the create payload. Status is not settable here; new issues
// always start open. Priority falls back to medium when omitted.
type IssueCreate struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Priority    IssuePriority `json:"priority"`
}

func (in IssueCreate) Validate() error {
	if err := checkLength("title", in.Title, 3, 255); err != nil {
		return err
	}
	if err := checkLength("description", in.Description, 5, 1000); err != nil {
		return err
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("must be one of low, medium, high, got %q", in.Priority)}
	}
	return nil
}

// IssueUpdate is the partial update payload. Nil fields are left unchanged
// on the stored issue; only supplied fields are validated and applied.
type IssueUpdate struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Priority    *IssuePriority `json:"priority"`
	Status      *IssueStatus   `json:"status"`
}

func (in IssueUpdate) Validate() error {
	if in.Title != nil {
		if err := checkLength("title", *in.Title, 3, 255); err != nil {
			return err
		}
	}
	if in.Description != nil {
		if err := checkLength("description", *in.Description, 5, 1000); err != nil {
			return err
		}
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("must be one of low, medium, high, got %q", *in.Priority)}
	}
	if in.Status != nil && !in.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("must be one of open, in progress, closed, got %q", *in.Status)}
	}
	return nil
}

func checkLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at least %d characters", min)}
	}
	if n > max {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}
