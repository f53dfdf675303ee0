package domain

import "errors"

// Sentinel errors for the task domain. Use errors.Is() to check these.
var (
	// ErrTaskNotFound indicates the requested task does not exist for the user.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskAlreadyExists indicates another task already holds the generated code.
	ErrTaskAlreadyExists = errors.New("task code already in use")

	// ErrInvalidTask indicates the task violates domain constraints.
	ErrInvalidTask = errors.New("invalid task")
)
