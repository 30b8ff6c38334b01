package domain

import "errors"

var (
	// ErrJobNotFound is returned when a service request cannot be found
	ErrJobNotFound = errors.New("job not found")

	// ErrApplicationNotFound is returned when an application cannot be found
	ErrApplicationNotFound = errors.New("application not found")

	// ErrNotificationNotFound is returned when a notification cannot be found
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrDuplicateApplication is returned when a freelancer already applied to a job.
	// Callers surface it as an idempotent "already applied" success, not a failure.
	ErrDuplicateApplication = errors.New("already applied to this job")

	// ErrCapacityReached is returned when a job already holds the maximum
	// number of applications
	ErrCapacityReached = errors.New("job application limit reached")

	// ErrJobClosed is returned when the job no longer accepts applications
	ErrJobClosed = errors.New("job is closed")

	// ErrUserNotFound is returned when a user profile cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrSelfApplication is returned when a job owner applies to their own job
	ErrSelfApplication = errors.New("cannot apply to own job")

	// ErrPermissionDenied is returned when the actor does not own the resource
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidation is returned when a request is missing required fields
	ErrValidation = errors.New("validation failed")
)
