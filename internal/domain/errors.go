package domain

import (
	"errors"
	"fmt"
)

// Workflow errors are user-visible: handlers turn them into plain text replies
// and never surface them to Slack as failures.
var (
	// ErrNotStarted is returned when a draft operation runs without a prior start.
	ErrNotStarted = errors.New("standup not started, use `start` first")

	// ErrAlreadyCommitted is returned when an entry already exists for the
	// author's local date. The existing entry must be deleted first.
	ErrAlreadyCommitted = errors.New("standup already committed for today, delete it first")

	// ErrNoTimezone is returned when the user belongs to zero or more than one
	// configured timezone group.
	ErrNoTimezone = errors.New("you are not in any timezone group, ask an admin to add you")
)

// MissingPartError names the first unset draft part blocking a commit.
type MissingPartError struct {
	Part Part
}

func (e *MissingPartError) Error() string {
	return fmt.Sprintf("standup is incomplete: missing %s", e.Part)
}

// IsWorkflowError reports whether err is a user-visible workflow error rather
// than a storage or transport fault.
func IsWorkflowError(err error) bool {
	var mp *MissingPartError
	return errors.Is(err, ErrNotStarted) ||
		errors.Is(err, ErrAlreadyCommitted) ||
		errors.Is(err, ErrNoTimezone) ||
		errors.As(err, &mp)
}
