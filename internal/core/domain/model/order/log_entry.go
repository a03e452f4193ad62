package order

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// LogEntry is one line of an order's status history.
// Entries are value objects: once appended they are never edited, reordered or removed.
type LogEntry struct {
	status    Status
	timestamp time.Time
	note      string
	by        *kernel.UUID
}

// NewLogEntry validates and creates a history line.
// note may be empty; by is nil when the change was not attributed to a user.
func NewLogEntry(status Status, timestamp time.Time, note string, by *kernel.UUID) (LogEntry, error) {
	var errList []error
	if err := status.Validate(); err != nil {
		errList = append(errList, err)
	}
	if timestamp.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("log timestamp"))
	}
	if by != nil {
		if err := by.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return LogEntry{}, err
	}

	return LogEntry{
		status:    status,
		timestamp: timestamp,
		note:      note,
		by:        by,
	}, nil
}

func (e LogEntry) Status() Status {
	return e.status
}

func (e LogEntry) Timestamp() time.Time {
	return e.timestamp
}

// Note returns the free text attached to the change, empty when none was given.
func (e LogEntry) Note() string {
	return e.note
}

// By returns the identifier of the user who made the change, or nil.
func (e LogEntry) By() *kernel.UUID {
	return e.by
}
