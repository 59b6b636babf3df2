package store

import (
	"context"
	"errors"

	"github.com/nhle/reminder-tracker/internal/model"
)

// ErrNotFound is returned by lookups for ids that are not in the store.
// Callers that treat missing records as no-ops check for it with errors.Is.
var ErrNotFound = errors.New("reminder not found")

// Store defines the persistence interface for the reminder collection.
type Store interface {
	// UpsertReminder inserts the reminder, replacing any existing record
	// with the same id.
	UpsertReminder(ctx context.Context, r model.Reminder) error

	// GetReminderByID retrieves a single reminder. Returns ErrNotFound
	// when the id is absent.
	GetReminderByID(ctx context.Context, id string) (*model.Reminder, error)

	// ListReminders returns the full collection ordered by next due date,
	// then name.
	ListReminders(ctx context.Context) ([]model.Reminder, error)

	// DeleteReminders removes the given ids. Absent ids are ignored.
	DeleteReminders(ctx context.Context, ids []string) error

	// CountReminders returns the number of stored reminders.
	CountReminders(ctx context.Context) (int, error)

	Close() error
}
