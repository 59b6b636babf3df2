package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nhle/reminder-tracker/internal/model"
)

const reminderColumns = `id, name, account, description,
	next_due_date, recurrence, next_notification_date, notification_recurrence,
	status, target_count, current_count, created_at, updated_at`

// UpsertReminder inserts or replaces a reminder keyed on id.
func (s *SQLiteStore) UpsertReminder(ctx context.Context, r model.Reminder) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("reminder id must not be empty")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("reminder name must not be empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO reminders (`+reminderColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Account, r.Description,
		r.NextDueDate, r.Recurrence, r.NextNotificationDate, r.NotificationRecurrence,
		r.Status, r.TargetCount, r.CurrentCount, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting reminder %s: %w", r.ID, err)
	}
	return nil
}

// GetReminderByID retrieves a single reminder by ID.
func (s *SQLiteStore) GetReminderByID(
	ctx context.Context,
	id string,
) (*model.Reminder, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE id = ?", id)

	r, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting reminder %s: %w", id, err)
	}
	return r, nil
}

// ListReminders returns all reminders ordered by next due date, then name.
func (s *SQLiteStore) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT "+reminderColumns+" FROM reminders ORDER BY next_due_date ASC, name ASC")
	if err != nil {
		return nil, fmt.Errorf("querying reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reminder row: %w", err)
		}
		reminders = append(reminders, *r)
	}
	return reminders, rows.Err()
}

// DeleteReminders removes the reminders with the given ids. Ids that are
// not present are treated as already removed.
func (s *SQLiteStore) DeleteReminders(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	_, err := s.db.ExecContext(ctx,
		"DELETE FROM reminders WHERE id IN ("+strings.Join(placeholders, ", ")+")",
		args...)
	if err != nil {
		return fmt.Errorf("deleting reminders: %w", err)
	}
	return nil
}

// CountReminders returns the number of stored reminders.
func (s *SQLiteStore) CountReminders(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM reminders"); err != nil {
		return 0, fmt.Errorf("counting reminders: %w", err)
	}
	return count, nil
}

// scanReminder scans a reminder row.
func scanReminder(row interface{ Scan(dest ...interface{}) error }) (*model.Reminder, error) {
	var r model.Reminder
	err := row.Scan(
		&r.ID, &r.Name, &r.Account, &r.Description,
		&r.NextDueDate, &r.Recurrence, &r.NextNotificationDate, &r.NotificationRecurrence,
		&r.Status, &r.TargetCount, &r.CurrentCount, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
