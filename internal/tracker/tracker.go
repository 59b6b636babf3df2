// Package tracker owns the reminder collection lifecycle. Every mutation
// goes through it so persisted state and the registered notification
// schedule never drift apart.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nhle/reminder-tracker/internal/model"
	"github.com/nhle/reminder-tracker/internal/notify"
	"github.com/nhle/reminder-tracker/internal/schedule"
	"github.com/nhle/reminder-tracker/internal/store"
)

// Tracker exposes the reminder lifecycle operations. All mutations persist
// first, then reconcile the notification schedule; a failed registration is
// logged and never rolls back the save.
type Tracker struct {
	store store.Store
	port  notify.Port
	log   logrus.FieldLogger
}

// New creates a Tracker over the given store and notification port.
func New(s store.Store, p notify.Port, log logrus.FieldLogger) *Tracker {
	return &Tracker{store: s, port: p, log: log}
}

// Load returns the full reminder collection. On a first run (empty store)
// it seeds the built-in example records and arms their schedules, unless
// seeding is disabled in configuration.
func (t *Tracker) Load(ctx context.Context, seedExamples bool) ([]model.Reminder, error) {
	count, err := t.store.CountReminders(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 && seedExamples {
		for _, r := range model.SeedReminders(time.Now()) {
			if _, err := t.AddOrUpdate(ctx, r); err != nil {
				return nil, err
			}
		}
		t.log.Info("Seeded example reminders")
	}
	return t.store.ListReminders(ctx)
}

// AddOrUpdate saves the reminder, replacing any record with the same id,
// and rebuilds its notification entries from scratch. Every field edit must
// go through here so the registered schedule stays consistent.
func (t *Tracker) AddOrUpdate(ctx context.Context, r model.Reminder) (*model.Reminder, error) {
	now := time.Now().UTC()
	if r.ID == "" {
		r.ID = uuid.New().String()
		r.CreatedAt = now
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	r.Normalize()

	if err := t.store.UpsertReminder(ctx, r); err != nil {
		t.log.WithError(err).WithField("reminder_id", r.ID).Error("Failed to save reminder")
		return nil, err
	}

	t.reschedule(r)
	t.log.WithField("reminder_id", r.ID).Info("Reminder saved")
	return &r, nil
}

// Delete removes the given reminders and their notification entries.
// Absent ids are treated as already removed.
func (t *Tracker) Delete(ctx context.Context, ids []string) error {
	for _, id := range ids {
		t.cancelAll(id)
	}
	if err := t.store.DeleteReminders(ctx, ids); err != nil {
		t.log.WithError(err).Error("Failed to delete reminders")
		return err
	}
	t.log.WithField("count", len(ids)).Info("Reminders deleted")
	return nil
}

// IncrementCount records one qualifying action toward the target. Reaching
// the target completes the reminder. Absent ids and already-completed
// reminders are no-ops; a completed reminder cannot accumulate progress
// again until an explicit reset.
func (t *Tracker) IncrementCount(ctx context.Context, id string) (*model.Reminder, error) {
	r, err := t.get(ctx, id, "increment")
	if r == nil || err != nil {
		return nil, err
	}
	if r.IsCompleted() {
		return r, nil
	}

	r.CurrentCount++
	if r.CurrentCount >= r.TargetCount {
		return t.complete(ctx, *r)
	}

	r.UpdatedAt = time.Now().UTC()
	if err := t.store.UpsertReminder(ctx, *r); err != nil {
		t.log.WithError(err).WithField("reminder_id", id).Error("Failed to save count")
		return nil, err
	}
	return r, nil
}

// Complete marks the reminder fulfilled for the current cycle. The periodic
// alert is cancelled; a resetting reminder's reset trigger stays armed so
// the next cycle can revive it. Absent ids are no-ops.
func (t *Tracker) Complete(ctx context.Context, id string) (*model.Reminder, error) {
	r, err := t.get(ctx, id, "complete")
	if r == nil || err != nil {
		return nil, err
	}
	return t.complete(ctx, *r)
}

func (t *Tracker) complete(ctx context.Context, r model.Reminder) (*model.Reminder, error) {
	r.Status = model.StatusCompleted
	r.CurrentCount = r.TargetCount
	r.UpdatedAt = time.Now().UTC()

	if err := t.store.UpsertReminder(ctx, r); err != nil {
		t.log.WithError(err).WithField("reminder_id", r.ID).Error("Failed to complete reminder")
		return nil, err
	}

	periodic := notify.EntryID{ReminderID: r.ID, Kind: notify.KindPeriodic}
	if err := t.port.Cancel([]string{periodic.String()}); err != nil {
		t.log.WithError(err).WithField("reminder_id", r.ID).Warn("Failed to cancel periodic entry")
	}

	t.log.WithField("reminder_id", r.ID).Info("Reminder completed")
	return &r, nil
}

// Reset revives a completed resetting reminder for its next cycle: due date
// advanced by the recurrence interval, count cleared, schedule rebuilt with
// a fresh future reset trigger. Any other state is a no-op.
func (t *Tracker) Reset(ctx context.Context, id string) (*model.Reminder, error) {
	r, err := t.get(ctx, id, "reset")
	if r == nil || err != nil {
		return nil, err
	}
	if !r.IsCompleted() || !r.IsResetting() {
		return r, nil
	}

	resetAt, _ := schedule.ResetTime(*r)
	nextDue, _ := schedule.AdvanceDueDate(*r)

	r.NextDueDate = nextDue
	r.NextNotificationDate = resetAt
	r.CurrentCount = 0
	if r.TargetCount > 1 {
		r.Status = model.StatusInProgress
	} else {
		r.Status = model.StatusPending
	}
	r.UpdatedAt = time.Now().UTC()

	if err := t.store.UpsertReminder(ctx, *r); err != nil {
		t.log.WithError(err).WithField("reminder_id", id).Error("Failed to reset reminder")
		return nil, err
	}

	t.reschedule(*r)
	t.log.WithField("reminder_id", id).Info("Reminder reset for next cycle")
	return r, nil
}

// HandleDelivery is the asynchronous entry point invoked when the host
// notification system fires a trigger. It may run in a fresh process long
// after the trigger was registered, so it acts only on persisted state.
// Deliveries for deleted reminders or without a reset action are ignored.
func (t *Tracker) HandleDelivery(ctx context.Context, d notify.Delivery) error {
	if d.Metadata[notify.MetaAction] != notify.ActionReset {
		return nil
	}
	id := d.Metadata[notify.MetaReminderID]
	if id == "" {
		return nil
	}
	_, err := t.Reset(ctx, id)
	return err
}

// get loads a record, mapping ErrNotFound to a logged no-op (nil, nil).
func (t *Tracker) get(ctx context.Context, id, action string) (*model.Reminder, error) {
	r, err := t.store.GetReminderByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			t.log.WithFields(logrus.Fields{
				"reminder_id": id,
				"action":      action,
			}).Warn("Reminder not found, ignoring")
			return nil, nil
		}
		return nil, err
	}
	return r, nil
}

// reschedule cancels everything registered for the reminder and registers
// its current entries.
func (t *Tracker) reschedule(r model.Reminder) {
	t.cancelAll(r.ID)
	for _, e := range schedule.Entries(r) {
		if err := t.port.Register(e.ID, e.Content, e.Trigger); err != nil {
			t.log.WithError(err).WithFields(logrus.Fields{
				"reminder_id": r.ID,
				"entry":       e.ID.String(),
			}).Warn("Failed to register notification entry")
		}
	}
}

// cancelAll cancels both entry kinds plus the legacy bare identifier.
func (t *Tracker) cancelAll(id string) {
	if err := t.port.Cancel(schedule.CancelIDs(id)); err != nil {
		t.log.WithError(err).WithField("reminder_id", id).Warn("Failed to cancel notification entries")
	}
}
