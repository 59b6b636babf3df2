package schedule

import (
	"testing"
	"time"

	"github.com/nhle/reminder-tracker/internal/model"
	"github.com/nhle/reminder-tracker/internal/notify"
)

func baseReminder() model.Reminder {
	return model.Reminder{
		ID:                     "rem-1",
		Name:                   "Use hotel voucher",
		Account:                "Travel Card",
		NextDueDate:            time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Recurrence:             model.RecurrenceYearlyReset,
		NextNotificationDate:   time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC),
		NotificationRecurrence: model.NotifyMonthly,
		Status:                 model.StatusPending,
		TargetCount:            1,
	}
}

func TestEntries(t *testing.T) {
	t.Run("YearlyResetWithMonthlyNotification", func(t *testing.T) {
		entries := Entries(baseReminder())
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}

		periodic := entries[0]
		if periodic.ID.Kind != notify.KindPeriodic {
			t.Errorf("first entry kind = %v, want periodic", periodic.ID.Kind)
		}
		if periodic.ID.String() != "rem-1_PERIODIC" {
			t.Errorf("periodic identifier = %q", periodic.ID.String())
		}
		if periodic.Trigger.Kind != notify.TriggerMonthly {
			t.Errorf("periodic trigger kind = %v, want monthly", periodic.Trigger.Kind)
		}
		if periodic.Trigger.Day != 1 || periodic.Trigger.Hour != 10 || periodic.Trigger.Minute != 30 {
			t.Errorf("periodic trigger = day %d %02d:%02d, want day 1 10:30",
				periodic.Trigger.Day, periodic.Trigger.Hour, periodic.Trigger.Minute)
		}

		reset := entries[1]
		if reset.ID.String() != "rem-1_RESET" {
			t.Errorf("reset identifier = %q", reset.ID.String())
		}
		if reset.Trigger.Kind != notify.TriggerOnce {
			t.Errorf("reset trigger kind = %v, want once", reset.Trigger.Kind)
		}
		want := time.Date(2027, 3, 1, 8, 0, 0, 0, time.UTC)
		if !reset.Trigger.At.Equal(want) {
			t.Errorf("reset fire time = %v, want %v", reset.Trigger.At, want)
		}
		if !reset.Content.Silent {
			t.Error("reset entry should be silent")
		}
		if reset.Content.Metadata[notify.MetaAction] != notify.ActionReset {
			t.Errorf("reset metadata action = %q", reset.Content.Metadata[notify.MetaAction])
		}
		if reset.Content.Metadata[notify.MetaReminderID] != "rem-1" {
			t.Errorf("reset metadata reminder id = %q", reset.Content.Metadata[notify.MetaReminderID])
		}
	})

	t.Run("CompletedHasNoPeriodicEntry", func(t *testing.T) {
		r := baseReminder()
		r.Status = model.StatusCompleted
		r.CurrentCount = r.TargetCount

		entries := Entries(r)
		if len(entries) != 1 {
			t.Fatalf("expected only the reset entry, got %d entries", len(entries))
		}
		if entries[0].ID.Kind != notify.KindReset {
			t.Errorf("remaining entry kind = %v, want reset", entries[0].ID.Kind)
		}
	})

	t.Run("OneTimeHasNoResetEntry", func(t *testing.T) {
		r := baseReminder()
		r.Recurrence = model.RecurrenceOneTime

		entries := Entries(r)
		if len(entries) != 1 {
			t.Fatalf("expected only the periodic entry, got %d entries", len(entries))
		}
		if entries[0].ID.Kind != notify.KindPeriodic {
			t.Errorf("remaining entry kind = %v, want periodic", entries[0].ID.Kind)
		}
	})

	t.Run("CustomBehavesLikeOneTime", func(t *testing.T) {
		r := baseReminder()
		r.Recurrence = model.RecurrenceCustom

		if _, ok := Reset(r); ok {
			t.Error("custom recurrence should not produce a reset entry")
		}
	})

	t.Run("CompletedOneTimeHasNoEntries", func(t *testing.T) {
		r := baseReminder()
		r.Recurrence = model.RecurrenceOneTime
		r.Status = model.StatusCompleted

		if entries := Entries(r); len(entries) != 0 {
			t.Fatalf("expected no entries, got %d", len(entries))
		}
	})
}

func TestPeriodicTriggers(t *testing.T) {
	t.Run("None", func(t *testing.T) {
		r := baseReminder()
		r.NotificationRecurrence = model.NotifyNone

		e, ok := Periodic(r)
		if !ok {
			t.Fatal("expected a periodic entry")
		}
		if e.Trigger.Kind != notify.TriggerOnce {
			t.Errorf("trigger kind = %v, want once", e.Trigger.Kind)
		}
		if !e.Trigger.At.Equal(r.NextNotificationDate) {
			t.Errorf("fire time = %v, want %v", e.Trigger.At, r.NextNotificationDate)
		}
	})

	t.Run("Weekly", func(t *testing.T) {
		r := baseReminder()
		r.NotificationRecurrence = model.NotifyWeekly
		// 2026-02-01 is a Sunday.
		r.NextNotificationDate = time.Date(2026, 2, 1, 18, 15, 0, 0, time.UTC)

		e, ok := Periodic(r)
		if !ok {
			t.Fatal("expected a periodic entry")
		}
		if e.Trigger.Kind != notify.TriggerWeekly {
			t.Errorf("trigger kind = %v, want weekly", e.Trigger.Kind)
		}
		if e.Trigger.Weekday != time.Sunday {
			t.Errorf("weekday = %v, want Sunday", e.Trigger.Weekday)
		}
		if e.Trigger.Hour != 18 || e.Trigger.Minute != 15 {
			t.Errorf("time of day = %02d:%02d, want 18:15", e.Trigger.Hour, e.Trigger.Minute)
		}
	})
}

func TestAdvanceDueDate(t *testing.T) {
	t.Run("Monthly", func(t *testing.T) {
		r := baseReminder()
		r.Recurrence = model.RecurrenceMonthlyReset

		next, ok := AdvanceDueDate(r)
		if !ok {
			t.Fatal("expected monthly recurrence to advance")
		}
		want := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
		if !next.Equal(want) {
			t.Errorf("advanced due date = %v, want %v", next, want)
		}
	})

	t.Run("Yearly", func(t *testing.T) {
		next, ok := AdvanceDueDate(baseReminder())
		if !ok {
			t.Fatal("expected yearly recurrence to advance")
		}
		want := time.Date(2027, 3, 1, 9, 0, 0, 0, time.UTC)
		if !next.Equal(want) {
			t.Errorf("advanced due date = %v, want %v", next, want)
		}
	})

	t.Run("OneTime", func(t *testing.T) {
		r := baseReminder()
		r.Recurrence = model.RecurrenceOneTime
		if _, ok := AdvanceDueDate(r); ok {
			t.Error("one-time recurrence should not advance")
		}
	})
}

func TestCancelIDs(t *testing.T) {
	ids := CancelIDs("rem-1")
	want := []string{"rem-1_PERIODIC", "rem-1_RESET", "rem-1"}
	if len(ids) != len(want) {
		t.Fatalf("got %d identifiers, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
