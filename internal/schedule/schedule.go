// Package schedule derives concrete notification entries from a reminder's
// recurrence configuration. All functions are pure; registering, canceling,
// and persisting are the tracker's job.
package schedule

import (
	"fmt"
	"time"

	"github.com/nhle/reminder-tracker/internal/model"
	"github.com/nhle/reminder-tracker/internal/notify"
)

// resetHour is the local hour at which silent reset triggers fire.
const resetHour = 8

// Entry is one derived notification registration.
type Entry struct {
	ID      notify.EntryID
	Content notify.Content
	Trigger notify.Trigger
}

// Entries returns the zero, one, or two entries a reminder maps to: a
// periodic alert while the obligation is unfinished, and a reset trigger
// when the recurrence revives it next cycle.
func Entries(r model.Reminder) []Entry {
	var entries []Entry
	if e, ok := Periodic(r); ok {
		entries = append(entries, e)
	}
	if e, ok := Reset(r); ok {
		entries = append(entries, e)
	}
	return entries
}

// Periodic derives the user-visible alert entry. Completed reminders have
// no periodic entry.
func Periodic(r model.Reminder) (Entry, bool) {
	if r.IsCompleted() {
		return Entry{}, false
	}

	at := r.NextNotificationDate
	var trigger notify.Trigger
	switch r.NotificationRecurrence {
	case model.NotifyWeekly:
		trigger = notify.Weekly(at.Weekday(), at.Hour(), at.Minute())
	case model.NotifyMonthly:
		trigger = notify.Monthly(at.Day(), at.Hour(), at.Minute())
	default:
		trigger = notify.Once(at)
	}

	return Entry{
		ID: notify.EntryID{ReminderID: r.ID, Kind: notify.KindPeriodic},
		Content: notify.Content{
			Title: r.Name,
			Body:  periodicBody(r),
		},
		Trigger: trigger,
	}, true
}

// Reset derives the silent revival trigger for resetting recurrences.
func Reset(r model.Reminder) (Entry, bool) {
	at, ok := ResetTime(r)
	if !ok {
		return Entry{}, false
	}

	return Entry{
		ID: notify.EntryID{ReminderID: r.ID, Kind: notify.KindReset},
		Content: notify.Content{
			Title:  r.Name,
			Silent: true,
			Metadata: map[string]string{
				notify.MetaReminderID: r.ID,
				notify.MetaAction:     notify.ActionReset,
			},
		},
		Trigger: notify.Once(at),
	}, true
}

// ResetTime returns when the reminder's next cycle begins: the due date
// advanced by the recurrence interval, at the fixed reset hour. ok is false
// for non-resetting recurrences.
func ResetTime(r model.Reminder) (time.Time, bool) {
	next, ok := AdvanceDueDate(r)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(next.Year(), next.Month(), next.Day(),
		resetHour, 0, 0, 0, next.Location()), true
}

// AdvanceDueDate returns the due date moved forward by one recurrence
// interval. ok is false when the recurrence does not reset.
func AdvanceDueDate(r model.Reminder) (time.Time, bool) {
	switch r.Recurrence {
	case model.RecurrenceMonthlyReset:
		return r.NextDueDate.AddDate(0, 1, 0), true
	case model.RecurrenceYearlyReset:
		return r.NextDueDate.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// CancelIDs returns every identifier a reminder may be registered under:
// both entry kinds plus the bare id used by the old single-entry scheme.
func CancelIDs(reminderID string) []string {
	return []string{
		notify.EntryID{ReminderID: reminderID, Kind: notify.KindPeriodic}.String(),
		notify.EntryID{ReminderID: reminderID, Kind: notify.KindReset}.String(),
		reminderID,
	}
}

func periodicBody(r model.Reminder) string {
	body := fmt.Sprintf("Due %s", r.NextDueDate.Format("Jan 2, 2006"))
	if r.TargetCount > 1 {
		body = fmt.Sprintf("%d of %d done, due %s",
			r.CurrentCount, r.TargetCount, r.NextDueDate.Format("Jan 2, 2006"))
	}
	if r.Account != "" {
		body = r.Account + ": " + body
	}
	return body
}
