package model

import "time"

// Recurrence governs how a reminder's due date advances once the
// underlying obligation completes.
type Recurrence string

const (
	RecurrenceOneTime      Recurrence = "one-time"
	RecurrenceMonthlyReset Recurrence = "monthly-reset"
	RecurrenceYearlyReset  Recurrence = "yearly-reset"
	RecurrenceCustom       Recurrence = "custom"
)

// NotificationRecurrence governs how often the user is alerted about a
// reminder, independent of the due-date recurrence.
type NotificationRecurrence string

const (
	NotifyNone    NotificationRecurrence = "none"
	NotifyWeekly  NotificationRecurrence = "weekly"
	NotifyMonthly NotificationRecurrence = "monthly"
)

// Reminder status constants.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Reminder is a recurring or count-based obligation tracked by the user.
type Reminder struct {
	// ID is the unique identifier for this reminder. Generated at
	// creation and never reused.
	ID string `json:"id" db:"id"`

	// Name is the user-facing label for the obligation.
	Name string `json:"name" db:"name"`

	// Account identifies the account or card the obligation belongs to.
	Account string `json:"account" db:"account"`

	// Description is the free-form detail text.
	Description string `json:"description" db:"description"`

	// NextDueDate is when the obligation is due or resets.
	NextDueDate time.Time `json:"next_due_date" db:"next_due_date"`

	// Recurrence is the due-date reset cadence (use Recurrence* constants).
	Recurrence Recurrence `json:"recurrence" db:"recurrence"`

	// NextNotificationDate anchors the next user-facing alert.
	NextNotificationDate time.Time `json:"next_notification_date" db:"next_notification_date"`

	// NotificationRecurrence is the alert cadence (use Notify* constants).
	NotificationRecurrence NotificationRecurrence `json:"notification_recurrence" db:"notification_recurrence"`

	// Status is the lifecycle state (use Status* constants).
	Status string `json:"status" db:"status"`

	// TargetCount is the number of qualifying actions required to
	// complete the obligation. Always >= 1.
	TargetCount int `json:"target_count" db:"target_count"`

	// CurrentCount is the progress so far. Never exceeds TargetCount.
	CurrentCount int `json:"current_count" db:"current_count"`

	// CreatedAt is when this reminder was first recorded.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is when this reminder was last modified.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Normalize clamps counts and derives status so the record satisfies its
// invariants. Called on every save rather than rejecting bad edits.
func (r *Reminder) Normalize() {
	if r.TargetCount < 1 {
		r.TargetCount = 1
	}
	if r.CurrentCount < 0 {
		r.CurrentCount = 0
	}
	if r.CurrentCount > r.TargetCount {
		r.CurrentCount = r.TargetCount
	}

	switch r.Recurrence {
	case RecurrenceOneTime, RecurrenceMonthlyReset, RecurrenceYearlyReset, RecurrenceCustom:
	default:
		r.Recurrence = RecurrenceOneTime
	}
	switch r.NotificationRecurrence {
	case NotifyNone, NotifyWeekly, NotifyMonthly:
	default:
		r.NotificationRecurrence = NotifyNone
	}

	if r.Status != StatusCompleted {
		if r.TargetCount > 1 {
			r.Status = StatusInProgress
		} else {
			r.Status = StatusPending
		}
	}
}

// IsCompleted reports whether the obligation has been fulfilled for the
// current cycle.
func (r Reminder) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// IsResetting reports whether the recurrence revives a completed reminder
// for a next cycle. Custom recurrence has no defined reset rule and is
// treated like one-time.
func (r Reminder) IsResetting() bool {
	return r.Recurrence == RecurrenceMonthlyReset || r.Recurrence == RecurrenceYearlyReset
}

// SeedReminders returns the built-in example records inserted on first run,
// anchored to the given time.
func SeedReminders(now time.Time) []Reminder {
	due := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())

	return []Reminder{
		{
			Name:                   "Use hotel voucher",
			Account:                "Travel Card",
			Description:            "Annual free-night certificate, expires end of cycle",
			NextDueDate:            due.AddDate(1, 0, 0),
			Recurrence:             RecurrenceYearlyReset,
			NextNotificationDate:   due.AddDate(0, 1, 0),
			NotificationRecurrence: NotifyMonthly,
			TargetCount:            1,
		},
		{
			Name:                   "Make 5 purchases",
			Account:                "Everyday Card",
			Description:            "Purchases required this billing cycle",
			NextDueDate:            due.AddDate(0, 1, 0),
			Recurrence:             RecurrenceMonthlyReset,
			NextNotificationDate:   due.AddDate(0, 0, 7),
			NotificationRecurrence: NotifyWeekly,
			TargetCount:            5,
		},
	}
}
