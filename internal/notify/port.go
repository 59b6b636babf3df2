// Package notify defines the contract between the reminder engine and the
// host notification system, plus an in-process adapter for environments
// without one.
package notify

import "time"

// EntryKind distinguishes the two scheduled entries a reminder can own.
type EntryKind int

const (
	// KindPeriodic is the user-visible alert about an upcoming obligation.
	KindPeriodic EntryKind = iota

	// KindReset is the silent trigger that revives a completed recurring
	// obligation for its next cycle.
	KindReset
)

// Suffix returns the identifier suffix for this kind.
func (k EntryKind) Suffix() string {
	if k == KindReset {
		return "_RESET"
	}
	return "_PERIODIC"
}

// EntryID identifies one scheduled entry: the owning reminder plus the
// entry's role. Kept as a tagged pair rather than a concatenated string so
// identifiers cannot collide.
type EntryID struct {
	ReminderID string
	Kind       EntryKind
}

// String renders the wire identifier the host notification system keys on,
// e.g. "<id>_PERIODIC".
func (e EntryID) String() string {
	return e.ReminderID + e.Kind.Suffix()
}

// TriggerKind selects the trigger variant.
type TriggerKind int

const (
	TriggerOnce TriggerKind = iota
	TriggerWeekly
	TriggerMonthly
)

// Trigger describes when a scheduled entry fires. Exactly one variant is
// meaningful, selected by Kind.
type Trigger struct {
	Kind TriggerKind

	// At is the absolute fire time for TriggerOnce.
	At time.Time

	// Weekday applies to TriggerWeekly.
	Weekday time.Weekday

	// Day is the day of month for TriggerMonthly.
	Day int

	// Hour and Minute are the time of day for the recurring variants.
	Hour   int
	Minute int
}

// Once builds a single-fire trigger at the given time.
func Once(at time.Time) Trigger {
	return Trigger{Kind: TriggerOnce, At: at}
}

// Weekly builds a trigger that fires every week on the given weekday and
// time of day.
func Weekly(weekday time.Weekday, hour, minute int) Trigger {
	return Trigger{Kind: TriggerWeekly, Weekday: weekday, Hour: hour, Minute: minute}
}

// Monthly builds a trigger that fires every month on the given day of
// month and time of day.
func Monthly(day, hour, minute int) Trigger {
	return Trigger{Kind: TriggerMonthly, Day: day, Hour: hour, Minute: minute}
}

// Metadata keys and values carried on notification content.
const (
	MetaReminderID = "reminder_id"
	MetaAction     = "action"
	ActionReset    = "reset"
)

// Content is the payload delivered with a notification.
type Content struct {
	Title string
	Body  string

	// Silent suppresses any user-visible alert; used by reset triggers.
	Silent bool

	Metadata map[string]string
}

// Delivery is what the host passes back when a scheduled entry fires.
type Delivery struct {
	Identifier string
	Metadata   map[string]string
}

// Port is the scheduling surface of the host notification system.
// Registering an identifier that already exists replaces the previous
// entry. Cancel ignores identifiers that are not currently registered.
type Port interface {
	Register(id EntryID, content Content, trigger Trigger) error
	Cancel(identifiers []string) error
}
