package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS reminders (
	id                      TEXT PRIMARY KEY,
	name                    TEXT NOT NULL,
	account                 TEXT NOT NULL DEFAULT '',
	description             TEXT NOT NULL DEFAULT '',
	next_due_date           DATETIME NOT NULL,
	recurrence              TEXT NOT NULL DEFAULT 'one-time',
	next_notification_date  DATETIME NOT NULL,
	notification_recurrence TEXT NOT NULL DEFAULT 'none',
	status                  TEXT NOT NULL DEFAULT 'pending'
		CHECK(status IN ('pending', 'in_progress', 'completed')),
	target_count            INTEGER NOT NULL DEFAULT 1 CHECK(target_count >= 1),
	current_count           INTEGER NOT NULL DEFAULT 0 CHECK(current_count >= 0),
	created_at              DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at              DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_reminders_status ON reminders(status);
CREATE INDEX IF NOT EXISTS idx_reminders_next_due_date ON reminders(next_due_date);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
