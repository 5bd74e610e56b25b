package member

import "time"

// Status is a member's lifecycle state, derived from the due date. It is
// computed on every read and never persisted.
type Status string

const (
	StatusActive       Status = "Active"
	StatusExpiringSoon Status = "Expiring Soon"
	StatusExpired      Status = "Expired"
)

// expiringSoonWindow is how far ahead of the due date a membership is
// reported as expiring.
const expiringSoonWindow = 7

// StatusAt classifies a due date relative to now. Both instants are truncated
// to day granularity, so a membership due later today is still "Expiring Soon"
// rather than "Expired".
func StatusAt(dueDate, now time.Time) Status {
	due := truncateToDay(dueDate)
	today := truncateToDay(now)

	switch {
	case due.Before(today):
		return StatusExpired
	case !due.After(today.AddDate(0, 0, expiringSoonWindow)):
		return StatusExpiringSoon
	default:
		return StatusActive
	}
}

// truncateToDay maps t to midnight UTC of its calendar date. Normalizing both
// operands into one zone keeps the comparison a pure calendar-date one; due
// dates parse as UTC midnights while now carries the server zone.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
