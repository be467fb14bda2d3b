package client

import "time"

// DueReminders returns the events whose reminder window has opened but
// that have not started yet. It is a best-effort check meant to run
// once when the client starts; nothing is scheduled.
func DueReminders(events []Event, now time.Time) []Event {
	var due []Event
	for _, e := range events {
		remindAt := e.DateTime.Add(-reminderLead(e.Reminder))
		if !now.Before(remindAt) && now.Before(e.DateTime) {
			due = append(due, e)
		}
	}
	return due
}

func reminderLead(reminder string) time.Duration {
	switch reminder {
	case "1 day before":
		return 24 * time.Hour
	case "1 week before":
		return 7 * 24 * time.Hour
	default:
		return time.Hour
	}
}
