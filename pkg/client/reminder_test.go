package client

import (
	"testing"
	"time"
)

func TestDueReminders(t *testing.T) {
	now := time.Date(2030, 1, 1, 9, 30, 0, 0, time.UTC)

	events := []Event{
		{ID: 1, Title: "due soon", DateTime: now.Add(30 * time.Minute), Reminder: "1 hour before"},
		{ID: 2, Title: "too early", DateTime: now.Add(2 * time.Hour), Reminder: "1 hour before"},
		{ID: 3, Title: "already started", DateTime: now.Add(-time.Minute), Reminder: "1 hour before"},
		{ID: 4, Title: "day lead", DateTime: now.Add(20 * time.Hour), Reminder: "1 day before"},
		{ID: 5, Title: "week lead not open", DateTime: now.Add(8 * 24 * time.Hour), Reminder: "1 week before"},
	}

	due := DueReminders(events, now)
	if len(due) != 2 {
		t.Fatalf("expected 2 due reminders, got %d", len(due))
	}
	if due[0].ID != 1 || due[1].ID != 4 {
		t.Errorf("unexpected due events: %+v", due)
	}
}

func TestReminderLeadDefaults(t *testing.T) {
	if lead := reminderLead(""); lead != time.Hour {
		t.Errorf("expected unknown reminder to fall back to 1 hour, got %v", lead)
	}
	if lead := reminderLead("1 week before"); lead != 7*24*time.Hour {
		t.Errorf("expected 1 week lead, got %v", lead)
	}
}
