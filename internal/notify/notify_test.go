package notify

import (
	"context"
	"testing"

	"github.com/edonnat/chronos/internal/progress"
)

func TestUnsupportedIsInert(t *testing.T) {
	var n Unsupported
	ctx := context.Background()

	if n.Supported() {
		t.Fatal("Unsupported reports support")
	}
	perm, err := n.RequestPermission(ctx)
	if err != nil {
		t.Fatalf("request permission: %v", err)
	}
	if perm != PermissionUnsupported {
		t.Errorf("permission = %q, want unsupported", perm)
	}
	if err := n.ScheduleDailyReminder(ctx, 19, 0); err != nil {
		t.Errorf("schedule daily: %v", err)
	}
	if err := n.ScheduleStreakReminder(ctx, 5); err != nil {
		t.Errorf("schedule streak: %v", err)
	}
	if err := n.CancelAll(ctx); err != nil {
		t.Errorf("cancel all: %v", err)
	}
}

func TestSyncSchedulesEnabledReminders(t *testing.T) {
	rec := NewRecorder(PermissionGranted)
	s := progress.DefaultState().Settings
	s.NotificationsEnabled = true
	s.StreakReminder = true
	s.ReminderHour = 20
	s.ReminderMinute = 15

	if err := Sync(context.Background(), rec, s, 3); err != nil {
		t.Fatalf("sync: %v", err)
	}

	if len(rec.Schedules) != 2 {
		t.Fatalf("schedules = %d, want 2", len(rec.Schedules))
	}
	if rec.Schedules[0].Reminder != ReminderDaily || rec.Schedules[0].Hour != 20 || rec.Schedules[0].Minute != 15 {
		t.Errorf("daily schedule = %+v", rec.Schedules[0])
	}
	if rec.Schedules[1].Reminder != ReminderStreak || rec.Schedules[1].Streak != 3 {
		t.Errorf("second schedule = %+v, want streak nudge for a 3-day streak", rec.Schedules[1])
	}
}

func TestSyncWithoutStreakReminder(t *testing.T) {
	rec := NewRecorder(PermissionGranted)
	s := progress.DefaultState().Settings
	s.NotificationsEnabled = true
	s.StreakReminder = false

	if err := Sync(context.Background(), rec, s, 3); err != nil {
		t.Fatalf("sync: %v", err)
	}

	if len(rec.Schedules) != 1 || rec.Schedules[0].Reminder != ReminderDaily {
		t.Fatalf("schedules = %+v, want daily only", rec.Schedules)
	}
	if len(rec.Cancels) != 1 || rec.Cancels[0] != ReminderStreak {
		t.Errorf("cancels = %+v, want streak", rec.Cancels)
	}
}

func TestSyncDisabledCancelsEverything(t *testing.T) {
	rec := NewRecorder(PermissionGranted)
	s := progress.DefaultState().Settings
	s.NotificationsEnabled = false

	if err := Sync(context.Background(), rec, s, 3); err != nil {
		t.Fatalf("sync: %v", err)
	}

	if len(rec.Schedules) != 0 {
		t.Errorf("schedules = %+v, want none", rec.Schedules)
	}
	if len(rec.Cancels) != 2 {
		t.Errorf("cancels = %+v, want both reminders", rec.Cancels)
	}
}

func TestSyncSkipsUnsupportedPlatform(t *testing.T) {
	s := progress.DefaultState().Settings
	s.NotificationsEnabled = true
	if err := Sync(context.Background(), Unsupported{}, s, 3); err != nil {
		t.Fatalf("sync: %v", err)
	}
}
