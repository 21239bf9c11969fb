// Package notify abstracts the platform reminder surface. The terminal
// build ships the Unsupported implementation; the interface keeps the
// settings screen honest about what the platform can actually do.
package notify

import "context"

// Permission is the outcome of a permission request.
type Permission string

const (
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
	PermissionPrompt      Permission = "prompt"
	PermissionUnsupported Permission = "unsupported"
)

// Reminder identifies a scheduled notification.
type Reminder string

const (
	ReminderDaily  Reminder = "daily"
	ReminderStreak Reminder = "streak"
)

// Notifier schedules local reminders.
type Notifier interface {
	// Supported reports whether the platform can deliver notifications
	// at all. When false, every other method is a no-op.
	Supported() bool

	// RequestPermission asks the platform for notification permission.
	RequestPermission(ctx context.Context) (Permission, error)

	// ScheduleDailyReminder arranges a repeating reminder at the given
	// local time. Rescheduling replaces the previous daily reminder.
	ScheduleDailyReminder(ctx context.Context, hour, minute int) error

	// ScheduleStreakReminder arranges the evening streak-rescue nudge,
	// worded around the streak the learner is about to lose.
	ScheduleStreakReminder(ctx context.Context, streak int) error

	// Cancel removes one scheduled reminder.
	Cancel(ctx context.Context, r Reminder) error

	// CancelAll removes every scheduled reminder.
	CancelAll(ctx context.Context) error
}

// Unsupported is the Notifier for platforms without a notification
// surface. Supported reports false and everything else succeeds
// silently, so callers need no platform branching.
type Unsupported struct{}

func (Unsupported) Supported() bool { return false }

func (Unsupported) RequestPermission(context.Context) (Permission, error) {
	return PermissionUnsupported, nil
}

func (Unsupported) ScheduleDailyReminder(context.Context, int, int) error { return nil }

func (Unsupported) ScheduleStreakReminder(context.Context, int) error { return nil }

func (Unsupported) Cancel(context.Context, Reminder) error { return nil }

func (Unsupported) CancelAll(context.Context) error { return nil }
