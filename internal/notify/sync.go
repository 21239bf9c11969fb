package notify

import (
	"context"
	"fmt"

	"github.com/edonnat/chronos/internal/progress"
)

// Sync reconciles the platform's scheduled reminders with the
// learner's notification settings. It is called after every settings
// change that touches notifications; streak is the learner's current
// streak, which the rescue nudge mentions.
func Sync(ctx context.Context, n Notifier, s progress.Settings, streak int) error {
	if !n.Supported() {
		return nil
	}

	if !s.NotificationsEnabled {
		if err := n.CancelAll(ctx); err != nil {
			return fmt.Errorf("cancel reminders: %w", err)
		}
		return nil
	}

	if err := n.ScheduleDailyReminder(ctx, s.ReminderHour, s.ReminderMinute); err != nil {
		return fmt.Errorf("schedule daily reminder: %w", err)
	}

	if s.StreakReminder {
		if err := n.ScheduleStreakReminder(ctx, streak); err != nil {
			return fmt.Errorf("schedule streak reminder: %w", err)
		}
	} else if err := n.Cancel(ctx, ReminderStreak); err != nil {
		return fmt.Errorf("cancel streak reminder: %w", err)
	}
	return nil
}
