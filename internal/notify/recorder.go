package notify

import (
	"context"
	"sync"
)

// Scheduled is one recorded reminder registration. Hour and Minute are
// set for daily reminders, Streak for streak-rescue nudges.
type Scheduled struct {
	Reminder Reminder
	Hour     int
	Minute   int
	Streak   int
}

// Recorder is a deterministic Notifier for testing. It grants the
// canned permission and records every schedule and cancel call.
type Recorder struct {
	mu sync.Mutex

	// Grant is the permission every request returns.
	Grant Permission

	Requests  int
	Schedules []Scheduled
	Cancels   []Reminder
}

// NewRecorder creates a Recorder that reports the given permission.
func NewRecorder(grant Permission) *Recorder {
	return &Recorder{Grant: grant}
}

func (r *Recorder) Supported() bool { return true }

func (r *Recorder) RequestPermission(context.Context) (Permission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Requests++
	return r.Grant, nil
}

func (r *Recorder) ScheduleDailyReminder(_ context.Context, hour, minute int) error {
	r.record(Scheduled{Reminder: ReminderDaily, Hour: hour, Minute: minute})
	return nil
}

func (r *Recorder) ScheduleStreakReminder(_ context.Context, streak int) error {
	r.record(Scheduled{Reminder: ReminderStreak, Streak: streak})
	return nil
}

func (r *Recorder) Cancel(_ context.Context, rem Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cancels = append(r.Cancels, rem)
	return nil
}

func (r *Recorder) CancelAll(ctx context.Context) error {
	if err := r.Cancel(ctx, ReminderDaily); err != nil {
		return err
	}
	return r.Cancel(ctx, ReminderStreak)
}

func (r *Recorder) record(s Scheduled) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Schedules = append(r.Schedules, s)
}
