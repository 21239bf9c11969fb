package progress

import "time"

// Reduce applies one action and returns the next state. The input
// state is never mutated. now drives streak accounting and mastery
// timestamps so tests can pin the clock.
func Reduce(s State, a Action, now time.Time) State {
	switch act := a.(type) {
	case CompleteLesson:
		next := s.clone()
		next.CompletedLessons[act.LessonID]++
		return next

	case MarkEventsSeen:
		next := s.clone()
		for _, id := range act.EventIDs {
			next.SeenEvents[id] = struct{}{}
		}
		return next

	case UpdateEventMastery:
		next := s.clone()
		rec := next.EventMastery[act.EventID] // zero value when absent
		rec.setAxis(act.Type, act.Score)
		rec.TimesReviewed++
		rec.LastSeen = now
		rec.Overall = OverallMastery(rec)
		next.EventMastery[act.EventID] = rec
		return next

	case AddXP:
		if act.Amount < 0 {
			return s
		}
		next := s.clone()
		next.TotalXP += act.Amount
		today := now.Format(DateLayout)
		switch next.LastActiveDate {
		case today:
			// Already counted today; streak unchanged.
		case yesterday(now):
			next.CurrentStreak++
		default:
			next.CurrentStreak = 1
		}
		next.LastActiveDate = today
		return next

	case RefreshStreak:
		if s.LastActiveDate == "" {
			return s
		}
		today := now.Format(DateLayout)
		if s.LastActiveDate == today || s.LastActiveDate == yesterday(now) {
			return s
		}
		// Missed at least one full day: the streak is gone. AddXP will
		// restart it at 1 on the next earn.
		next := s.clone()
		next.CurrentStreak = 0
		return next

	case ToggleStar:
		next := s.clone()
		if next.StarredEvents.Has(act.EventID) {
			delete(next.StarredEvents, act.EventID)
		} else {
			next.StarredEvents[act.EventID] = struct{}{}
		}
		return next

	case ToggleSettings:
		next := s.clone()
		next.SettingsOpen = !next.SettingsOpen
		return next

	case DismissOnboarding:
		next := s.clone()
		next.OnboardingDismissed = true
		return next

	case SetCardsPerLesson:
		if act.N < 1 || act.N > 3 {
			return s
		}
		next := s.clone()
		next.Settings.CardsPerLesson = act.N
		return next

	case SetRecapPerCard:
		if act.N < 0 || act.N > 2 {
			return s
		}
		next := s.clone()
		next.Settings.RecapPerCard = act.N
		return next

	case SetNotificationsEnabled:
		next := s.clone()
		next.Settings.NotificationsEnabled = act.Enabled
		return next

	case SetReminderTime:
		if act.Hour < 0 || act.Hour > 23 || act.Minute < 0 || act.Minute > 59 {
			return s
		}
		next := s.clone()
		next.Settings.ReminderHour = act.Hour
		next.Settings.ReminderMinute = act.Minute
		return next

	case SetStreakReminder:
		next := s.clone()
		next.Settings.StreakReminder = act.Enabled
		return next

	case ImportState:
		next := act.State.clone()
		next.SettingsOpen = false
		next.OnboardingDismissed = false
		return next

	case ResetProgress:
		return DefaultState()
	}

	return s
}

func yesterday(now time.Time) string {
	return now.AddDate(0, 0, -1).Format(DateLayout)
}
