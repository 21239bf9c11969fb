package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/edonnat/chronos/internal/catalog"
	"github.com/edonnat/chronos/internal/flow"
	"github.com/edonnat/chronos/internal/quizgen"
	"github.com/edonnat/chronos/internal/ui/components"
	"github.com/edonnat/chronos/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.quitting {
		return centered(width, height,
			theme.Title.Render("Leave this lesson?")+"\n\n"+
				theme.Subtitle.Render("Progress in the lesson is lost. [Y]es / [N]o"))
	}

	var body string
	switch {
	case s.std != nil:
		body = s.standardView(width)
	default:
		body = s.erasView(width)
	}

	if s.feedback {
		body += "\n\n" + s.feedbackView(width)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (s *Screen) standardView(width int) string {
	f := s.std
	switch f.Phase {
	case flow.PhaseIntro:
		return s.introView(width)

	case flow.PhasePeriodIntro:
		return s.periodView(width)

	case flow.PhaseLearnCard:
		ev, _ := f.CurrentCard()
		header := theme.Subtitle.Render(
			fmt.Sprintf("Card %d of %d", f.CardIndex+1, len(f.Cards)))
		card := components.NewStudyCard(ev, s.starred(ev.ID), min(width-4, 72)).View()
		hint := theme.Hint.Render("Take it in, then press Enter for the quiz.")
		return header + "\n\n" + card + "\n\n" + hint

	case flow.PhaseLearnQuiz:
		header := theme.Subtitle.Render(
			fmt.Sprintf("Card %d of %d  ·  question %d of 2", f.CardIndex+1, len(f.Cards), f.QuizIndex+1))
		return header + "\n" + s.progressLine(width) + "\n\n" + s.questionView()

	case flow.PhaseRecapTransition:
		return theme.Title.Render("Quick recap") + "\n\n" +
			theme.Subtitle.Render(fmt.Sprintf("%d questions on what you just learned. Press Enter.", f.RecapLength()))

	case flow.PhaseRecap:
		header := theme.Subtitle.Render(
			fmt.Sprintf("Recap  ·  %d of %d", f.RecapIndex+1, f.RecapLength()))
		return header + "\n" + s.progressLine(width) + "\n\n" + s.questionView()

	case flow.PhaseFinalReview:
		ev, _ := f.CurrentCard()
		header := theme.Title.Render("One more look") + "\n" +
			theme.Subtitle.Render(fmt.Sprintf("%d of %d", f.ReviewIndex+1, len(f.Review)))
		card := components.NewStudyCard(ev, s.starred(ev.ID), min(width-4, 72)).View()
		return header + "\n\n" + card + "\n\n" + theme.Hint.Render("Press Enter when ready.")
	}
	return ""
}

func (s *Screen) erasView(width int) string {
	f := s.eras
	switch f.Phase {
	case flow.ErasIntro:
		return theme.Title.Render("The Five Eras") + "\n\n" +
			theme.Body.Render("All of history, sorted into five great stretches of time.\n"+
				"Learn their names and spans; every other lesson hangs off them.") + "\n\n" +
			theme.Hint.Render("Press Enter to begin.")

	case flow.ErasLearn:
		era, _ := f.CurrentEra()
		header := theme.Subtitle.Render(fmt.Sprintf("Era %d of 5", f.LearnIndex+1))
		return header + "\n\n" + eraCard(era, min(width-4, 72)) + "\n\n" +
			theme.Hint.Render("Press Enter for the next era.")

	case flow.ErasQuiz:
		if f.OnMatching() {
			header := theme.Title.Render("Match each era to its dates")
			return header + "\n\n" + s.board.View() + "\n\n" +
				theme.Hint.Render("Press C to check when all five are paired.")
		}
		header := theme.Subtitle.Render(
			fmt.Sprintf("Question %d of %d", f.QuizIndex+1, f.QuestionCount()))
		return header + "\n\n" + s.mc.View()
	}
	return ""
}

func (s *Screen) introView(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(s.lesson.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(s.lesson.Subtitle))
	b.WriteString("\n\n")
	if s.lesson.Mood != "" {
		b.WriteString(theme.Hint.Width(min(width-8, 64)).Render(s.lesson.Mood))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Body.Render(
		fmt.Sprintf("%d events to study. Press Enter to start.", len(s.std.Cards))))
	return b.String()
}

func (s *Screen) periodView(width int) string {
	era, ok := catalog.GetEra(s.lesson.PeriodID)
	if !ok {
		return ""
	}
	return theme.Title.Render("Entering a new era") + "\n\n" +
		eraCard(era, min(width-4, 72)) + "\n\n" +
		theme.Hint.Render("Press Enter to continue.")
}

// progressLine shows how far through the lesson's questions we are.
func (s *Screen) progressLine(width int) string {
	f := s.std
	total := len(f.Cards)*2 + f.RecapLength()
	if total == 0 {
		return ""
	}
	pct := float64(len(f.Results)) / float64(total)
	return components.NewProgressBar("", pct, false, min(width-4, 40)).View()
}

func (s *Screen) questionView() string {
	q, ok := s.std.CurrentQuestion()
	if !ok {
		return ""
	}
	if q.FreeText {
		ev, _ := catalog.GetEvent(q.EventID)
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("What year: " + ev.Title + "?")
		return prompt + "\n\n" + s.year.View()
	}
	return s.mc.View()
}

func (s *Screen) feedbackView(width int) string {
	color := theme.GradeColor(s.lastGrade)
	var text string
	switch {
	case s.retrying:
		text = "Not quite. Try once more!"
	case s.lastGrade == quizgen.GradeGreen:
		text = "Correct!"
	case s.lastGrade == quizgen.GradeYellow:
		text = "Close!" + s.correctAnswerNote()
	default:
		text = "Not this time." + s.correctAnswerNote()
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(text) + "\n" + theme.Hint.Render("Press any key.")
}

// correctAnswerNote names the right answer after a miss, when the
// question has a single nameable one.
func (s *Screen) correctAnswerNote() string {
	if s.std == nil {
		return ""
	}
	q, ok := s.std.CurrentQuestion()
	if !ok {
		return ""
	}
	if q.FreeText || q.Type == quizgen.QuestionDate {
		if ev, found := catalog.GetEvent(q.EventID); found {
			return " It was " + quizgen.FormatYear(ev.RepresentativeYear()) + "."
		}
	}
	for _, opt := range q.Options {
		if opt.Correct {
			return " It was: " + opt.Label + "."
		}
	}
	return ""
}

func (s *Screen) starred(eventID string) bool {
	return s.prog.State().StarredEvents.Has(eventID)
}

func eraCard(era catalog.Era, width int) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(era.Name))
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render(era.Label))
	if start, ok := catalog.GetEvent(era.StartEventID); ok {
		lines = append(lines, "")
		lines = append(lines, theme.Body.Render("Opens with: "+start.Title))
	}
	if end, ok := catalog.GetEvent(era.EndEventID); ok {
		lines = append(lines, theme.Body.Render("Closes with: "+end.Title))
	}
	return theme.Card.Width(width).Render(strings.Join(lines, "\n"))
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
