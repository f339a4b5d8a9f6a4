package study

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kioku-app/kioku/internal/curriculum"
	sess "github.com/kioku-app/kioku/internal/session"
	"github.com/kioku-app/kioku/internal/srs"
	"github.com/kioku-app/kioku/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return centered(width, theme.Error, "Something went wrong:\n\n"+s.errMsg)
	case s.restDay:
		return renderRestDay(width)
	case s.nothingDue:
		return centered(width, theme.TextDim, "Nothing to study right now.\n\nCome back when reviews are due.")
	case s.showingQuitConfirm:
		return centered(width, theme.Text, "End this session?\n\nProgress on graded items is already saved.")
	case s.showingSummary:
		return s.renderSummary(width)
	case s.showingFeedback:
		return s.renderFeedback(width)
	case s.ctrl == nil:
		return centered(width, theme.TextDim, "Loading session...")
	}

	switch s.ctrl.Phase() {
	case sess.PhaseLesson:
		return s.renderLesson(width)
	case sess.PhaseQuiz:
		return s.renderQuiz(width)
	default:
		return s.renderSummary(width)
	}
}

// renderRestDay is the dedicated daily-limit view. It must stay visually
// distinct from ordinary "nothing due" and error states.
func renderRestDay(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("お疲れさま！"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("You have hit today's lesson limit."))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Rest your memory. New lessons unlock tomorrow."))
	return b.String()
}

func (s *StudyScreen) renderLesson(width int) string {
	item, ok := s.ctrl.CurrentLessonItem()
	if !ok {
		return centered(width, theme.TextDim, "Preparing quiz...")
	}
	u := item.Unit

	var b strings.Builder

	progress := fmt.Sprintf("Lesson %d of %d", s.ctrl.Queue().LessonIndex()+1, s.ctrl.Queue().LessonCount())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(progress))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(fmt.Sprintf("%s · Level %d", curriculum.KindDisplayName(u.Kind), u.Level)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(u.Character))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Meaning: " + u.Meaning))
	b.WriteString("\n")
	if u.Reading != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("Reading: " + u.Reading))
		b.WriteString("\n")
	}
	if u.Kind == curriculum.KindGrammar && u.SentenceJA != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(u.SentenceJA))
		b.WriteString("\n")
	}

	if u.Mnemonic != "" {
		b.WriteString("\n")
		b.WriteString(block(width, theme.TextDim, u.Mnemonic))
	}

	if e, ok := s.enrichments[u.ID]; ok {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("✦ AI mnemonic"))
		b.WriteString("\n")
		b.WriteString(block(width, theme.Text, e.Mnemonic))
		if e.SentenceJA != "" {
			b.WriteString("\n")
			b.WriteString(block(width, theme.TextDim, e.SentenceJA+"\n"+e.SentenceEN))
		}
	} else if s.deps.Mnemo != nil && s.polling {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("✦ thinking of a mnemonic..."))
	}

	return b.String()
}

func (s *StudyScreen) renderQuiz(width int) string {
	item, ok := s.ctrl.CurrentQuizItem()
	if !ok {
		return centered(width, theme.TextDim, "...")
	}

	var b strings.Builder

	completed, total := s.ctrl.Progress()
	info := fmt.Sprintf("%d / %d retired   mistakes %d", completed, total, s.ctrl.Queue().Mistakes())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(facetLabel(item.Facet)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(item.Prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View()))

	return b.String()
}

func (s *StudyScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastResult.Passed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("正解！"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Expected: " + s.lastItem.Answer))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("You typed: " + s.lastAnswer))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(scheduleLine(s.lastResult)))

	return b.String()
}

func (s *StudyScreen) renderSummary(width int) string {
	sum := s.ctrl.Summary()

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d of %d items retired", sum.Completed, sum.Total)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d mistakes", sum.Mistakes)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to return home"))
	return b.String()
}

// scheduleLine describes the item's next appearance after a grade.
func scheduleLine(res sess.AnswerResult) string {
	st := res.NewState
	if st.Stage == srs.StageBurned {
		return "Burned. You will not see this again."
	}
	if !res.Passed {
		if res.Requeued {
			return "It comes back later this session."
		}
		return "Back to relearning."
	}
	if st.IntervalDays < 1 {
		hours := int(st.IntervalDays*24 + 0.5)
		if hours < 1 {
			hours = 1
		}
		return fmt.Sprintf("Next review in %dh", hours)
	}
	return fmt.Sprintf("Next review in %dd", int(st.IntervalDays+0.5))
}

func facetLabel(facet string) string {
	switch facet {
	case curriculum.FacetReading:
		return "READING"
	case curriculum.FacetCloze:
		return "FILL THE BLANK"
	default:
		return "MEANING"
	}
}

func centered(width int, fg color.Color, text string) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}

func block(width int, fg color.Color, text string) string {
	inner := lipgloss.NewStyle().
		Width(min(width-8, 64)).
		Foreground(fg).
		Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, inner)
}
