package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kioku-app/kioku/internal/screen"
	"github.com/kioku-app/kioku/internal/srs"
	"github.com/kioku-app/kioku/internal/store"
	"github.com/kioku-app/kioku/internal/ui/components"
	"github.com/kioku-app/kioku/internal/ui/theme"
)

const recentBatchLimit = 10

// StatsScreen shows stage distribution, review totals, and recent batches.
type StatsScreen struct {
	byStage       map[srs.Stage]int
	totalReviews  int
	passedReviews int
	recent        []store.BatchRecord
	errMsg        string
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a StatsScreen, loading counts from the store.
func New(s *store.Store) *StatsScreen {
	scr := &StatsScreen{}
	if s == nil {
		scr.errMsg = "store unavailable"
		return scr
	}

	ctx := context.Background()
	byStage, err := s.MemoryStates().CountByStage(ctx)
	if err != nil {
		scr.errMsg = err.Error()
		return scr
	}
	passed, total, err := s.Events().ReviewAccuracy(ctx)
	if err != nil {
		scr.errMsg = err.Error()
		return scr
	}
	recent, err := s.Batches().Recent(ctx, recentBatchLimit)
	if err != nil {
		scr.errMsg = err.Error()
		return scr
	}

	scr.byStage = byStage
	scr.totalReviews = total
	scr.passedReviews = passed
	scr.recent = recent
	return scr
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(sectionTitle("Facets by stage", width))
	b.WriteString("\n")

	totalFacets := 0
	for _, st := range []srs.Stage{srs.StageNew, srs.StageLearning, srs.StageReview, srs.StageBurned} {
		totalFacets += s.byStage[st]
	}
	for _, st := range []srs.Stage{srs.StageLearning, srs.StageReview, srs.StageBurned} {
		count := s.byStage[st]
		var pct float64
		if totalFacets > 0 {
			pct = float64(count) / float64(totalFacets)
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%-9s %4d", stageLabel(st), count),
			pct, false, min(width-8, 60))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(reviewLine(s.passedReviews, s.totalReviews)))
	b.WriteString("\n\n")

	b.WriteString(sectionTitle("Recent batches", width))
	b.WriteString("\n")

	if len(s.recent) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No sessions yet."))
		return b.String()
	}

	var rows strings.Builder
	rows.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%-12s  %-11s  %-7s  %s", "Date", "Status", "Items", "Mistakes")))
	rows.WriteString("\n")
	for _, batch := range s.recent {
		rows.WriteString(fmt.Sprintf("%-12s  %-11s  %2d/%-4d  %d",
			batch.CreatedAt.Local().Format("Jan 2 15:04"),
			statusLabel(batch),
			batch.CompletedCount,
			batch.TotalCount,
			batch.Mistakes,
		))
		rows.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(rows.String())))

	return b.String()
}

func reviewLine(passed, total int) string {
	if total == 0 {
		return "No reviews yet"
	}
	return fmt.Sprintf("%d reviews all time  ·  %.0f%% accuracy",
		total, 100*float64(passed)/float64(total))
}

func sectionTitle(title string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(title)
}

func stageLabel(st srs.Stage) string {
	switch st {
	case srs.StageLearning:
		return "Learning"
	case srs.StageReview:
		return "Review"
	case srs.StageBurned:
		return "Burned"
	default:
		return "New"
	}
}

func statusLabel(b store.BatchRecord) string {
	if b.Status == store.BatchInProgress && time.Since(b.CreatedAt) > 24*time.Hour {
		return "stale"
	}
	return b.Status
}
