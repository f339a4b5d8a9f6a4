package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kioku-app/kioku/internal/mnemo"
	"github.com/kioku-app/kioku/internal/router"
	"github.com/kioku-app/kioku/internal/screen"
	"github.com/kioku-app/kioku/internal/screens/stats"
	"github.com/kioku-app/kioku/internal/screens/study"
	"github.com/kioku-app/kioku/internal/session"
	"github.com/kioku-app/kioku/internal/srs"
	"github.com/kioku-app/kioku/internal/store"
	"github.com/kioku-app/kioku/internal/ui/components"
	"github.com/kioku-app/kioku/internal/ui/theme"
)

// Deps holds the services the home screen and its children need.
type Deps struct {
	Store   *store.Store
	Backend *store.SessionBackend
	Mnemo   *mnemo.Service // nil when no LLM provider is configured
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu        components.Menu
	reviewsDue  int
	burnedCount int
	studiedSet  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen, loading counts from the store.
func New(deps Deps) *HomeScreen {
	ctx := context.Background()
	now := time.Now()

	var reviewsDue, burnedCount, studied int
	if deps.Store != nil {
		mem := deps.Store.MemoryStates()
		if due, err := mem.DueUnitIDs(ctx, now, 0); err == nil {
			reviewsDue = len(due)
		}
		if byStage, err := mem.CountByStage(ctx); err == nil {
			burnedCount = byStage[srs.StageBurned]
		}
		if ids, err := mem.StudiedUnitIDs(ctx); err == nil {
			studied = len(ids)
		}
	}

	items := []components.MenuItem{
		{Label: "START SESSION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(study.Deps{
					Backend: deps.Backend,
					Mnemo:   deps.Mnemo,
					Scope:   session.Scope{},
				})}
			}
		}},
		{Label: "REVIEWS ONLY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(study.Deps{
					Backend: deps.Backend,
					Mnemo:   deps.Mnemo,
					Scope:   session.Scope{ReviewsOnly: true},
				})}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.Store)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		reviewsDue:  reviewsDue,
		burnedCount: burnedCount,
		studiedSet:  studied,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("記憶 KIOKU"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Japanese, one review at a time"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("%d due now   •   %d units studied   •   %d burned",
		h.reviewsDue, h.studiedSet, h.burnedCount)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
