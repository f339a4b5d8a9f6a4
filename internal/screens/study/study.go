package study

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/kioku-app/kioku/internal/mnemo"
	"github.com/kioku-app/kioku/internal/router"
	"github.com/kioku-app/kioku/internal/screen"
	sess "github.com/kioku-app/kioku/internal/session"
	"github.com/kioku-app/kioku/internal/srs"
	"github.com/kioku-app/kioku/internal/store"
	"github.com/kioku-app/kioku/internal/ui/components"
	"github.com/kioku-app/kioku/internal/ui/layout"
)

// Deps holds the services a study session needs.
type Deps struct {
	Backend *store.SessionBackend
	Mnemo   *mnemo.Service // nil disables AI mnemonics
	Scope   sess.Scope
}

// StudyScreen drives one lesson+quiz session.
type StudyScreen struct {
	deps Deps
	ctrl *sess.Controller

	input components.TextInput

	showingFeedback    bool
	showingQuitConfirm bool
	showingSummary     bool
	restDay            bool
	nothingDue         bool
	errMsg             string

	lastItem   sess.QuizItem
	lastResult sess.AnswerResult
	lastAnswer string

	enrichments map[string]*mnemo.Enrichment
	polling     bool
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.EscInterceptor = (*StudyScreen)(nil)

// New creates a StudyScreen for the given scope.
func New(deps Deps) *StudyScreen {
	return &StudyScreen{
		deps:        deps,
		input:       components.NewTextInput("Type your answer...", 40),
		enrichments: make(map[string]*mnemo.Enrichment),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return tea.Batch(s.initSession(), s.input.Init())
}

func (s *StudyScreen) Title() string {
	if s.deps.Scope.ReviewsOnly {
		return "Reviews"
	}
	return "Study"
}

// InterceptEsc keeps the app from popping the screen while a session is
// live; esc opens the quit confirmation instead.
func (s *StudyScreen) InterceptEsc() bool {
	return s.ctrl != nil && !s.showingSummary && s.errMsg == "" && !s.restDay && !s.nothingDue
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.showingSummary || s.restDay || s.nothingDue || s.errMsg != "":
		return []layout.KeyHint{
			{Key: "Enter", Description: "Home"},
		}
	case s.ctrl != nil && s.ctrl.Phase() == sess.PhaseLesson:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next card"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case enrichmentTickMsg:
		return s.handleEnrichmentTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		s.showingSummary = true
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.quizInputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// initSession builds the controller and fetches eligible items.
func (s *StudyScreen) initSession() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		if deps.Backend == nil {
			return sessionInitMsg{Err: errors.New("store unavailable")}
		}
		ctrl := sess.NewController(sess.Options{
			Source:  deps.Backend,
			Writer:  deps.Backend,
			Batches: deps.Backend,
			Events:  deps.Backend,
		})
		if err := ctrl.Start(context.Background(), deps.Scope); err != nil {
			return sessionInitMsg{Err: err}
		}
		return sessionInitMsg{Ctrl: ctrl}
	}
}

func (s *StudyScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, sess.ErrDailyLimitReached):
			s.restDay = true
		case errors.Is(msg.Err, sess.ErrNoEligibleItems):
			s.nothingDue = true
		default:
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}

	s.ctrl = msg.Ctrl
	return s, s.requestEnrichment()
}

// requestEnrichment kicks off mnemonic generation for the current lesson
// card and starts polling for the result.
func (s *StudyScreen) requestEnrichment() tea.Cmd {
	if s.deps.Mnemo == nil || s.ctrl == nil || s.ctrl.Phase() != sess.PhaseLesson {
		return nil
	}
	item, ok := s.ctrl.CurrentLessonItem()
	if !ok {
		return nil
	}
	if _, have := s.enrichments[item.Unit.ID]; have {
		return nil
	}
	if e, ok := s.deps.Mnemo.Cached(item.Unit.ID); ok {
		s.enrichments[item.Unit.ID] = e
		return nil
	}

	s.deps.Mnemo.RequestEnrichment(context.Background(), item.Unit)
	if s.polling {
		return nil
	}
	s.polling = true
	return enrichmentTick()
}

func (s *StudyScreen) handleEnrichmentTick() (screen.Screen, tea.Cmd) {
	if s.deps.Mnemo == nil {
		s.polling = false
		return s, nil
	}
	if e, ok := s.deps.Mnemo.ConsumeEnrichment(); ok {
		s.enrichments[e.UnitID] = e
	}

	// Keep polling only while a lesson card could still use the result.
	if s.ctrl == nil || s.ctrl.Phase() != sess.PhaseLesson {
		s.polling = false
		return s, nil
	}
	if item, ok := s.ctrl.CurrentLessonItem(); ok {
		if _, have := s.enrichments[item.Unit.ID]; !have {
			return s, enrichmentTick()
		}
	}
	s.polling = false
	return s, nil
}

func (s *StudyScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.input.Reset()

	if s.ctrl != nil && s.ctrl.Phase() == sess.PhaseComplete {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Terminal views pop back to home on any confirm key.
	if s.errMsg != "" || s.restDay || s.nothingDue || s.showingSummary {
		switch key {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s.abandonSession()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.ctrl == nil {
		return s, nil
	}

	switch s.ctrl.Phase() {
	case sess.PhaseLesson:
		switch key {
		case "esc":
			s.showingQuitConfirm = true
			return s, nil
		case "enter", "space", " ", "right", "l":
			if err := s.ctrl.AdvanceLesson(); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s, s.requestEnrichment()
		}
		return s, nil

	case sess.PhaseQuiz:
		switch key {
		case "esc":
			s.showingQuitConfirm = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submitAnswer grades the typed answer against the current quiz item.
func (s *StudyScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	item, ok := s.ctrl.CurrentQuizItem()
	if !ok {
		return s, nil
	}
	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}

	passed := answerMatches(item, answer)
	result, err := s.ctrl.SubmitAnswer(context.Background(), srs.FromBinary(passed))
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.input.Submit(passed)
	s.lastItem = item
	s.lastResult = result
	s.lastAnswer = answer
	s.showingFeedback = true
	return s, nil
}

func (s *StudyScreen) abandonSession() (screen.Screen, tea.Cmd) {
	if s.ctrl != nil {
		_ = s.ctrl.Abandon(context.Background())
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *StudyScreen) quizInputActive() bool {
	return s.ctrl != nil &&
		s.ctrl.Phase() == sess.PhaseQuiz &&
		!s.showingFeedback && !s.showingQuitConfirm && !s.showingSummary
}

func enrichmentTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return enrichmentTickMsg(t)
	})
}
