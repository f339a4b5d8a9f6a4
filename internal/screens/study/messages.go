package study

import (
	"time"

	sess "github.com/kioku-app/kioku/internal/session"
)

// sessionInitMsg is sent when the session controller has fetched its items
// and entered the lesson or quiz phase.
type sessionInitMsg struct {
	Ctrl *sess.Controller
	Err  error
}

// enrichmentTickMsg polls the mnemonic service for async results.
type enrichmentTickMsg time.Time

// feedbackDoneMsg is sent when the learner dismisses the grade feedback.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to switch the screen into the summary view.
type sessionEndMsg struct{}
