package session

import (
	"fmt"

	"github.com/kioku-app/kioku/internal/curriculum"
	"github.com/kioku-app/kioku/internal/srs"
)

// Item is a study unit selected for a session together with the per-facet
// memory states backing it. New reports whether the unit has never been
// studied before; new items get an introduction card in the lesson phase,
// due items go straight to the quiz queue.
type Item struct {
	Unit   curriculum.Unit
	New    bool
	States map[string]srs.MemoryState
}

// QuizItem is a single facet-level question in the quiz phase. Each facet of
// a unit is retired independently, so one unit may contribute several quiz
// items to a session.
type QuizItem struct {
	ID     string
	UnitID string
	Facet  string
	Prompt string
	Answer string
	State  srs.MemoryState
}

func quizItemID(unitID, facet string) string {
	return fmt.Sprintf("%s/%s", unitID, facet)
}
