package session

import (
	"sort"
	"time"

	"github.com/kioku-app/kioku/internal/curriculum"
	"github.com/kioku-app/kioku/internal/srs"
)

// ReinsertOffset is how far back a failed quiz item is pushed before it comes
// up again. At least one other item is asked in between whenever the queue
// has one.
const ReinsertOffset = 3

// AnswerResult reports the outcome of grading the current quiz item.
type AnswerResult struct {
	Item     QuizItem
	Rating   srs.Rating
	Passed   bool
	NewState srs.MemoryState
	Requeued bool
	// UnitDone is true when this grade retired the unit's last facet.
	UnitDone bool
}

// Queue drives the two phases of a study session: a lesson walk over new
// units, then a quiz over every facet of every item in the batch. Failed
// quiz items cycle back into the queue until they pass; a facet is retired
// by its first passing grade.
type Queue struct {
	items     []Item
	lessonIdx int

	quiz      []QuizItem
	remaining map[string]int
	failed    map[string]bool

	started   bool
	completed int
	total     int
	mistakes  int

	now func() time.Time
}

// NewQueue builds a session queue over items. Units the learner has not seen
// before are presented in the lesson phase first; the quiz covers all items.
func NewQueue(items []Item, now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	q := &Queue{
		items:     items,
		remaining: make(map[string]int),
		failed:    make(map[string]bool),
		now:       now,
	}
	return q
}

// CurrentLessonItem returns the lesson card under the cursor, or false when
// the lesson phase is exhausted. Items already in review skip the lesson.
func (q *Queue) CurrentLessonItem() (Item, bool) {
	for q.lessonIdx < len(q.items) && !q.items[q.lessonIdx].New {
		q.lessonIdx++
	}
	if q.lessonIdx >= len(q.items) {
		return Item{}, false
	}
	return q.items[q.lessonIdx], true
}

// AdvanceLesson acknowledges the current lesson card and moves the cursor
// forward. It reports whether another lesson card remains.
func (q *Queue) AdvanceLesson() bool {
	if _, ok := q.CurrentLessonItem(); !ok {
		return false
	}
	q.lessonIdx++
	_, ok := q.CurrentLessonItem()
	return ok
}

// LessonDone reports whether every new item has been presented.
func (q *Queue) LessonDone() bool {
	_, ok := q.CurrentLessonItem()
	return !ok
}

// LessonCount returns how many items get a lesson card this session.
func (q *Queue) LessonCount() int {
	n := 0
	for _, it := range q.items {
		if it.New {
			n++
		}
	}
	return n
}

// LessonIndex returns the position of the lesson cursor among lesson cards.
func (q *Queue) LessonIndex() int {
	n := 0
	for i := 0; i < q.lessonIdx && i < len(q.items); i++ {
		if q.items[i].New {
			n++
		}
	}
	return n
}

// StartQuiz expands every item into its facet-level quiz questions. Meaning
// questions for a unit are asked before its reading questions.
func (q *Queue) StartQuiz() {
	q.quiz = q.quiz[:0]
	q.remaining = make(map[string]int)
	for _, it := range q.items {
		for _, facet := range it.Unit.Facets() {
			state, ok := it.States[facet]
			if !ok {
				state = srs.NewMemoryState(it.Unit.ID, facet, q.now())
			}
			if state.Stage == srs.StageBurned {
				continue
			}
			q.quiz = append(q.quiz, QuizItem{
				ID:     quizItemID(it.Unit.ID, facet),
				UnitID: it.Unit.ID,
				Facet:  facet,
				Prompt: it.Unit.Prompt(facet),
				Answer: it.Unit.Answer(facet),
				State:  state,
			})
			q.remaining[it.Unit.ID]++
		}
	}
	sort.SliceStable(q.quiz, func(i, j int) bool {
		return facetRank(q.quiz[i].Facet) < facetRank(q.quiz[j].Facet)
	})
	q.total = len(q.quiz)
	q.completed = 0
	q.started = true
}

func facetRank(facet string) int {
	if facet == curriculum.FacetMeaning {
		return 0
	}
	return 1
}

// CurrentQuizItem returns the item at the front of the quiz queue, or false
// when the quiz is finished.
func (q *Queue) CurrentQuizItem() (QuizItem, bool) {
	if len(q.quiz) == 0 {
		return QuizItem{}, false
	}
	return q.quiz[0], true
}

// SubmitAnswer grades the front quiz item. A passing rating retires the
// facet; a failing one counts a mistake and cycles the item back into the
// queue with its rescheduled state.
func (q *Queue) SubmitAnswer(rating srs.Rating) (AnswerResult, error) {
	front, ok := q.CurrentQuizItem()
	if !ok {
		return AnswerResult{}, ErrSessionCompleted
	}
	next, err := srs.Schedule(front.State, rating, q.now())
	if err != nil {
		return AnswerResult{}, err
	}

	res := AnswerResult{
		Item:     front,
		Rating:   rating,
		Passed:   rating.Passing(),
		NewState: next,
	}
	q.quiz = q.quiz[1:]

	if res.Passed {
		q.completed++
		q.remaining[front.UnitID]--
		res.UnitDone = q.remaining[front.UnitID] == 0
		return res, nil
	}

	q.mistakes++
	q.failed[front.ID] = true
	front.State = next
	pos := ReinsertOffset
	if pos > len(q.quiz) {
		pos = len(q.quiz)
	}
	q.quiz = append(q.quiz, QuizItem{})
	copy(q.quiz[pos+1:], q.quiz[pos:])
	q.quiz[pos] = front
	res.Requeued = true
	return res, nil
}

// Done reports whether every quiz item has been retired.
func (q *Queue) Done() bool {
	return q.started && len(q.quiz) == 0
}

// Progress returns retired and total facet counts for the quiz phase.
func (q *Queue) Progress() (completed, total int) {
	return q.completed, q.total
}

// Mistakes returns how many failing grades were recorded this session.
func (q *Queue) Mistakes() int {
	return q.mistakes
}

// FailedFirstTry reports whether the given quiz item was ever failed during
// this session, even if it later passed.
func (q *Queue) FailedFirstTry(id string) bool {
	return q.failed[id]
}

// UnitIDs lists the units in the batch, in presentation order.
func (q *Queue) UnitIDs() []string {
	ids := make([]string, len(q.items))
	for i, it := range q.items {
		ids[i] = it.Unit.ID
	}
	return ids
}

// Items returns the session's items.
func (q *Queue) Items() []Item {
	return q.items
}
