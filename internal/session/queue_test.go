package session

import (
	"errors"
	"testing"
	"time"

	"github.com/kioku-app/kioku/internal/curriculum"
	"github.com/kioku-app/kioku/internal/srs"
)

var queueTestNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return queueTestNow }

func vocabUnit(id, meaning, reading string) curriculum.Unit {
	return curriculum.Unit{
		ID:        id,
		Level:     1,
		Kind:      curriculum.KindVocabulary,
		Character: id,
		Meaning:   meaning,
		Reading:   reading,
	}
}

func radicalUnit(id, meaning string) curriculum.Unit {
	return curriculum.Unit{
		ID:        id,
		Level:     1,
		Kind:      curriculum.KindRadical,
		Character: id,
		Meaning:   meaning,
	}
}

func newItem(u curriculum.Unit) Item {
	return Item{Unit: u, New: true}
}

func reviewItem(u curriculum.Unit) Item {
	states := make(map[string]srs.MemoryState)
	for _, f := range u.Facets() {
		s := srs.NewMemoryState(u.ID, f, queueTestNow.Add(-72*time.Hour))
		s.Stage = srs.StageLearning
		s.Reps = 2
		states[f] = s
	}
	return Item{Unit: u, New: false, States: states}
}

func TestQueue_LessonWalk_SkipsReviewItems(t *testing.T) {
	q := NewQueue([]Item{
		reviewItem(vocabUnit("v1", "one", "いち")),
		newItem(vocabUnit("v2", "two", "に")),
		reviewItem(vocabUnit("v3", "three", "さん")),
		newItem(vocabUnit("v4", "four", "よん")),
	}, fixedNow)

	if got := q.LessonCount(); got != 2 {
		t.Fatalf("LessonCount() = %d, want 2", got)
	}
	it, ok := q.CurrentLessonItem()
	if !ok || it.Unit.ID != "v2" {
		t.Fatalf("first lesson card = %v (ok=%v), want v2", it.Unit.ID, ok)
	}
	if !q.AdvanceLesson() {
		t.Fatal("AdvanceLesson() = false, want another card")
	}
	it, _ = q.CurrentLessonItem()
	if it.Unit.ID != "v4" {
		t.Fatalf("second lesson card = %v, want v4", it.Unit.ID)
	}
	if q.AdvanceLesson() {
		t.Fatal("AdvanceLesson() = true after last card")
	}
	if !q.LessonDone() {
		t.Fatal("LessonDone() = false after walking all cards")
	}
}

func TestQueue_StartQuiz_MeaningBeforeReading(t *testing.T) {
	q := NewQueue([]Item{
		newItem(vocabUnit("v1", "one", "いち")),
		newItem(vocabUnit("v2", "two", "に")),
	}, fixedNow)
	q.StartQuiz()

	seenReading := false
	for {
		item, ok := q.CurrentQuizItem()
		if !ok {
			break
		}
		if item.Facet == curriculum.FacetReading {
			seenReading = true
		}
		if item.Facet == curriculum.FacetMeaning && seenReading {
			t.Fatalf("meaning question for %s asked after a reading question", item.UnitID)
		}
		if _, err := q.SubmitAnswer(srs.Good); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}
	if completed, total := q.Progress(); completed != 4 || total != 4 {
		t.Fatalf("Progress() = %d/%d, want 4/4", completed, total)
	}
}

func TestQueue_RadicalHasOnlyMeaningFacet(t *testing.T) {
	q := NewQueue([]Item{newItem(radicalUnit("r1", "ground"))}, fixedNow)
	q.StartQuiz()
	if _, total := q.Progress(); total != 1 {
		t.Fatalf("radical quiz total = %d, want 1", total)
	}
}

func TestQueue_SubmitAnswer_PassRetires(t *testing.T) {
	q := NewQueue([]Item{newItem(radicalUnit("r1", "ground"))}, fixedNow)
	q.StartQuiz()

	res, err := q.SubmitAnswer(srs.Good)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !res.Passed || res.Requeued {
		t.Fatalf("result = %+v, want passed and not requeued", res)
	}
	if !res.UnitDone {
		t.Fatal("UnitDone = false after retiring the unit's only facet")
	}
	if !q.Done() {
		t.Fatal("Done() = false after last item retired")
	}
	if _, err := q.SubmitAnswer(srs.Good); !errors.Is(err, ErrSessionCompleted) {
		t.Fatalf("SubmitAnswer after done = %v, want ErrSessionCompleted", err)
	}
}

func TestQueue_SubmitAnswer_FailRequeues(t *testing.T) {
	items := []Item{
		newItem(vocabUnit("v1", "one", "いち")),
		newItem(vocabUnit("v2", "two", "に")),
		newItem(vocabUnit("v3", "three", "さん")),
	}
	q := NewQueue(items, fixedNow)
	q.StartQuiz()

	failed, _ := q.CurrentQuizItem()
	res, err := q.SubmitAnswer(srs.Again)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res.Passed || !res.Requeued {
		t.Fatalf("result = %+v, want failed and requeued", res)
	}
	if q.Mistakes() != 1 {
		t.Fatalf("Mistakes() = %d, want 1", q.Mistakes())
	}

	// The failed item must not come straight back.
	next, _ := q.CurrentQuizItem()
	if next.ID == failed.ID {
		t.Fatal("failed item was asked again immediately")
	}

	// It reappears within the queue carrying its rescheduled state.
	seen := false
	for i := 0; i < len(q.quiz); i++ {
		if q.quiz[i].ID == failed.ID {
			seen = true
			if q.quiz[i].State.Lapses != 1 {
				t.Fatalf("requeued state lapses = %d, want 1", q.quiz[i].State.Lapses)
			}
			if i != ReinsertOffset {
				t.Fatalf("requeued at position %d, want %d", i, ReinsertOffset)
			}
		}
	}
	if !seen {
		t.Fatal("failed item missing from queue")
	}
}

func TestQueue_FailedItemEventuallyRetires(t *testing.T) {
	q := NewQueue([]Item{newItem(radicalUnit("r1", "ground"))}, fixedNow)
	q.StartQuiz()

	if _, err := q.SubmitAnswer(srs.Again); err != nil {
		t.Fatalf("fail grade: %v", err)
	}
	if q.Done() {
		t.Fatal("Done() = true while a failed item is still queued")
	}
	res, err := q.SubmitAnswer(srs.Good)
	if err != nil {
		t.Fatalf("pass grade: %v", err)
	}
	if !res.Passed || !q.Done() {
		t.Fatalf("passed=%v done=%v, want item retired on pass", res.Passed, q.Done())
	}
	if completed, total := q.Progress(); completed != 1 || total != 1 {
		t.Fatalf("Progress() = %d/%d, want 1/1", completed, total)
	}
	if !q.FailedFirstTry("r1/meaning") {
		t.Fatal("FailedFirstTry = false for an item that was failed")
	}
}

func TestQueue_InvalidRatingRejected(t *testing.T) {
	q := NewQueue([]Item{newItem(radicalUnit("r1", "ground"))}, fixedNow)
	q.StartQuiz()
	if _, err := q.SubmitAnswer(srs.Rating(99)); !errors.Is(err, srs.ErrInvalidRating) {
		t.Fatalf("SubmitAnswer(99) = %v, want ErrInvalidRating", err)
	}
	// Queue unchanged: the item is still at the front.
	if item, ok := q.CurrentQuizItem(); !ok || item.UnitID != "r1" {
		t.Fatalf("front item = %v (ok=%v), want r1", item.UnitID, ok)
	}
}

func TestQueue_BurnedFacetExcluded(t *testing.T) {
	u := vocabUnit("v1", "one", "いち")
	burned := srs.NewMemoryState(u.ID, curriculum.FacetReading, queueTestNow)
	burned.Stage = srs.StageBurned
	it := Item{Unit: u, States: map[string]srs.MemoryState{
		curriculum.FacetReading: burned,
	}}
	q := NewQueue([]Item{it}, fixedNow)
	q.StartQuiz()
	if _, total := q.Progress(); total != 1 {
		t.Fatalf("quiz total = %d, want 1 (burned facet excluded)", total)
	}
	item, _ := q.CurrentQuizItem()
	if item.Facet != curriculum.FacetMeaning {
		t.Fatalf("remaining facet = %s, want meaning", item.Facet)
	}
}
