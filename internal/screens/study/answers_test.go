package study

import (
	"testing"

	"github.com/kioku-app/kioku/internal/curriculum"
	sess "github.com/kioku-app/kioku/internal/session"
)

func TestAnswerMatches(t *testing.T) {
	meaning := sess.QuizItem{Facet: curriculum.FacetMeaning, Answer: "Topic Marker"}
	reading := sess.QuizItem{Facet: curriculum.FacetReading, Answer: "さん"}
	cloze := sess.QuizItem{Facet: curriculum.FacetCloze, Answer: "は"}

	tests := []struct {
		name  string
		item  sess.QuizItem
		input string
		want  bool
	}{
		{"meaning exact", meaning, "Topic Marker", true},
		{"meaning case insensitive", meaning, "topic marker", true},
		{"meaning extra whitespace", meaning, "  topic   marker ", true},
		{"meaning wrong", meaning, "subject marker", false},
		{"reading exact kana", reading, "さん", true},
		{"reading trimmed", reading, " さん ", true},
		{"reading romaji rejected", reading, "san", false},
		{"cloze exact", cloze, "は", true},
		{"cloze wrong particle", cloze, "が", false},
		{"empty input", meaning, "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := answerMatches(tt.item, tt.input); got != tt.want {
				t.Errorf("answerMatches(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
