package study

import (
	"strings"

	"github.com/kioku-app/kioku/internal/curriculum"
	sess "github.com/kioku-app/kioku/internal/session"
)

// answerMatches checks a typed answer against the expected one. Meaning
// answers are compared case-insensitively with whitespace collapsed;
// readings and cloze answers must match the kana exactly after trimming.
func answerMatches(q sess.QuizItem, input string) bool {
	given := strings.TrimSpace(input)
	want := strings.TrimSpace(q.Answer)
	if given == "" {
		return false
	}

	if q.Facet == curriculum.FacetMeaning {
		return normalizeMeaning(given) == normalizeMeaning(want)
	}
	return given == want
}

func normalizeMeaning(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
