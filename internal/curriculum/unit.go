package curriculum

import "fmt"

// Kind classifies a knowledge unit.
type Kind string

const (
	KindRadical    Kind = "radical"
	KindKanji      Kind = "kanji"
	KindVocabulary Kind = "vocabulary"
	KindGrammar    Kind = "grammar"
)

// AllKinds returns all unit kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindRadical, KindKanji, KindVocabulary, KindGrammar}
}

// KindDisplayName returns a human-readable name for a kind.
func KindDisplayName(k Kind) string {
	switch k {
	case KindRadical:
		return "Radical"
	case KindKanji:
		return "Kanji"
	case KindVocabulary:
		return "Vocabulary"
	case KindGrammar:
		return "Grammar"
	default:
		return string(k)
	}
}

// Facet names. A unit is quizzed once per facet; the facets a unit carries
// depend on its kind (see Unit.Facets).
const (
	FacetMeaning = "meaning"
	FacetReading = "reading"
	FacetCloze   = "cloze"
)

// Unit is one learnable knowledge unit: a radical, kanji character,
// vocabulary word, or grammar point.
type Unit struct {
	ID        string
	Level     int
	Kind      Kind
	Character string // Glyph or phrase shown on the card.
	Meaning   string
	Reading   string // Kana reading; empty for radicals and grammar.
	Mnemonic  string // Built-in memory aid shown during lessons.

	// Grammar only.
	SentenceJA  string // Example sentence with the blank marked as ___.
	ClozeAnswer string
}

// Facets returns the quiz facets for this unit, in presentation order
// (meaning before reading, per the lesson flow).
func (u Unit) Facets() []string {
	switch u.Kind {
	case KindGrammar:
		return []string{FacetCloze}
	case KindRadical:
		return []string{FacetMeaning}
	default:
		if u.Reading == "" {
			return []string{FacetMeaning}
		}
		return []string{FacetMeaning, FacetReading}
	}
}

// Prompt returns the question text for one facet of this unit.
func (u Unit) Prompt(facet string) string {
	switch facet {
	case FacetReading:
		return fmt.Sprintf("Reading of %s", u.Character)
	case FacetCloze:
		return u.SentenceJA
	default:
		return fmt.Sprintf("Meaning of %s", u.Character)
	}
}

// Answer returns the expected answer for one facet of this unit.
func (u Unit) Answer(facet string) string {
	switch facet {
	case FacetReading:
		return u.Reading
	case FacetCloze:
		return u.ClozeAnswer
	default:
		return u.Meaning
	}
}
