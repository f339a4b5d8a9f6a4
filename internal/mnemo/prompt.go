package mnemo

import (
	"fmt"
	"strings"

	"github.com/kioku-app/kioku/internal/curriculum"
)

const enrichmentSystemPrompt = `You are a Japanese language tutor writing memory aids for beginner learners. Your mnemonics are vivid, concrete, and connect the shape or sound of an item to its meaning.`

func buildEnrichmentUserMessage(u curriculum.Unit) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Item: %s\n", u.Character))
	b.WriteString(fmt.Sprintf("Type: %s\n", u.Kind))
	b.WriteString(fmt.Sprintf("Meaning: %s\n", u.Meaning))
	if u.Reading != "" {
		b.WriteString(fmt.Sprintf("Reading: %s\n", u.Reading))
	}
	if u.SentenceJA != "" {
		b.WriteString(fmt.Sprintf("Known example: %s\n", u.SentenceJA))
	}

	b.WriteString(`
Instructions:
1. Write a mnemonic of one or two sentences. Tie the item's visual form or sound to its meaning. If a reading is given, work the reading's sound into the image.
2. Write one short Japanese example sentence using the item. Use only hiragana, katakana, and very common kanji. Keep it at absolute beginner level.
3. Translate the sentence to English.
Do not use romaji in the Japanese sentence.`)

	return b.String()
}
