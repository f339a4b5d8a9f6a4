package mnemo

import "github.com/kioku-app/kioku/internal/llm"

// EnrichmentSchema defines the JSON schema for unit enrichment generation.
var EnrichmentSchema = &llm.Schema{
	Name:        "unit-enrichment",
	Description: "A mnemonic and an example sentence for a Japanese study item",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "A vivid one or two sentence memory hook linking the item's form to its meaning and reading",
			},
			"sentence_ja": map[string]any{
				"type":        "string",
				"description": "A short natural Japanese sentence using the item, beginner level",
			},
			"sentence_en": map[string]any{
				"type":        "string",
				"description": "English translation of the sentence",
			},
		},
		"required":             []any{"mnemonic", "sentence_ja", "sentence_en"},
		"additionalProperties": false,
	},
}
