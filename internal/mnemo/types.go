package mnemo

// Enrichment is LLM-generated study material for one curriculum unit: a
// fresh mnemonic plus an example sentence using the unit in context.
type Enrichment struct {
	UnitID     string
	Mnemonic   string
	SentenceJA string
	SentenceEN string
}
