package curriculum

import "testing"

func TestGet_KnownAndUnknown(t *testing.T) {
	u, err := Get("kanji-yama")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Meaning != "mountain" {
		t.Errorf("Meaning = %q, want %q", u.Meaning, "mountain")
	}

	if _, err := Get("no-such-unit"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestFacets_ByKind(t *testing.T) {
	tests := []struct {
		id   string
		want []string
	}{
		{"rad-ichi", []string{FacetMeaning}},
		{"kanji-yama", []string{FacetMeaning, FacetReading}},
		{"vocab-mizu", []string{FacetMeaning, FacetReading}},
		{"gram-wa", []string{FacetCloze}},
	}

	for _, tt := range tests {
		u, err := Get(tt.id)
		if err != nil {
			t.Fatalf("get %s: %v", tt.id, err)
		}
		got := u.Facets()
		if len(got) != len(tt.want) {
			t.Errorf("%s: facets = %v, want %v", tt.id, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: facets = %v, want %v", tt.id, got, tt.want)
				break
			}
		}
	}
}

func TestByLevel_OrderedAndComplete(t *testing.T) {
	total := 0
	for level := 1; level <= MaxLevel(); level++ {
		us := ByLevel(level)
		if len(us) == 0 {
			t.Errorf("level %d has no units", level)
		}
		for i, u := range us {
			if u.Level != level {
				t.Errorf("level %d returned unit %s at level %d", level, u.ID, u.Level)
			}
			if i > 0 && us[i-1].ID >= u.ID {
				t.Errorf("level %d not ordered: %s >= %s", level, us[i-1].ID, u.ID)
			}
		}
		total += len(us)
	}
	if total != Count() {
		t.Errorf("levels cover %d units, want %d", total, Count())
	}
}

func TestGrammarUnits_HaveClozeData(t *testing.T) {
	for _, u := range All() {
		if u.Kind != KindGrammar {
			continue
		}
		if u.SentenceJA == "" || u.ClozeAnswer == "" {
			t.Errorf("%s: grammar unit missing cloze sentence or answer", u.ID)
		}
		if u.Answer(FacetCloze) != u.ClozeAnswer {
			t.Errorf("%s: Answer(cloze) = %q, want %q", u.ID, u.Answer(FacetCloze), u.ClozeAnswer)
		}
	}
}
