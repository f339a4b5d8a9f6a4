package mnemo

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kioku-app/kioku/internal/curriculum"
	"github.com/kioku-app/kioku/internal/llm"
)

func validEnrichmentJSON() json.RawMessage {
	return json.RawMessage(`{
		"mnemonic": "Three peaks punching through the clouds: a mountain. Climbers greet it as san.",
		"sentence_ja": "やまが みえます。",
		"sentence_en": "I can see a mountain."
	}`)
}

func testUnit(t *testing.T) curriculum.Unit {
	t.Helper()
	u, err := curriculum.Get("kanji-yama")
	if err != nil {
		t.Fatalf("get test unit: %v", err)
	}
	return u
}

func consumeWithin(t *testing.T, svc *Service, d time.Duration) (*Enrichment, bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if e, ok := svc.ConsumeEnrichment(); ok {
			return e, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesEnrichment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validEnrichmentJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestEnrichment(t.Context(), testUnit(t))

	e, ok := consumeWithin(t, svc, 5*time.Second)
	if !ok || e == nil {
		t.Fatal("expected enrichment to be generated")
	}
	if e.UnitID != "kanji-yama" {
		t.Errorf("unit id = %q, want kanji-yama", e.UnitID)
	}
	if e.Mnemonic == "" || e.SentenceJA == "" || e.SentenceEN == "" {
		t.Errorf("enrichment has empty fields: %+v", e)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestService_PromptNamesTheUnit(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validEnrichmentJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestEnrichment(t.Context(), testUnit(t))
	if _, ok := consumeWithin(t, svc, 5*time.Second); !ok {
		t.Fatal("expected enrichment")
	}

	req := mock.Calls[0]
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"山", "mountain", "さん"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if req.Schema != EnrichmentSchema {
		t.Error("request missing enrichment schema")
	}
}

func TestService_CachesPerUnit(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validEnrichmentJSON()})
	svc := NewService(mock, DefaultConfig())
	u := testUnit(t)

	svc.RequestEnrichment(t.Context(), u)
	first, ok := consumeWithin(t, svc, 5*time.Second)
	if !ok {
		t.Fatal("expected first enrichment")
	}

	// Second request is served from cache without a provider call.
	svc.RequestEnrichment(t.Context(), u)
	second, ok := svc.ConsumeEnrichment()
	if !ok {
		t.Fatal("expected cached enrichment immediately")
	}
	if second != first {
		t.Error("cached enrichment is not the original")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}

	if e, ok := svc.Cached(u.ID); !ok || e != first {
		t.Error("Cached() does not return the stored enrichment")
	}
}

func TestService_GenerationFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestEnrichment(t.Context(), testUnit(t))

	// Wait for the request to finish, then confirm nothing was produced.
	deadline := time.Now().Add(5 * time.Second)
	for mock.CallCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)

	if e, ok := svc.ConsumeEnrichment(); ok {
		t.Fatalf("expected no enrichment on parse failure, got %+v", e)
	}
	if _, ok := svc.Cached("kanji-yama"); ok {
		t.Error("failed generation must not be cached")
	}
}
