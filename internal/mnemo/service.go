package mnemo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kioku-app/kioku/internal/curriculum"
	"github.com/kioku-app/kioku/internal/llm"
)

// Service generates unit enrichments asynchronously. Results are cached for
// the life of the process so a unit is only enriched once per run.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	cache   map[string]*Enrichment
	pending *Enrichment
	err     error
	ready   bool
}

// NewService creates an enrichment service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		cache:    make(map[string]*Enrichment),
	}
}

// Cached returns the enrichment for a unit if one was already generated.
func (s *Service) Cached(unitID string) (*Enrichment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.cache[unitID]
	return e, ok
}

// RequestEnrichment starts async generation for a unit. Only one request is
// in-flight at a time; new requests replace pending ones. Cached units are
// served without a provider call.
func (s *Service) RequestEnrichment(ctx context.Context, u curriculum.Unit) {
	s.mu.Lock()
	if e, ok := s.cache[u.ID]; ok {
		s.pending = e
		s.err = nil
		s.ready = true
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	go func() {
		e, err := s.generate(ctx, u)
		s.mu.Lock()
		defer s.mu.Unlock()
		if e != nil {
			s.cache[e.UnitID] = e
		}
		s.pending = e
		s.err = err
		s.ready = true
	}()
}

// ConsumeEnrichment returns the pending enrichment if one is ready.
// Returns (nil, false) while generation is still in flight. After
// consumption the pending slot is cleared.
func (s *Service) ConsumeEnrichment() (*Enrichment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	e := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return e, e != nil
}

type enrichmentOutput struct {
	Mnemonic   string `json:"mnemonic"`
	SentenceJA string `json:"sentence_ja"`
	SentenceEN string `json:"sentence_en"`
}

func (s *Service) generate(ctx context.Context, u curriculum.Unit) (*Enrichment, error) {
	ctx = llm.WithPurpose(ctx, "mnemonic")

	req := llm.Request{
		System: enrichmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEnrichmentUserMessage(u)},
		},
		Schema:      EnrichmentSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("enrichment generation: %w", err)
	}

	var out enrichmentOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse enrichment response: %w", err)
	}

	return &Enrichment{
		UnitID:     u.ID,
		Mnemonic:   out.Mnemonic,
		SentenceJA: out.SentenceJA,
		SentenceEN: out.SentenceEN,
	}, nil
}
