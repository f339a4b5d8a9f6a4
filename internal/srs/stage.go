package srs

import (
	"encoding"
	"fmt"
)

// Stage is the coarse retention bucket for a memory state. It summarizes
// how well an item is retained and drives due-item filtering and display.
type Stage int

const (
	StageNew      Stage = iota // Never reviewed, immediately eligible.
	StageLearning              // In the short-interval foundation phase.
	StageReview                // Entered the long-term review cycle.
	StageBurned                // Permanently learned; no further scheduling.
)

var stageNames = [...]string{
	StageNew:      "new",
	StageLearning: "learning",
	StageReview:   "review",
	StageBurned:   "burned",
}

var stageByName = map[string]Stage{
	"new":      StageNew,
	"learning": StageLearning,
	"review":   StageReview,
	"burned":   StageBurned,
}

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Stage(0)
	_ encoding.TextMarshaler   = Stage(0)
	_ encoding.TextUnmarshaler = (*Stage)(nil)
)

// IsValid reports whether s is a known stage.
func (s Stage) IsValid() bool {
	return s >= StageNew && s <= StageBurned
}

// String returns the lowercase stage name, or "stage(n)" for invalid values.
func (s Stage) String() string {
	if s.IsValid() {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Stage) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("srs: invalid stage: %d", int(s))
	}
	return []byte(stageNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stage) UnmarshalText(text []byte) error {
	v, ok := stageByName[string(text)]
	if !ok {
		return fmt.Errorf("srs: unknown stage: %q", text)
	}
	*s = v
	return nil
}

// ParseStage converts a persisted stage name back to a Stage.
// Unknown names map to StageNew so a corrupt row degrades to
// "needs relearning" rather than an error.
func ParseStage(name string) Stage {
	if v, ok := stageByName[name]; ok {
		return v
	}
	return StageNew
}
