package inference

import (
	"fmt"
	"sort"
	"strings"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

// Score is the ephemeral ranking record for one candidate state during a
// single inference call. It never leaves the engine except as diagnostics.
type Score struct {
	StateType   entities.StateType
	RawScore    float64
	Confidence  float64
	Factors     map[string]float64
	Explanation string
}

func (s *Score) AddFactor(name string, contribution float64) {
	if s.Factors == nil {
		s.Factors = map[string]float64{}
	}
	s.Factors[name] = contribution
}

// explain renders the factor breakdown in a stable order so evidence strings
// do not shuffle between identical runs.
func (s *Score) explain() string {
	names := make([]string, 0, len(s.Factors))
	for name := range s.Factors {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (%.2f%%)", name, s.Factors[name]*100))
	}
	return fmt.Sprintf("Inferred %s based on: %s", s.StateType, strings.Join(parts, ", "))
}

// Normalize maps value into [0,1] relative to the given bounds. Equal bounds
// collapse to 0.5. The mapping is monotonic non-decreasing in value.
func Normalize(value, min, max float64) float64 {
	if max == min {
		return 0.5
	}
	return Clamp((value-min)/(max-min), 0.0, 1.0)
}

func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
