package pool

import (
	"fmt"
	"strings"
)

// ParseFailureError means a submission yielded nothing attributable: no
// bettor could be identified, or no section resolved to a round.
type ParseFailureError struct {
	Reason string
}

func (e *ParseFailureError) Error() string {
	return "unparseable submission: " + e.Reason
}

// IncompleteRoundError blocks round processing until every mandatory game
// has a result. Pending lists all of them, not just the first.
type IncompleteRoundError struct {
	Round   int
	Pending []string
}

func (e *IncompleteRoundError) Error() string {
	return fmt.Sprintf("round %d incomplete, pending results: %s",
		e.Round, strings.Join(e.Pending, "; "))
}

// ConfigurationError reports every structural problem found in the pool's
// schedule or rules in one pass.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return "invalid pool configuration: " + strings.Join(e.Problems, "; ")
}
