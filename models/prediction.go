package models

import "time"

// RawPrediction is one score line as extracted from submission text, before
// any schedule matching. Team names are verbatim; goals stay nil for a bare
// "TeamA x TeamB" line.
type RawPrediction struct {
	Home      string
	Away      string
	HomeGoals *int
	AwayGoals *int
}

// HasScore reports whether both goal counts were given.
func (p RawPrediction) HasScore() bool {
	return p.HomeGoals != nil && p.AwayGoals != nil
}

// ExtraBet is a bonus prediction outside the mandatory set, tagged with the
// label it was submitted under (e.g. "Game 5").
type ExtraBet struct {
	RawPrediction
	Label string
}

// ValidatedPrediction is a prediction bound to a concrete scheduled game.
// Team names are the schedule's canonical ones. Immutable once scored.
type ValidatedPrediction struct {
	GameID     string `json:"gameId"`
	Home       string `json:"home"`
	Away       string `json:"away"`
	HomeGoals  int    `json:"homeGoals"`
	AwayGoals  int    `json:"awayGoals"`
	ExtraLabel string `json:"extraLabel,omitempty"`
}

// RoundEntry holds everything one participant submitted for one round.
type RoundEntry struct {
	Round       int                   `json:"round"`
	SubmittedAt time.Time             `json:"submittedAt"`
	Predictions []ValidatedPrediction `json:"predictions"`
	ExtraBets   []ValidatedPrediction `json:"extraBets,omitempty"`
}

// ParticipantEntries pairs a participant id with their stored entries.
type ParticipantEntries struct {
	Participant string       `json:"participant"`
	Entries     []RoundEntry `json:"entries"`
}

// EntryForRound returns the entry for the given round, or nil.
func EntryForRound(entries []RoundEntry, round int) *RoundEntry {
	for i := range entries {
		if entries[i].Round == round {
			return &entries[i]
		}
	}
	return nil
}

// PredictionByGame indexes an entry's regular predictions by game id.
func (e *RoundEntry) PredictionByGame() map[string]ValidatedPrediction {
	m := make(map[string]ValidatedPrediction, len(e.Predictions))
	for _, p := range e.Predictions {
		m[p.GameID] = p
	}
	return m
}

// Merge replaces predictions for games re-submitted in newPreds and keeps the
// rest, so a second submission for the same round never duplicates a game and
// never clobbers predictions for other games. Extra bets merge by
// (game, label); unlabeled extras share the empty label, so the game id keeps
// them apart. Duplicates within one submission collapse to the last
// occurrence.
func (e *RoundEntry) Merge(newPreds, newExtras []ValidatedPrediction, at time.Time) {
	e.SubmittedAt = at

	replaced := make(map[string]struct{}, len(newPreds))
	for _, p := range newPreds {
		replaced[p.GameID] = struct{}{}
	}
	kept := e.Predictions[:0]
	for _, p := range e.Predictions {
		if _, ok := replaced[p.GameID]; !ok {
			kept = append(kept, p)
		}
	}
	e.Predictions = append(kept, dedupeByGame(newPreds)...)

	keys := make(map[string]struct{}, len(newExtras))
	for _, x := range newExtras {
		keys[extraKey(x)] = struct{}{}
	}
	keptExtras := e.ExtraBets[:0]
	for _, x := range e.ExtraBets {
		if _, ok := keys[extraKey(x)]; !ok {
			keptExtras = append(keptExtras, x)
		}
	}
	e.ExtraBets = append(keptExtras, dedupeExtras(newExtras)...)
}

func extraKey(p ValidatedPrediction) string {
	return p.GameID + "\x00" + p.ExtraLabel
}

// dedupeByGame keeps the last prediction per game id, preserving first-seen
// order.
func dedupeByGame(preds []ValidatedPrediction) []ValidatedPrediction {
	return dedupe(preds, func(p ValidatedPrediction) string { return p.GameID })
}

func dedupeExtras(preds []ValidatedPrediction) []ValidatedPrediction {
	return dedupe(preds, extraKey)
}

func dedupe(preds []ValidatedPrediction, key func(ValidatedPrediction) string) []ValidatedPrediction {
	if len(preds) < 2 {
		return preds
	}
	index := make(map[string]int, len(preds))
	out := make([]ValidatedPrediction, 0, len(preds))
	for _, p := range preds {
		k := key(p)
		if i, ok := index[k]; ok {
			out[i] = p
			continue
		}
		index[k] = len(out)
		out = append(out, p)
	}
	return out
}
