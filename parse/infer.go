package parse

import (
	"github.com/tsoliveira/bolao/models"
	"github.com/tsoliveira/bolao/normalize"
)

// InferRound guesses which round a set of predictions belongs to from the
// teams they mention. Each round is scored by the fraction of mentioned
// teams playing in it; a perfect 1.0 returns immediately (schedule order),
// otherwise the best round wins if it covers at least half the mentions.
// Used only when the text carried no explicit round.
func InferRound(preds []models.RawPrediction, schedule *models.Schedule) (int, bool) {
	if len(preds) == 0 || schedule == nil {
		return 0, false
	}

	mentioned := make(map[string]struct{})
	for _, p := range preds {
		if t := normalize.Team(p.Home); t != "" {
			mentioned[t] = struct{}{}
		}
		if t := normalize.Team(p.Away); t != "" {
			mentioned[t] = struct{}{}
		}
	}
	if len(mentioned) == 0 {
		return 0, false
	}

	bestRound := 0
	bestScore := 0.0
	for _, round := range schedule.Rounds {
		inRound := make(map[string]struct{})
		for _, g := range round.Games {
			inRound[normalize.Team(g.Home)] = struct{}{}
			inRound[normalize.Team(g.Away)] = struct{}{}
		}

		hits := 0
		for t := range mentioned {
			if _, ok := inRound[t]; ok {
				hits++
			}
		}
		score := float64(hits) / float64(len(mentioned))
		if score == 1.0 {
			return round.Number, true
		}
		if score > bestScore {
			bestScore = score
			bestRound = round.Number
		}
	}

	if bestScore >= 0.5 {
		return bestRound, true
	}
	return 0, false
}
