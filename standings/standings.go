// Package standings turns stored predictions and a finalized schedule into a
// ranked table. Totals are recomputed from round 1 on every call, so edits to
// past results or rules are always reflected without a cache to invalidate.
package standings

import (
	"sort"
	"strings"

	"github.com/tsoliveira/bolao/models"
	"github.com/tsoliveira/bolao/scoring"
)

type roundResult struct {
	points       float64
	participated int
	games        []models.GameScore
}

// Compute builds the standings through uptoRound. Each entry carries the
// detailed per-game scores for uptoRound itself and cumulative points across
// all rounds up to and including it. RankDelta compares against the table
// recomputed through uptoRound-1; for round 1 it is zero.
func Compute(schedule *models.Schedule, rules models.RuleSet, entries map[string][]models.RoundEntry, uptoRound int) []models.StandingEntry {
	table := rank(schedule, rules, entries, uptoRound, true)
	if uptoRound <= 1 {
		return table
	}

	prev := rank(schedule, rules, entries, uptoRound-1, false)
	prevRank := make(map[string]int, len(prev))
	for _, e := range prev {
		prevRank[e.Participant] = e.Rank
	}
	for i := range table {
		if pr, ok := prevRank[table[i].Participant]; ok {
			table[i].RankDelta = pr - table[i].Rank
		}
	}
	return table
}

func rank(schedule *models.Schedule, rules models.RuleSet, entries map[string][]models.RoundEntry, uptoRound int, detail bool) []models.StandingEntry {
	participants := make([]string, 0, len(entries))
	for p := range entries {
		participants = append(participants, p)
	}
	sort.Strings(participants)

	table := make([]models.StandingEntry, 0, len(participants))
	for _, p := range participants {
		var cumulative float64
		var last roundResult
		for n := 1; n <= uptoRound; n++ {
			res := scoreRound(schedule, rules, entries, p, n)
			cumulative += res.points
			if n == uptoRound {
				last = res
			}
		}
		e := models.StandingEntry{
			Participant:      p,
			RoundPoints:      last.points,
			CumulativePoints: cumulative,
			GamesPlayed:      last.participated,
		}
		if detail {
			e.Games = last.games
		}
		table = append(table, e)
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].CumulativePoints != table[j].CumulativePoints {
			return table[i].CumulativePoints > table[j].CumulativePoints
		}
		return strings.ToLower(table[i].Participant) < strings.ToLower(table[j].Participant)
	})
	for i := range table {
		table[i].Rank = i + 1
	}
	return table
}

// scoreRound scores one participant's entry for one round. Missing mandatory
// finalized games draw the fixed penalty whether the participant submitted a
// partial entry or nothing at all.
func scoreRound(schedule *models.Schedule, rules models.RuleSet, entries map[string][]models.RoundEntry, participant string, round int) roundResult {
	r := schedule.RoundByNumber(round)
	if r == nil {
		return roundResult{}
	}

	hits := exactHitCounts(r, entries, round)

	var preds map[string]models.ValidatedPrediction
	if entry := models.EntryForRound(entries[participant], round); entry != nil {
		preds = entry.PredictionByGame()
	}

	var res roundResult
	for _, g := range r.Games {
		if !g.Finalized() {
			continue
		}
		p, ok := preds[g.ID]
		if !ok {
			if g.Mandatory {
				points, code := scoring.MissingPenalty(rules)
				res.points += points
				res.games = append(res.games, models.GameScore{
					GameID: g.ID, Home: g.Home, Away: g.Away,
					Points: points, RuleCode: code,
				})
			}
			continue
		}
		points, code := scoring.Score(p, g, rules, hits[g.ID])
		res.points += points
		// Penalty rows above stay out of this count: only games the
		// participant actually predicted are played.
		res.participated++
		res.games = append(res.games, models.GameScore{
			GameID: g.ID, Home: g.Home, Away: g.Away,
			Points: points, RuleCode: code,
		})
	}
	return res
}

// exactHitCounts counts, per finalized game, how many participants predicted
// the exact score. The exact-score bonus is split by this count.
func exactHitCounts(r *models.Round, entries map[string][]models.RoundEntry, round int) map[string]int {
	hits := make(map[string]int, len(r.Games))
	for _, perParticipant := range entries {
		entry := models.EntryForRound(perParticipant, round)
		if entry == nil {
			continue
		}
		for _, p := range entry.Predictions {
			for _, g := range r.Games {
				if g.ID != p.GameID || !g.Finalized() {
					continue
				}
				if p.HomeGoals == *g.HomeGoals && p.AwayGoals == *g.AwayGoals {
					hits[g.ID]++
				}
			}
		}
	}
	return hits
}
