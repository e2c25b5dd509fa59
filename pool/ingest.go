package pool

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/tsoliveira/bolao/models"
	"github.com/tsoliveira/bolao/parse"
)

// IngestionResult is what one submission produced for one round. A single
// message covering several rounds yields one result per round.
type IngestionResult struct {
	Bettor        string
	Round         int
	RoundInferred bool
	Predictions   []models.ValidatedPrediction
	ExtraBets     []models.ValidatedPrediction
	Errors        []string
}

// Ingest parses a raw submission against the schedule. The bettor comes from
// the first section that names one. Each section's round is taken from the
// text itself, then from its marker, then inferred from which scheduled
// round the predicted fixtures overlap. Per-item problems accumulate in the
// result's Errors; a submission with no bettor or no resolvable round at all
// fails with ParseFailureError.
func (s *Service) Ingest(rawText string, schedule *models.Schedule) ([]IngestionResult, error) {
	sections := parse.Segment(rawText)
	if len(sections) == 0 {
		return nil, &ParseFailureError{Reason: "empty submission"}
	}

	// The bettor line usually sits in the header before the first round
	// marker, so look at the whole text before falling back to sections.
	bettor := parse.ExtractBettor(rawText)
	extractions := make([]parse.Extraction, len(sections))
	for i, sec := range sections {
		extractions[i] = parse.Extract(sec.Body)
		if bettor == "" {
			bettor = extractions[i].Bettor
		}
	}
	if bettor == "" {
		return nil, &ParseFailureError{Reason: "no bettor name found"}
	}

	byRound := make(map[int]*IngestionResult)
	for i, sec := range sections {
		ext := extractions[i]
		if len(ext.Predictions) == 0 && len(ext.ExtraBets) == 0 {
			continue
		}

		round, inferred := ext.Round, false
		if round == 0 {
			round = sec.RoundHint
		}
		if round == 0 {
			r, ok := parse.InferRound(ext.Predictions, schedule)
			if !ok {
				s.log.Warn("section round unresolvable, skipping",
					zap.String("bettor", bettor),
					zap.Int("predictions", len(ext.Predictions)))
				continue
			}
			round, inferred = r, true
		}

		valid, validExtras, errs, err := s.ValidateRound(ext.Predictions, ext.ExtraBets, round, schedule)
		if err != nil {
			s.log.Warn("section validation failed", zap.Int("round", round), zap.Error(err))
			continue
		}

		res, ok := byRound[round]
		if !ok {
			res = &IngestionResult{Bettor: bettor, Round: round, RoundInferred: inferred}
			byRound[round] = res
		}
		res.Predictions = append(res.Predictions, valid...)
		res.ExtraBets = append(res.ExtraBets, validExtras...)
		res.Errors = append(res.Errors, errs...)
	}

	if len(byRound) == 0 {
		return nil, &ParseFailureError{Reason: "no section resolved to a round"}
	}

	results := make([]IngestionResult, 0, len(byRound))
	for _, r := range byRound {
		results = append(results, *r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Round < results[j].Round })
	return results, nil
}

// SaveResults merges ingestion results into the participant's stored entries
// and persists them. Re-submitting a game for a round replaces only that
// game's prediction.
func (s *Service) SaveResults(ctx context.Context, poolID, participant string, results []IngestionResult, at time.Time) error {
	all, err := s.predictions.LoadAll(ctx, poolID)
	if err != nil {
		return fmt.Errorf("loading existing predictions: %w", err)
	}
	entries := all[participant]

	for _, res := range results {
		entry := models.EntryForRound(entries, res.Round)
		if entry == nil {
			entries = append(entries, models.RoundEntry{Round: res.Round})
			entry = &entries[len(entries)-1]
		}
		entry.Merge(res.Predictions, res.ExtraBets, at)
	}

	if err := s.predictions.Save(ctx, poolID, participant, entries); err != nil {
		return fmt.Errorf("saving predictions for %q: %w", participant, err)
	}
	s.log.Info("predictions saved",
		zap.String("pool", poolID),
		zap.String("participant", participant),
		zap.Int("rounds", len(results)))
	return nil
}
