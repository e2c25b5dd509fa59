package pool

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsoliveira/bolao/models"
	"github.com/tsoliveira/bolao/report"
	"github.com/tsoliveira/bolao/standings"
)

// ProcessRound computes the standings through the given round. With
// commit=false it is a pure preview. With commit=true, and only after every
// computation has succeeded, it backs up the schedule, advances the pool's
// current round and writes the report.
func (s *Service) ProcessRound(ctx context.Context, poolID string, round int, commit bool) (*models.StandingsReport, error) {
	schedule, err := s.schedules.LoadSchedule(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	rules, err := s.rules.LoadRules(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	if problems := checkConfiguration(schedule, rules, round); len(problems) > 0 {
		return nil, &ConfigurationError{Problems: problems}
	}

	r := schedule.RoundByNumber(round)
	var pending []string
	for _, g := range r.Games {
		if g.Mandatory && !g.Finalized() {
			pending = append(pending, g.Home+" x "+g.Away)
		}
	}
	if len(pending) > 0 {
		return nil, &IncompleteRoundError{Round: round, Pending: pending}
	}

	entries, err := s.predictions.LoadAll(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("loading predictions: %w", err)
	}

	table := standings.Compute(schedule, rules, entries, round)
	rep := &models.StandingsReport{
		PoolID:    poolID,
		PoolName:  schedule.Name,
		Season:    schedule.Season,
		Round:     round,
		Standings: table,
		Committed: commit,
	}
	rep.Text = report.Render(rep, rules)

	if !commit {
		s.log.Info("round preview",
			zap.String("pool", poolID),
			zap.Int("round", round),
			zap.Int("participants", len(table)))
		return rep, nil
	}

	backup, err := s.schedules.BackupSchedule(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("backing up schedule: %w", err)
	}
	schedule.CurrentRound = round
	if err := s.schedules.SaveSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("advancing current round: %w", err)
	}
	dest, err := s.reports.WriteReport(ctx, poolID, round, rep.Text)
	if err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}

	s.log.Info("round committed",
		zap.String("pool", poolID),
		zap.Int("round", round),
		zap.String("backup", backup),
		zap.String("report", dest))
	return rep, nil
}

// checkConfiguration collects every structural problem instead of failing on
// the first one.
func checkConfiguration(schedule *models.Schedule, rules models.RuleSet, round int) []string {
	var problems []string

	if len(schedule.Rounds) == 0 {
		problems = append(problems, "schedule has no rounds")
	}
	if schedule.RoundByNumber(round) == nil {
		problems = append(problems, fmt.Sprintf("round %d not in schedule", round))
	}
	for i, r := range schedule.Rounds {
		if r.Number <= 0 {
			problems = append(problems, fmt.Sprintf("round at index %d has invalid number %d", i, r.Number))
		}
		for _, g := range r.Games {
			if g.ID == "" || g.Home == "" || g.Away == "" {
				problems = append(problems, fmt.Sprintf("round %d has a game with missing id or teams", r.Number))
				break
			}
		}
	}
	for _, name := range models.CanonicalRuleNames() {
		if _, ok := rules[name]; !ok {
			problems = append(problems, fmt.Sprintf("rules missing %q", name))
		}
	}
	return problems
}
