package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/uptrace/bun"

	"github.com/tsoliveira/bolao/models"
)

// PG stores pools in PostgreSQL via bun, flattening the nested schedule and
// prediction documents into the relational records in models.
type PG struct {
	db *bun.DB
}

// NewPG returns a PostgreSQL store over an open connection.
func NewPG(db *bun.DB) *PG {
	return &PG{db: db}
}

func (p *PG) LoadSchedule(ctx context.Context, poolID string) (*models.Schedule, error) {
	var pool models.PoolRecord
	err := p.db.NewSelect().Model(&pool).Where("pool_id = ?", poolID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pool %q not found", poolID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading pool %q: %w", poolID, err)
	}

	var games []models.GameRecord
	err = p.db.NewSelect().Model(&games).
		Where("pool_id = ?", poolID).
		Order("round", "game_id").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading games for pool %q: %w", poolID, err)
	}

	s := &models.Schedule{
		PoolID:       pool.PoolID,
		Name:         pool.Name,
		Season:       pool.Season,
		CurrentRound: pool.CurrentRound,
	}
	byRound := make(map[int]int)
	for _, g := range games {
		i, ok := byRound[g.Round]
		if !ok {
			s.Rounds = append(s.Rounds, models.Round{Number: g.Round})
			i = len(s.Rounds) - 1
			byRound[g.Round] = i
		}
		s.Rounds[i].Games = append(s.Rounds[i].Games, models.Game{
			ID:        g.GameID,
			Home:      g.Home,
			Away:      g.Away,
			HomeGoals: g.HomeGoals,
			AwayGoals: g.AwayGoals,
			Status:    g.Status,
			Mandatory: g.Mandatory,
		})
	}
	sort.Slice(s.Rounds, func(i, j int) bool { return s.Rounds[i].Number < s.Rounds[j].Number })
	return s, nil
}

func (p *PG) SaveSchedule(ctx context.Context, schedule *models.Schedule) error {
	pool := models.PoolRecord{
		PoolID:       schedule.PoolID,
		Name:         schedule.Name,
		Season:       schedule.Season,
		CurrentRound: schedule.CurrentRound,
	}

	var games []models.GameRecord
	for _, r := range schedule.Rounds {
		for _, g := range r.Games {
			games = append(games, models.GameRecord{
				GameID:    g.ID,
				PoolID:    schedule.PoolID,
				Round:     r.Number,
				Home:      g.Home,
				Away:      g.Away,
				HomeGoals: g.HomeGoals,
				AwayGoals: g.AwayGoals,
				Status:    g.Status,
				Mandatory: g.Mandatory,
			})
		}
	}

	return p.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&pool).
			On("CONFLICT (pool_id) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("season = EXCLUDED.season").
			Set("current_round = EXCLUDED.current_round").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("upserting pool %q: %w", schedule.PoolID, err)
		}
		if len(games) == 0 {
			return nil
		}
		_, err = tx.NewInsert().Model(&games).
			On("CONFLICT (game_id) DO UPDATE").
			Set("round = EXCLUDED.round").
			Set("home = EXCLUDED.home").
			Set("away = EXCLUDED.away").
			Set("home_goals = EXCLUDED.home_goals").
			Set("away_goals = EXCLUDED.away_goals").
			Set("status = EXCLUDED.status").
			Set("mandatory = EXCLUDED.mandatory").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("upserting games: %w", err)
		}
		return nil
	})
}

// BackupSchedule stores the assembled schedule as a JSON snapshot row and
// returns a tag naming it.
func (p *PG) BackupSchedule(ctx context.Context, poolID string) (string, error) {
	schedule, err := p.LoadSchedule(ctx, poolID)
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(schedule)
	if err != nil {
		return "", fmt.Errorf("encoding schedule backup: %w", err)
	}
	rec := models.ScheduleBackupRecord{
		PoolID:  poolID,
		TakenAt: time.Now(),
		Payload: string(payload),
	}
	if _, err := p.db.NewInsert().Model(&rec).Exec(ctx); err != nil {
		return "", fmt.Errorf("inserting schedule backup: %w", err)
	}
	return fmt.Sprintf("schedule_backups/%s/%s", poolID, rec.TakenAt.Format("20060102T150405")), nil
}

func (p *PG) LoadRules(ctx context.Context, poolID string) (models.RuleSet, error) {
	var recs []models.RuleRecord
	err := p.db.NewSelect().Model(&recs).Where("pool_id = ?", poolID).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading rules for pool %q: %w", poolID, err)
	}
	rules := make(models.RuleSet, len(recs))
	for _, r := range recs {
		rules[r.Name] = models.Rule{
			Points:       r.Points,
			BasePoints:   r.BasePoints,
			Code:         r.Code,
			BonusDivisor: r.BonusDivisor,
			Description:  r.Description,
		}
	}
	return rules, nil
}

// SaveRules upserts the full rule configuration for a pool.
func (p *PG) SaveRules(ctx context.Context, poolID string, rules models.RuleSet) error {
	recs := make([]models.RuleRecord, 0, len(rules))
	for name, r := range rules {
		recs = append(recs, models.RuleRecord{
			PoolID:       poolID,
			Name:         name,
			Points:       r.Points,
			BasePoints:   r.BasePoints,
			Code:         r.Code,
			BonusDivisor: r.BonusDivisor,
			Description:  r.Description,
		})
	}
	if len(recs) == 0 {
		return nil
	}
	_, err := p.db.NewInsert().Model(&recs).
		On("CONFLICT (pool_id, name) DO UPDATE").
		Set("points = EXCLUDED.points").
		Set("base_points = EXCLUDED.base_points").
		Set("code = EXCLUDED.code").
		Set("bonus_divisor = EXCLUDED.bonus_divisor").
		Set("description = EXCLUDED.description").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upserting rules for pool %q: %w", poolID, err)
	}
	return nil
}

func (p *PG) LoadAll(ctx context.Context, poolID string) (map[string][]models.RoundEntry, error) {
	var roster []models.ParticipantRecord
	err := p.db.NewSelect().Model(&roster).Where("pool_id = ?", poolID).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster for pool %q: %w", poolID, err)
	}

	var recs []models.PredictionRecord
	err = p.db.NewSelect().Model(&recs).
		Where("pool_id = ?", poolID).
		Order("participant", "round", "id").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading predictions for pool %q: %w", poolID, err)
	}

	all := make(map[string][]models.RoundEntry, len(roster))
	for _, r := range roster {
		all[r.Participant] = nil
	}
	for _, rec := range recs {
		entries := all[rec.Participant]
		entry := models.EntryForRound(entries, rec.Round)
		if entry == nil {
			entries = append(entries, models.RoundEntry{Round: rec.Round})
			all[rec.Participant] = entries
			entry = &entries[len(entries)-1]
		}
		if rec.SubmittedAt.After(entry.SubmittedAt) {
			entry.SubmittedAt = rec.SubmittedAt
		}
		pred := models.ValidatedPrediction{
			GameID:     rec.GameID,
			Home:       rec.Home,
			Away:       rec.Away,
			HomeGoals:  rec.HomeGoals,
			AwayGoals:  rec.AwayGoals,
			ExtraLabel: rec.ExtraLabel,
		}
		if rec.Extra {
			entry.ExtraBets = append(entry.ExtraBets, pred)
		} else {
			entry.Predictions = append(entry.Predictions, pred)
		}
	}
	return all, nil
}

// Save replaces the participant's rows with the given entries. Merging
// happens upstream on the document form, so the row set here is the full
// desired state.
func (p *PG) Save(ctx context.Context, poolID, participant string, entries []models.RoundEntry) error {
	var recs []models.PredictionRecord
	for _, e := range entries {
		for _, pr := range e.Predictions {
			recs = append(recs, predictionRow(poolID, participant, e, pr, false))
		}
		for _, x := range e.ExtraBets {
			recs = append(recs, predictionRow(poolID, participant, e, x, true))
		}
	}

	return p.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		roster := models.ParticipantRecord{PoolID: poolID, Participant: participant}
		_, err := tx.NewInsert().Model(&roster).
			On("CONFLICT (pool_id, participant) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("registering participant %q: %w", participant, err)
		}
		_, err = tx.NewDelete().Model((*models.PredictionRecord)(nil)).
			Where("pool_id = ?", poolID).
			Where("participant = ?", participant).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("clearing predictions for %q: %w", participant, err)
		}
		if len(recs) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&recs).Exec(ctx); err != nil {
			return fmt.Errorf("inserting predictions for %q: %w", participant, err)
		}
		return nil
	})
}

func predictionRow(poolID, participant string, e models.RoundEntry, p models.ValidatedPrediction, extra bool) models.PredictionRecord {
	return models.PredictionRecord{
		PoolID:      poolID,
		Participant: participant,
		Round:       e.Round,
		GameID:      p.GameID,
		Home:        p.Home,
		Away:        p.Away,
		HomeGoals:   p.HomeGoals,
		AwayGoals:   p.AwayGoals,
		Extra:       extra,
		ExtraLabel:  p.ExtraLabel,
		SubmittedAt: e.SubmittedAt,
	}
}

func (p *PG) WriteReport(ctx context.Context, poolID string, round int, text string) (string, error) {
	rec := models.ReportRecord{
		PoolID:    poolID,
		Round:     round,
		Text:      text,
		CreatedAt: time.Now(),
	}
	_, err := p.db.NewInsert().Model(&rec).
		On("CONFLICT (pool_id, round) DO UPDATE").
		Set("text = EXCLUDED.text").
		Set("created_at = EXCLUDED.created_at").
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("writing report for round %d: %w", round, err)
	}
	return fmt.Sprintf("reports/%s/round%02d", poolID, round), nil
}
