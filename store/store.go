// Package store persists pool data. Two implementations share the same
// interfaces: a JSON directory tree and a PostgreSQL database.
package store

import (
	"context"

	"github.com/tsoliveira/bolao/models"
)

// ScheduleStore loads and saves a pool's fixture list.
type ScheduleStore interface {
	LoadSchedule(ctx context.Context, poolID string) (*models.Schedule, error)
	SaveSchedule(ctx context.Context, schedule *models.Schedule) error
	// BackupSchedule snapshots the current schedule before a commit and
	// returns an identifier for the snapshot (a file path or a tag).
	BackupSchedule(ctx context.Context, poolID string) (string, error)
}

// RuleStore loads a pool's scoring rules.
type RuleStore interface {
	LoadRules(ctx context.Context, poolID string) (models.RuleSet, error)
}

// PredictionStore loads and saves participant predictions.
type PredictionStore interface {
	LoadAll(ctx context.Context, poolID string) (map[string][]models.RoundEntry, error)
	Save(ctx context.Context, poolID, participant string, entries []models.RoundEntry) error
}

// ReportStore writes the rendered standings report for a round and returns
// where it landed.
type ReportStore interface {
	WriteReport(ctx context.Context, poolID string, round int, text string) (string, error)
}

// Store bundles every persistence concern the command-line tools need. Both
// FS and PG satisfy it.
type Store interface {
	ScheduleStore
	RuleStore
	PredictionStore
	ReportStore
	SaveRules(ctx context.Context, poolID string, rules models.RuleSet) error
}
