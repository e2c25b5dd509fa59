package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Relational row types backing the PostgreSQL store. The JSON filesystem
// store persists the nested structs above directly; these flatten the same
// data into tables.

// PoolRecord is one pool (championship).
type PoolRecord struct {
	bun.BaseModel `bun:"table:pools,alias:p"`

	PoolID       string `bun:"pool_id,pk" json:"poolId"`
	Name         string `bun:"name,notnull" json:"name"`
	Season       string `bun:"season,notnull" json:"season"`
	CurrentRound int    `bun:"current_round,notnull,default:0" json:"currentRound"`
}

// GameRecord is one scheduled fixture row.
type GameRecord struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	GameID    string `bun:"game_id,pk" json:"gameId"`
	PoolID    string `bun:"pool_id,notnull" json:"poolId"`
	Round     int    `bun:"round,notnull" json:"round"`
	Home      string `bun:"home,notnull" json:"home"`
	Away      string `bun:"away,notnull" json:"away"`
	HomeGoals *int   `bun:"home_goals" json:"homeGoals,omitempty"`
	AwayGoals *int   `bun:"away_goals" json:"awayGoals,omitempty"`
	Status    string `bun:"status,notnull,default:'scheduled'" json:"status"`
	Mandatory bool   `bun:"mandatory,notnull,default:true" json:"mandatory"`
}

// RuleRecord is one scoring rule row.
type RuleRecord struct {
	bun.BaseModel `bun:"table:rules,alias:ru"`

	ID           int     `bun:"id,pk,autoincrement" json:"id"`
	PoolID       string  `bun:"pool_id,notnull" json:"poolId"`
	Name         string  `bun:"name,notnull" json:"name"`
	Points       float64 `bun:"points,notnull,default:0" json:"points"`
	BasePoints   float64 `bun:"base_points,notnull,default:0" json:"basePoints"`
	Code         string  `bun:"code,notnull" json:"code"`
	BonusDivisor bool    `bun:"bonus_divisor,notnull,default:false" json:"bonusDivisor"`
	Description  string  `bun:"description" json:"description,omitempty"`
}

// ParticipantRecord registers a participant in a pool, with or without
// predictions. PA penalties and name resolution need the full roster, not
// just whoever has rows in predictions.
type ParticipantRecord struct {
	bun.BaseModel `bun:"table:participants,alias:pa"`

	PoolID      string `bun:"pool_id,pk" json:"poolId"`
	Participant string `bun:"participant,pk" json:"participant"`
}

// ScheduleBackupRecord is a pre-commit snapshot of a pool's schedule,
// stored as the JSON document itself.
type ScheduleBackupRecord struct {
	bun.BaseModel `bun:"table:schedule_backups,alias:sb"`

	ID      int       `bun:"id,pk,autoincrement" json:"id"`
	PoolID  string    `bun:"pool_id,notnull" json:"poolId"`
	TakenAt time.Time `bun:"taken_at,notnull" json:"takenAt"`
	Payload string    `bun:"payload,notnull,type:jsonb" json:"payload"`
}

// ReportRecord is one rendered standings report.
type ReportRecord struct {
	bun.BaseModel `bun:"table:reports,alias:rp"`

	ID        int       `bun:"id,pk,autoincrement" json:"id"`
	PoolID    string    `bun:"pool_id,notnull" json:"poolId"`
	Round     int       `bun:"round,notnull" json:"round"`
	Text      string    `bun:"text,notnull" json:"text"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
}

// PredictionRecord is one validated prediction row.
type PredictionRecord struct {
	bun.BaseModel `bun:"table:predictions,alias:pr"`

	ID          int       `bun:"id,pk,autoincrement" json:"id"`
	PoolID      string    `bun:"pool_id,notnull" json:"poolId"`
	Participant string    `bun:"participant,notnull" json:"participant"`
	Round       int       `bun:"round,notnull" json:"round"`
	GameID      string    `bun:"game_id,notnull" json:"gameId"`
	Home        string    `bun:"home,notnull" json:"home"`
	Away        string    `bun:"away,notnull" json:"away"`
	HomeGoals   int       `bun:"home_goals,notnull" json:"homeGoals"`
	AwayGoals   int       `bun:"away_goals,notnull" json:"awayGoals"`
	Extra       bool      `bun:"extra,notnull,default:false" json:"extra,omitempty"`
	ExtraLabel  string    `bun:"extra_label,notnull,default:''" json:"extraLabel,omitempty"`
	SubmittedAt time.Time `bun:"submitted_at,notnull" json:"submittedAt"`
}
