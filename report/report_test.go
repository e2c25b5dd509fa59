package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsoliveira/bolao/models"
)

func testReport() *models.StandingsReport {
	return &models.StandingsReport{
		PoolID:   "brasileirao",
		PoolName: "Bolão Brasileirão",
		Season:   "2026",
		Round:    3,
		Standings: []models.StandingEntry{
			{
				Participant: "maria", Rank: 1, RoundPoints: 26, CumulativePoints: 61.5,
				RankDelta: 1, GamesPlayed: 2,
				Games: []models.GameScore{
					{GameID: "game-001", Points: 13, RuleCode: "AR"},
					{GameID: "game-002", Points: 13, RuleCode: "AR"},
				},
			},
			{
				Participant: "joao", Rank: 2, RoundPoints: 5, CumulativePoints: 40,
				RankDelta: -1, GamesPlayed: 1,
				Games: []models.GameScore{
					{GameID: "game-001", Points: 5, RuleCode: "AV"},
				},
			},
		},
	}
}

func TestRender(t *testing.T) {
	text := Render(testReport(), models.DefaultRules())

	assert.Contains(t, text, "STANDINGS REPORT - ROUND 03")
	assert.Contains(t, text, "Bolão Brasileirão")
	assert.Contains(t, text, "Season: 2026")
	assert.Contains(t, text, "PREVIEW")
	assert.Contains(t, text, "maria")
	assert.Contains(t, text, "AR AR")
	assert.Contains(t, text, "↑1")
	assert.Contains(t, text, "↓1")
	assert.Contains(t, text, "RULE CODES:")
	assert.Contains(t, text, "Participants: 2")
	assert.Contains(t, text, "Best round score:  26.0 (maria)")
	assert.Contains(t, text, "Worst round score: 5.0 (joao)")
}

func TestRenderCommitted(t *testing.T) {
	rep := testReport()
	rep.Committed = true
	text := Render(rep, models.DefaultRules())
	assert.NotContains(t, text, "PREVIEW")
}

func TestRenderEmpty(t *testing.T) {
	rep := &models.StandingsReport{PoolName: "Empty", Round: 1}
	text := Render(rep, models.DefaultRules())
	assert.Contains(t, text, "No results for this round.")
	assert.NotContains(t, text, "SUMMARY")
}
