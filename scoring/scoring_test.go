package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsoliveira/bolao/models"
)

func intp(n int) *int { return &n }

func finalized(hg, ag int) models.Game {
	return models.Game{
		ID:        "game-001",
		Home:      "Flamengo",
		Away:      "Palmeiras",
		HomeGoals: intp(hg),
		AwayGoals: intp(ag),
		Status:    models.StatusFinalized,
	}
}

func pred(hg, ag int) models.ValidatedPrediction {
	return models.ValidatedPrediction{
		GameID:    "game-001",
		Home:      "Flamengo",
		Away:      "Palmeiras",
		HomeGoals: hg,
		AwayGoals: ag,
	}
}

func TestScoreHierarchy(t *testing.T) {
	rules := models.DefaultRules()

	tests := []struct {
		name       string
		pred       models.ValidatedPrediction
		game       models.Game
		wantPoints float64
		wantCode   string
	}{
		{"exact score, sole hit", pred(2, 1), finalized(2, 1), 13, "AR"},
		{"inverted score beats everything", pred(1, 2), finalized(2, 1), -3, "RI"},
		{"inverted draw scores as exact", pred(1, 1), finalized(1, 1), 13, "AR"},
		{"winner plus home goals", pred(2, 0), finalized(2, 1), 7, "VG"},
		{"winner plus away goals", pred(3, 1), finalized(2, 1), 7, "VG"},
		{"winner plus goal difference", pred(3, 2), finalized(2, 1), 6, "VD"},
		{"winner plus total goals", pred(3, 0), finalized(2, 1), 6, "VS"},
		{"winner only", pred(4, 2), finalized(2, 1), 5, "AV"},
		{"draw, wrong goals", pred(0, 0), finalized(1, 1), 5, "AE"},
		{"wrong result, one side exact", pred(2, 3), finalized(2, 1), 2, "AG"},
		{"wrong result, total only", pred(0, 3), finalized(2, 1), 1, "AS"},
		{"nothing right", pred(0, 4), finalized(2, 1), 0, "NP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, code := Score(tt.pred, tt.game, rules, 1)
			assert.Equal(t, tt.wantCode, code)
			assert.InDelta(t, tt.wantPoints, points, 1e-9)
		})
	}
}

func TestScoreExactHitBonus(t *testing.T) {
	rules := models.DefaultRules()
	game := finalized(2, 1)

	points, code := Score(pred(2, 1), game, rules, 1)
	assert.Equal(t, "AR", code)
	assert.InDelta(t, 13.0, points, 1e-9)

	points, _ = Score(pred(2, 1), game, rules, 2)
	assert.InDelta(t, 12.5, points, 1e-9)

	points, _ = Score(pred(2, 1), game, rules, 4)
	assert.InDelta(t, 12.25, points, 1e-9)
}

func TestScoreInvertedOnlyOnDecidedGames(t *testing.T) {
	rules := models.DefaultRules()

	// 2x1 predicted as 1x2 is the classic inversion.
	points, code := Score(pred(1, 2), finalized(2, 1), rules, 1)
	assert.Equal(t, "RI", code)
	assert.InDelta(t, -3.0, points, 1e-9)

	// A "swapped" draw is not an inversion.
	points, code = Score(pred(2, 2), finalized(2, 2), rules, 1)
	assert.Equal(t, "AR", code)
	assert.InDelta(t, 13.0, points, 1e-9)
}

func TestScoreUnfinishedGame(t *testing.T) {
	game := models.Game{ID: "game-001", Home: "Flamengo", Away: "Palmeiras", Status: models.StatusScheduled}
	points, code := Score(pred(2, 1), game, models.DefaultRules(), 1)
	assert.Equal(t, CodeNoPoints, code)
	assert.Zero(t, points)
}

func TestScoreOneSideExactIsSubordinateToResult(t *testing.T) {
	rules := models.DefaultRules()

	// Home goals exact but the winner is also right: VG, not AG.
	_, code := Score(pred(2, 0), finalized(2, 1), rules, 1)
	assert.Equal(t, "VG", code)

	// Home goals exact with the wrong result: AG.
	_, code = Score(pred(2, 3), finalized(2, 1), rules, 1)
	assert.Equal(t, "AG", code)
}

func TestScoreTotalGoalsExcludesSideHits(t *testing.T) {
	rules := models.DefaultRules()

	// Total matches (3) but home goals also match: AG wins over AS.
	_, code := Score(pred(2, 3), finalized(2, 1), rules, 1)
	assert.Equal(t, "AG", code)

	// Total matches with neither side exact and wrong result: AS.
	_, code = Score(pred(0, 3), finalized(2, 1), rules, 1)
	assert.Equal(t, "AS", code)
}

func TestMissingPenalty(t *testing.T) {
	points, code := MissingPenalty(models.DefaultRules())
	assert.Equal(t, "PA", code)
	assert.InDelta(t, -1.0, points, 1e-9)
}

func TestScoreCustomRules(t *testing.T) {
	rules := models.RuleSet{
		models.RuleExactScore: {BasePoints: 20, BonusDivisor: true, Code: "EX"},
		models.RuleWinnerOnly: {Points: 3, Code: "W"},
	}

	points, code := Score(pred(2, 1), finalized(2, 1), rules, 2)
	assert.Equal(t, "EX", code)
	assert.InDelta(t, 20.5, points, 1e-9)

	points, code = Score(pred(4, 2), finalized(2, 1), rules, 1)
	assert.Equal(t, "W", code)
	assert.InDelta(t, 3.0, points, 1e-9)
}
