package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vp(gameID string, hg, ag int) ValidatedPrediction {
	return ValidatedPrediction{GameID: gameID, HomeGoals: hg, AwayGoals: ag}
}

func extra(gameID, label string, hg, ag int) ValidatedPrediction {
	p := vp(gameID, hg, ag)
	p.ExtraLabel = label
	return p
}

func TestMergeReplacesResubmittedGames(t *testing.T) {
	e := RoundEntry{
		Round:       1,
		Predictions: []ValidatedPrediction{vp("game-001", 2, 1), vp("game-002", 0, 0)},
	}
	at := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	e.Merge([]ValidatedPrediction{vp("game-001", 3, 0)}, nil, at)

	require.Len(t, e.Predictions, 2)
	byGame := e.PredictionByGame()
	assert.Equal(t, 3, byGame["game-001"].HomeGoals)
	assert.Equal(t, 0, byGame["game-002"].HomeGoals)
	assert.Equal(t, at, e.SubmittedAt)
}

func TestMergeDuplicatePredictionsCollapse(t *testing.T) {
	var e RoundEntry
	e.Merge([]ValidatedPrediction{vp("game-001", 1, 0), vp("game-001", 2, 2)}, nil, time.Now())

	require.Len(t, e.Predictions, 1)
	assert.Equal(t, 2, e.Predictions[0].HomeGoals)
}

func TestMergeUnlabeledExtrasKeyedByGame(t *testing.T) {
	var e RoundEntry

	// Two unlabeled extras on the same game collapse to the last one; a
	// second unlabeled extra on another game stays.
	e.Merge(nil, []ValidatedPrediction{
		extra("game-010", "", 1, 0),
		extra("game-010", "", 2, 0),
		extra("game-011", "", 0, 0),
	}, time.Now())

	require.Len(t, e.ExtraBets, 2)
	assert.Equal(t, "game-010", e.ExtraBets[0].GameID)
	assert.Equal(t, 2, e.ExtraBets[0].HomeGoals)
	assert.Equal(t, "game-011", e.ExtraBets[1].GameID)
}

func TestMergeExtrasKeepOtherGames(t *testing.T) {
	e := RoundEntry{
		ExtraBets: []ValidatedPrediction{
			extra("game-010", "", 1, 0),
			extra("game-011", "Game 11", 0, 2),
		},
	}

	// Re-submitting the game-011 extra must not clobber the unlabeled one.
	e.Merge(nil, []ValidatedPrediction{extra("game-011", "Game 11", 3, 3)}, time.Now())

	require.Len(t, e.ExtraBets, 2)
	assert.Equal(t, "game-010", e.ExtraBets[0].GameID)
	assert.Equal(t, 1, e.ExtraBets[0].HomeGoals)
	assert.Equal(t, 3, e.ExtraBets[1].HomeGoals)
}
