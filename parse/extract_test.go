package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsoliveira/bolao/models"
)

func intp(n int) *int { return &n }

func TestExtractBettor(t *testing.T) {
	tests := []struct {
		name, text, want string
	}{
		{"marker first line", "Bettor: Mario Silva\nRound 1\nFlamengo 2x1 Palmeiras", "Mario Silva"},
		{"localized marker", "Apostador: João da Silva\nRodada 1", "João da Silva"},
		{"name marker", "Name: Maria\nRound 2", "Maria"},
		{"plain first line", "Mario Silva\n1ª Rodada\nFlamengo 2x1 Palmeiras", "Mario Silva"},
		{"marker on second line", "palpites\nnome: Ana\nRound 1", "Ana"},
		{"first line is a round", "Round 1\nFlamengo 2x1 Palmeiras", ""},
		{"first line is a score", "Flamengo 2x1 Palmeiras", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBettor(tt.text))
		})
	}
}

func TestExtractRound(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"1ª Rodada\nFlamengo 2x1 Palmeiras", 1},
		{"Rodada 5\nSão Paulo 1x0 Corinthians", 5},
		{"R10\nBotafogo 2x2 Vasco", 10},
		{"Round 7", 7},
		{"3rd Round", 3},
		{"Jornada 4", 4},
		{"Rodada 99", 0},
		{"no round here", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractRound(tt.text), "text %q", tt.text)
	}
}

func TestScoreFormatEquivalence(t *testing.T) {
	want := models.RawPrediction{Home: "Flamengo", Away: "Palmeiras", HomeGoals: intp(2), AwayGoals: intp(1)}
	lines := []string{
		"Flamengo 2x1 Palmeiras",
		"Flamengo 2 - 1 Palmeiras",
		"Flamengo 2:1 Palmeiras",
		"Flamengo (2) x (1) Palmeiras",
		"Flamengo 2 x 1 Palmeiras",
	}
	for _, line := range lines {
		preds := extractPredictions(line)
		require.Len(t, preds, 1, "line %q", line)
		assert.Equal(t, want, preds[0], "line %q", line)
	}
}

func TestExtractPredictions(t *testing.T) {
	text := `Mario Silva
1ª Rodada
Flamengo 2x1 Palmeiras
São Paulo 0 x 2 Corinthians
Botafogo x Vasco
Grêmio 30x1 Juventude
Jogo 5: Cruzeiro 1x1 Atlético`

	preds := extractPredictions(text)
	require.Len(t, preds, 3)

	assert.Equal(t, "Flamengo", preds[0].Home)
	assert.Equal(t, "Palmeiras", preds[0].Away)
	assert.Equal(t, 2, *preds[0].HomeGoals)
	assert.Equal(t, 1, *preds[0].AwayGoals)

	assert.Equal(t, "São Paulo", preds[1].Home)
	assert.Equal(t, "Corinthians", preds[1].Away)

	// Bare fixture line keeps nil goals for downstream identification.
	assert.Equal(t, "Botafogo", preds[2].Home)
	assert.Equal(t, "Vasco", preds[2].Away)
	assert.Nil(t, preds[2].HomeGoals)
	assert.Nil(t, preds[2].AwayGoals)
}

func TestExtractExtraBets(t *testing.T) {
	text := `Aposta Extra:
Jogo 5: Botafogo 2x2 Vasco
Cruzeiro 1x0 Bahia`

	extras := extractExtraBets(text)
	require.Len(t, extras, 2)

	assert.Equal(t, "Game 5", extras[0].Label)
	assert.Equal(t, "Botafogo", extras[0].Home)
	assert.Equal(t, 2, *extras[0].HomeGoals)

	// Unprefixed line inside the marked section is still an extra bet.
	assert.Equal(t, "", extras[1].Label)
	assert.Equal(t, "Cruzeiro", extras[1].Home)
}

func TestExtraBetPrefixOutsideSection(t *testing.T) {
	text := `Maria
Round 1
Flamengo 2x1 Palmeiras
Game 3: Santos 0x0 Bahia`

	ex := Extract(text)
	require.Len(t, ex.Predictions, 1)
	require.Len(t, ex.ExtraBets, 1)
	assert.Equal(t, "Game 3", ex.ExtraBets[0].Label)
	assert.Equal(t, "Santos", ex.ExtraBets[0].Home)
}

func TestExtractFull(t *testing.T) {
	text := `Mario Silva
1ª Rodada
Flamengo 2x1 Palmeiras
Aposta Extra:
Jogo 5: Botafogo 1x1 Vasco`

	ex := Extract(text)
	assert.Equal(t, "Mario Silva", ex.Bettor)
	assert.Equal(t, 1, ex.Round)
	require.Len(t, ex.Predictions, 1)
	require.Len(t, ex.ExtraBets, 1)
	assert.Equal(t, "Game 5", ex.ExtraBets[0].Label)
}
