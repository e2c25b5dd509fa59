package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeam(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Atlético/MG", "atletico-mg"},
		{"São Paulo", "sao-paulo"},
		{"  Flamengo  ", "flamengo"},
		{"GRÊMIO", "gremio"},
		{"Ponte   Preta", "ponte-preta"},
		{"Vasco da Gama", "vasco-da-gama"},
		{"América--MG", "america-mg"},
		{"-Santos-", "santos"},
		{"", ""},
		{"   ", ""},
		{"Athletico (PR)", "athletico-pr"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Team(tt.in), "Team(%q)", tt.in)
	}
}

func TestTeamEquivalence(t *testing.T) {
	// Accents, case, slash-vs-hyphen and surrounding whitespace must all
	// collapse to the same canonical form.
	names := []string{"Atlético/MG", "São Paulo", "Grêmio", "Ponte Preta"}
	for _, name := range names {
		want := Team(name)
		assert.Equal(t, want, Team(strings.ToUpper(name)))
		assert.Equal(t, want, Team(strings.ReplaceAll(name, "/", "-")))
		assert.Equal(t, want, Team("  "+name+"  "))
	}
}

func TestParticipant(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Mario Silva", "MarioSilva"},
		{"João da Silva Jr.", "JoaodaSilvaJr"},
		{"Ana-Paula", "AnaPaula"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Participant(tt.in), "Participant(%q)", tt.in)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	m := Levenshtein{}
	assert.Equal(t, 0, m.Distance("flamengo", "flamengo"))
	assert.Equal(t, 1, m.Distance("flamego", "flamengo"))
	assert.Equal(t, 2, m.Distance("palmerias", "palmeiras"))
	assert.Equal(t, 8, m.Distance("", "flamengo"))
	assert.Equal(t, 3, m.Distance("abc", "xyz"))
}

func TestResolve(t *testing.T) {
	r := NewResolver(nil, 0)
	teams := []string{"Flamengo", "Palmeiras", "São Paulo"}

	got, ok := r.Resolve("Flamego", teams)
	require.True(t, ok)
	assert.Equal(t, "Flamengo", got)

	got, ok = r.Resolve("Palmerias", teams)
	require.True(t, ok)
	assert.Equal(t, "Palmeiras", got)

	// Exact normalized match short-circuits regardless of spelling noise.
	got, ok = r.Resolve("  SÃO PAULO ", teams)
	require.True(t, ok)
	assert.Equal(t, "São Paulo", got)

	_, ok = r.Resolve("XYZ", teams)
	assert.False(t, ok)

	_, ok = r.Resolve("", teams)
	assert.False(t, ok)
}

func TestResolveTieBreak(t *testing.T) {
	r := NewResolver(nil, 0)
	// "corx" is distance 1 from both; the earlier entry wins.
	got, ok := r.Resolve("corx", []string{"cora", "corb"})
	require.True(t, ok)
	assert.Equal(t, "cora", got)

	got, ok = r.Resolve("corx", []string{"corb", "cora"})
	require.True(t, ok)
	assert.Equal(t, "corb", got)
}
