package pool

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsoliveira/bolao/models"
	"github.com/tsoliveira/bolao/store"
)

func finalizedSchedule() *models.Schedule {
	s := testSchedule()
	r := s.RoundByNumber(1)
	r.Games[0].HomeGoals, r.Games[0].AwayGoals = intp(2), intp(1)
	r.Games[0].Status = models.StatusFinalized
	r.Games[1].HomeGoals, r.Games[1].AwayGoals = intp(0), intp(0)
	r.Games[1].Status = models.StatusFinalized
	r.Games[2].HomeGoals, r.Games[2].AwayGoals = intp(1), intp(1)
	r.Games[2].Status = models.StatusFinalized
	return s
}

func newProcessService(t *testing.T) (*Service, *store.FS) {
	t.Helper()
	fs := store.NewFS(t.TempDir())
	ctx := context.Background()
	require.NoError(t, fs.SaveSchedule(ctx, finalizedSchedule()))
	require.NoError(t, fs.SaveRules(ctx, "brasileirao", models.DefaultRules()))
	return NewService(fs, fs, fs, fs, nil), fs
}

func seedPredictions(t *testing.T, s *Service) {
	t.Helper()
	ctx := context.Background()
	schedule := finalizedSchedule()

	maria, err := s.Ingest("Maria\nRodada 1\nFlamengo 2x1 Palmeiras\nSantos 0x0 Corinthians\nSao Paulo 1x1 Atletico-MG", schedule)
	require.NoError(t, err)
	require.NoError(t, s.SaveResults(ctx, "brasileirao", "maria", maria, time.Now()))

	joao, err := s.Ingest("Joao\nRodada 1\nFlamengo 1x0 Palmeiras\nSantos 2x1 Corinthians\nSao Paulo 0x0 Atletico-MG", schedule)
	require.NoError(t, err)
	require.NoError(t, s.SaveResults(ctx, "brasileirao", "joao", joao, time.Now()))
}

func TestProcessRoundPreview(t *testing.T) {
	s, fs := newProcessService(t)
	seedPredictions(t, s)
	ctx := context.Background()

	rep, err := s.ProcessRound(ctx, "brasileirao", 1, false)
	require.NoError(t, err)
	require.Len(t, rep.Standings, 2)
	assert.False(t, rep.Committed)

	// maria: 13 AR + 13 AR + 13 AR = 39; joao: 6 VD + 0 NP + 5 AE = 11.
	assert.Equal(t, "maria", rep.Standings[0].Participant)
	assert.InDelta(t, 39.0, rep.Standings[0].RoundPoints, 1e-9)
	assert.Equal(t, "joao", rep.Standings[1].Participant)
	assert.InDelta(t, 11.0, rep.Standings[1].RoundPoints, 1e-9)
	assert.Equal(t, []string{"VD", "NP", "AE"}, rep.Standings[1].RuleCodes())
	assert.NotEmpty(t, rep.Text)

	// Preview leaves everything untouched.
	schedule, err := fs.LoadSchedule(ctx, "brasileirao")
	require.NoError(t, err)
	assert.Zero(t, schedule.CurrentRound)
}

func TestProcessRoundCommit(t *testing.T) {
	s, fs := newProcessService(t)
	seedPredictions(t, s)
	ctx := context.Background()

	rep, err := s.ProcessRound(ctx, "brasileirao", 1, true)
	require.NoError(t, err)
	assert.True(t, rep.Committed)

	schedule, err := fs.LoadSchedule(ctx, "brasileirao")
	require.NoError(t, err)
	assert.Equal(t, 1, schedule.CurrentRound)

	backups, err := filepath.Glob(filepath.Join(fs.Root, "brasileirao", "schedule_backup_*.json"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)

	report, err := os.ReadFile(filepath.Join(fs.Root, "brasileirao", "reports", "round01.txt"))
	require.NoError(t, err)
	assert.Equal(t, rep.Text, string(report))
}

func TestProcessRoundIncomplete(t *testing.T) {
	fs := store.NewFS(t.TempDir())
	ctx := context.Background()
	require.NoError(t, fs.SaveSchedule(ctx, testSchedule()))
	require.NoError(t, fs.SaveRules(ctx, "brasileirao", models.DefaultRules()))
	s := NewService(fs, fs, fs, fs, nil)

	_, err := s.ProcessRound(ctx, "brasileirao", 1, false)
	var incomplete *IncompleteRoundError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 1, incomplete.Round)
	// Every pending fixture listed, not just the first.
	assert.Len(t, incomplete.Pending, 3)
	assert.Contains(t, incomplete.Pending, "Flamengo x Palmeiras")
}

func TestProcessRoundBadConfiguration(t *testing.T) {
	fs := store.NewFS(t.TempDir())
	ctx := context.Background()
	require.NoError(t, fs.SaveSchedule(ctx, finalizedSchedule()))

	// A rule set missing most canonical rules.
	require.NoError(t, fs.SaveRules(ctx, "brasileirao", models.RuleSet{
		models.RuleExactScore: {BasePoints: 12, BonusDivisor: true, Code: "AR"},
	}))
	s := NewService(fs, fs, fs, fs, nil)

	_, err := s.ProcessRound(ctx, "brasileirao", 1, false)
	var bad *ConfigurationError
	require.ErrorAs(t, err, &bad)
	assert.Len(t, bad.Problems, len(models.CanonicalRuleNames())-1)
}

func TestProcessRoundUnknownRound(t *testing.T) {
	s, _ := newProcessService(t)

	_, err := s.ProcessRound(context.Background(), "brasileirao", 40, false)
	var bad *ConfigurationError
	require.ErrorAs(t, err, &bad)
}
