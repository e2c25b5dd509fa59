// Package pool ties parsing, validation, scoring and storage together: it
// turns raw submission text into stored predictions and finished rounds into
// standings reports.
package pool

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tsoliveira/bolao/models"
	"github.com/tsoliveira/bolao/normalize"
	"github.com/tsoliveira/bolao/store"
)

// Service is the application core. Every externally visible operation hangs
// off it; the stores decide where the data actually lives.
type Service struct {
	schedules   store.ScheduleStore
	rules       store.RuleStore
	predictions store.PredictionStore
	reports     store.ReportStore
	resolver    *normalize.Resolver
	log         *zap.Logger
}

// NewService wires a Service. A nil logger gets a no-op one.
func NewService(schedules store.ScheduleStore, rules store.RuleStore, predictions store.PredictionStore, reports store.ReportStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		schedules:   schedules,
		rules:       rules,
		predictions: predictions,
		reports:     reports,
		resolver:    normalize.NewResolver(nil, 0),
		log:         log,
	}
}

// ValidateRound binds raw predictions to the round's scheduled games. Team
// names are fuzzy-resolved against the whole schedule; a resolved (home,
// away) pair must then exist in the given round. Per-item failures land in
// errs and the item is skipped; a missing round aborts the whole batch.
func (s *Service) ValidateRound(preds []models.RawPrediction, extras []models.ExtraBet, round int, schedule *models.Schedule) (valid, validExtras []models.ValidatedPrediction, errs []string, err error) {
	r := schedule.RoundByNumber(round)
	if r == nil {
		return nil, nil, nil, fmt.Errorf("round %d not in schedule for pool %q", round, schedule.PoolID)
	}

	known := schedule.TeamNames()
	for _, p := range preds {
		vp, verr := s.validatePrediction(p, "", r, known)
		if verr != "" {
			errs = append(errs, verr)
			continue
		}
		valid = append(valid, vp)
	}
	for _, x := range extras {
		vp, verr := s.validatePrediction(x.RawPrediction, x.Label, r, known)
		if verr != "" {
			errs = append(errs, verr)
			continue
		}
		validExtras = append(validExtras, vp)
	}
	return valid, validExtras, errs, nil
}

func (s *Service) validatePrediction(p models.RawPrediction, extraLabel string, r *models.Round, known []string) (models.ValidatedPrediction, string) {
	fixture := p.Home + " x " + p.Away
	if !p.HasScore() {
		return models.ValidatedPrediction{}, fmt.Sprintf("no score given for %q", fixture)
	}

	home, ok := s.resolver.Resolve(p.Home, known)
	if !ok {
		return models.ValidatedPrediction{}, fmt.Sprintf("unknown team %q in %q", p.Home, fixture)
	}
	away, ok := s.resolver.Resolve(p.Away, known)
	if !ok {
		return models.ValidatedPrediction{}, fmt.Sprintf("unknown team %q in %q", p.Away, fixture)
	}

	for _, g := range r.Games {
		if normalize.Team(g.Home) == normalize.Team(home) && normalize.Team(g.Away) == normalize.Team(away) {
			return models.ValidatedPrediction{
				GameID:     g.ID,
				Home:       g.Home,
				Away:       g.Away,
				HomeGoals:  *p.HomeGoals,
				AwayGoals:  *p.AwayGoals,
				ExtraLabel: extraLabel,
			}, ""
		}
	}
	return models.ValidatedPrediction{}, fmt.Sprintf("%q does not match any game in round %d", fixture, r.Number)
}

// ResolveParticipant maps a free-text bettor name to a registered participant
// id. Exact match on the stripped-identifier form wins, then substring
// containment, then word overlap of at least 70%.
func (s *Service) ResolveParticipant(bettor string, known []string) (string, bool) {
	stripped := strings.ToLower(normalize.Participant(bettor))
	if stripped == "" {
		return "", false
	}

	for _, k := range known {
		if strings.ToLower(normalize.Participant(k)) == stripped {
			return k, true
		}
	}

	for _, k := range known {
		ks := strings.ToLower(normalize.Participant(k))
		if strings.Contains(ks, stripped) || strings.Contains(stripped, ks) {
			return k, true
		}
	}

	bettorWords := nameWords(bettor)
	if len(bettorWords) == 0 {
		return "", false
	}
	best, bestScore := "", 0.0
	for _, k := range known {
		common := 0
		kw := nameWords(k)
		for _, w := range bettorWords {
			for _, v := range kw {
				if w == v {
					common++
					break
				}
			}
		}
		score := float64(common) / float64(len(bettorWords))
		if score > bestScore {
			best, bestScore = k, score
		}
	}
	if bestScore >= 0.7 {
		return best, true
	}
	return "", false
}

func nameWords(name string) []string {
	var words []string
	for _, w := range strings.Fields(name) {
		if n := normalize.Team(w); n != "" {
			words = append(words, n)
		}
	}
	return words
}
