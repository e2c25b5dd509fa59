package models

// Game status values stored in schedule files.
const (
	StatusScheduled = "scheduled"
	StatusFinalized = "finalized"
)

// Game is a single scheduled fixture. HomeGoals/AwayGoals stay nil until the
// official result is entered.
type Game struct {
	ID        string `json:"id"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeGoals *int   `json:"homeGoals,omitempty"`
	AwayGoals *int   `json:"awayGoals,omitempty"`
	Status    string `json:"status"`
	Mandatory bool   `json:"mandatory"`
}

// Finalized reports whether an official result is available.
func (g *Game) Finalized() bool {
	return g.Status == StatusFinalized && g.HomeGoals != nil && g.AwayGoals != nil
}

// Round is a numbered batch of games.
type Round struct {
	Number int    `json:"number"`
	Games  []Game `json:"games"`
}

// Schedule is the authoritative fixture list for one pool. CurrentRound is
// the only persisted progress marker; it advances when a round is committed.
type Schedule struct {
	PoolID       string  `json:"poolId"`
	Name         string  `json:"name"`
	Season       string  `json:"season"`
	CurrentRound int     `json:"currentRound"`
	Rounds       []Round `json:"rounds"`
}

// RoundByNumber returns the round with the given number, or nil.
func (s *Schedule) RoundByNumber(n int) *Round {
	for i := range s.Rounds {
		if s.Rounds[i].Number == n {
			return &s.Rounds[i]
		}
	}
	return nil
}

// TeamNames returns every team name appearing anywhere in the schedule, in
// first-seen order without duplicates.
func (s *Schedule) TeamNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range s.Rounds {
		for _, g := range r.Games {
			for _, t := range []string{g.Home, g.Away} {
				if _, ok := seen[t]; !ok {
					seen[t] = struct{}{}
					names = append(names, t)
				}
			}
		}
	}
	return names
}
