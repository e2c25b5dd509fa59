package models

// GameScore is the outcome of scoring one prediction against one official
// result. Recomputed on every run, never persisted on its own.
type GameScore struct {
	GameID   string  `json:"gameId"`
	Home     string  `json:"home"`
	Away     string  `json:"away"`
	Points   float64 `json:"points"`
	RuleCode string  `json:"ruleCode"`
}

// StandingEntry is one participant's row in the ranking for a round.
// RankDelta is positive when the participant moved up since the prior round.
type StandingEntry struct {
	Participant      string      `json:"participant"`
	RoundPoints      float64     `json:"roundPoints"`
	CumulativePoints float64     `json:"cumulativePoints"`
	Rank             int         `json:"rank"`
	RankDelta        int         `json:"rankDelta"`
	GamesPlayed      int         `json:"gamesPlayed"`
	Games            []GameScore `json:"games,omitempty"`
}

// RuleCodes returns the per-game rule codes in game order.
func (e StandingEntry) RuleCodes() []string {
	codes := make([]string, 0, len(e.Games))
	for _, g := range e.Games {
		codes = append(codes, g.RuleCode)
	}
	return codes
}

// StandingsReport is the full output of processing one round.
type StandingsReport struct {
	PoolID    string          `json:"poolId"`
	PoolName  string          `json:"poolName"`
	Season    string          `json:"season"`
	Round     int             `json:"round"`
	Standings []StandingEntry `json:"standings"`
	Committed bool            `json:"committed"`
	Text      string          `json:"-"`
}
