package models

// Canonical rule names. The scoring engine looks rules up by these keys; the
// evaluation order itself is fixed in code, only points and codes are
// configurable.
const (
	RuleExactScore    = "exact_score"
	RuleWinnerOneSide = "winner_one_side_goals"
	RuleWinnerDiff    = "winner_goal_difference"
	RuleWinnerTotal   = "winner_total_goals"
	RuleWinnerOnly    = "winner_only"
	RuleDrawOnly      = "draw_only"
	RuleOneSideGoals  = "one_side_goals"
	RuleTotalGoals    = "total_goals"
	RuleInvertedScore = "inverted_score"
	RuleMissingBet    = "missing_bet"
)

// Rule is one configurable scoring rule. Rules with BonusDivisor true use
// BasePoints plus the 1/N exact-hit bonus; all others use Points.
type Rule struct {
	Points       float64 `json:"points,omitempty"`
	BasePoints   float64 `json:"basePoints,omitempty"`
	Code         string  `json:"code"`
	BonusDivisor bool    `json:"bonusDivisor,omitempty"`
	Description  string  `json:"description,omitempty"`
}

// RuleSet maps rule names to their configuration.
type RuleSet map[string]Rule

// DefaultRules returns the canonical ten-rule configuration.
func DefaultRules() RuleSet {
	return RuleSet{
		RuleExactScore:    {BasePoints: 12, BonusDivisor: true, Code: "AR", Description: "Exact score (plus 1/N bonus)"},
		RuleWinnerOneSide: {Points: 7, Code: "VG", Description: "Winner plus one team's exact goals"},
		RuleWinnerDiff:    {Points: 6, Code: "VD", Description: "Winner plus goal difference"},
		RuleWinnerTotal:   {Points: 6, Code: "VS", Description: "Winner plus total goals"},
		RuleWinnerOnly:    {Points: 5, Code: "AV", Description: "Winner only"},
		RuleDrawOnly:      {Points: 5, Code: "AE", Description: "Draw only"},
		RuleOneSideGoals:  {Points: 2, Code: "AG", Description: "One team's goals only"},
		RuleTotalGoals:    {Points: 1, Code: "AS", Description: "Total goals only"},
		RuleInvertedScore: {Points: -3, Code: "RI", Description: "Inverted score (penalty)"},
		RuleMissingBet:    {Points: -1, Code: "PA", Description: "Missing prediction for a mandatory game"},
	}
}

// CanonicalRuleNames lists the rules a usable configuration must define.
func CanonicalRuleNames() []string {
	return []string{
		RuleExactScore, RuleWinnerOneSide, RuleWinnerDiff, RuleWinnerTotal,
		RuleWinnerOnly, RuleDrawOnly, RuleOneSideGoals, RuleTotalGoals,
		RuleInvertedScore, RuleMissingBet,
	}
}
