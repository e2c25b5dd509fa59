// Package scoring assigns points to a single prediction against a single
// official result by walking a fixed rule hierarchy. Point values and rule
// codes come from the pool's rule configuration; the evaluation order does
// not.
package scoring

import "github.com/tsoliveira/bolao/models"

// CodeNoPoints is returned when no rule in the hierarchy applies.
const CodeNoPoints = "NP"

type outcome struct {
	predHome, predAway     int
	actualHome, actualAway int
}

func (o outcome) exact() bool {
	return o.predHome == o.actualHome && o.predAway == o.actualAway
}

// inverted: the predicted score is the actual one with sides swapped, and
// the result is not a draw (an inverted draw is just a correct draw).
func (o outcome) inverted() bool {
	return o.predHome == o.actualAway && o.predAway == o.actualHome &&
		!(o.predHome == o.predAway && o.actualHome == o.actualAway)
}

func (o outcome) winnerCorrect() bool {
	return (o.predHome > o.predAway && o.actualHome > o.actualAway) ||
		(o.predAway > o.predHome && o.actualAway > o.actualHome)
}

func (o outcome) drawCorrect() bool {
	return o.predHome == o.predAway && o.actualHome == o.actualAway
}

// resultCorrect: winner or draw predicted correctly.
func (o outcome) resultCorrect() bool {
	return o.winnerCorrect() || o.drawCorrect()
}

// oneSideExact: exactly one of the two goal counts matches (XOR).
func (o outcome) oneSideExact() bool {
	return (o.predHome == o.actualHome) != (o.predAway == o.actualAway)
}

func (o outcome) diffCorrect() bool {
	return o.predHome-o.predAway == o.actualHome-o.actualAway
}

func (o outcome) totalCorrect() bool {
	return o.predHome+o.predAway == o.actualHome+o.actualAway
}

func (o outcome) anySideExact() bool {
	return o.predHome == o.actualHome || o.predAway == o.actualAway
}

// Score evaluates one prediction against the game's official result and
// returns the points and code of the first rule that applies. exactHits is
// the number of participants who predicted this game's exact score, computed
// by the caller across all participants; it must be >= 1 whenever the exact
// score rule can fire.
func Score(pred models.ValidatedPrediction, game models.Game, rules models.RuleSet, exactHits int) (float64, string) {
	if !game.Finalized() {
		return 0, CodeNoPoints
	}

	o := outcome{
		predHome:   pred.HomeGoals,
		predAway:   pred.AwayGoals,
		actualHome: *game.HomeGoals,
		actualAway: *game.AwayGoals,
	}

	// The order below is the scoring contract. First match wins.
	switch {
	case o.inverted():
		return fixed(rules, models.RuleInvertedScore, -3, "RI")
	case o.exact():
		return exactScore(rules, exactHits)
	case o.winnerCorrect() && o.oneSideExact():
		return fixed(rules, models.RuleWinnerOneSide, 7, "VG")
	case o.winnerCorrect() && o.diffCorrect():
		return fixed(rules, models.RuleWinnerDiff, 6, "VD")
	case o.winnerCorrect() && o.totalCorrect():
		return fixed(rules, models.RuleWinnerTotal, 6, "VS")
	case o.winnerCorrect():
		return fixed(rules, models.RuleWinnerOnly, 5, "AV")
	case o.drawCorrect():
		return fixed(rules, models.RuleDrawOnly, 5, "AE")
	case o.oneSideExact() && !o.resultCorrect():
		return fixed(rules, models.RuleOneSideGoals, 2, "AG")
	case o.totalCorrect() && !o.anySideExact() && !o.resultCorrect():
		return fixed(rules, models.RuleTotalGoals, 1, "AS")
	default:
		return 0, CodeNoPoints
	}
}

// MissingPenalty returns the fixed penalty for a mandatory game with no
// prediction at all. It sits outside the hierarchy and is applied by the
// caller once per missing mandatory game per participant.
func MissingPenalty(rules models.RuleSet) (float64, string) {
	return fixed(rules, models.RuleMissingBet, -1, "PA")
}

func fixed(rules models.RuleSet, name string, defPoints float64, defCode string) (float64, string) {
	r, ok := rules[name]
	if !ok {
		return defPoints, defCode
	}
	code := r.Code
	if code == "" {
		code = defCode
	}
	return r.Points, code
}

func exactScore(rules models.RuleSet, exactHits int) (float64, string) {
	r, ok := rules[models.RuleExactScore]
	if !ok {
		r = models.Rule{BasePoints: 12, BonusDivisor: true, Code: "AR"}
	}
	code := r.Code
	if code == "" {
		code = "AR"
	}
	if !r.BonusDivisor {
		return r.Points, code
	}
	if exactHits < 1 {
		exactHits = 1
	}
	return r.BasePoints + 1.0/float64(exactHits), code
}
