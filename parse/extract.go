package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsoliveira/bolao/models"
)

// Extraction is everything pulled out of one section of submission text.
// Zero values (empty Bettor, Round 0) mean "not found".
type Extraction struct {
	Bettor      string
	Round       int
	Predictions []models.RawPrediction
	ExtraBets   []models.ExtraBet
}

// Extract pulls bettor identity, round number, regular predictions and extra
// bets out of one section of text. It never fails: unrecognizable lines are
// simply skipped.
func Extract(text string) Extraction {
	return Extraction{
		Bettor:      ExtractBettor(text),
		Round:       ExtractRound(text),
		Predictions: extractPredictions(text),
		ExtraBets:   extractExtraBets(text),
	}
}

// ExtractBettor identifies the bettor: an explicit marker within the first
// three lines wins; failing that, a first line of plain letters and spaces
// with no round or score indicators is taken as the name. Empty when neither
// applies.
func ExtractBettor(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 {
		return ""
	}

	limit := len(lines)
	if limit > 3 {
		limit = 3
	}
	for _, line := range lines[:limit] {
		if m := bettorMarker.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	first := strings.TrimSpace(lines[0])
	if first != "" && !roundOrGameIndicators.MatchString(first) && nameOnlyLine.MatchString(first) {
		return first
	}
	return ""
}

// ExtractRound finds the first round number in [1,50] in any recognized
// form; 0 when none is present.
func ExtractRound(text string) int {
	for _, p := range roundPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err == nil && n >= minRound && n <= maxRound {
				return n
			}
		}
	}
	return 0
}

// parseScoreLine matches one line against the score pattern table. The
// second return is false when the line is not a score line at all; a matched
// line with goals outside [0,20] yields (nil, true) and is dropped.
func parseScoreLine(line string) (*models.RawPrediction, bool) {
	for _, p := range scorePatterns {
		m := p.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		home := strings.TrimSpace(m[1])
		away := strings.TrimSpace(m[4])
		hg, err1 := strconv.Atoi(m[2])
		ag, err2 := strconv.Atoi(m[3])
		if home == "" || away == "" || err1 != nil || err2 != nil {
			return nil, true
		}
		if hg < MinGoals || hg > MaxGoals || ag < MinGoals || ag > MaxGoals {
			return nil, true
		}
		return &models.RawPrediction{Home: home, Away: away, HomeGoals: &hg, AwayGoals: &ag}, true
	}
	return nil, false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func extractPredictions(text string) []models.RawPrediction {
	var preds []models.RawPrediction
	inExtraSection := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, isMarker := markerRound(line); isMarker {
			inExtraSection = false
			continue
		}
		if extraSectionStart.MatchString(line) {
			inExtraSection = true
			continue
		}
		if inExtraSection || headerIndicators.MatchString(line) || extraBetPrefix.MatchString(line) {
			continue
		}

		if p, matched := parseScoreLine(line); matched {
			if p != nil {
				preds = append(preds, *p)
			}
			continue
		}

		// A bare "TeamA x TeamB" line still identifies the fixture.
		if m := bareFixturePattern.FindStringSubmatch(line); m != nil {
			home, away := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if !isNumeric(home) && !isNumeric(away) {
				preds = append(preds, models.RawPrediction{Home: home, Away: away})
			}
		}
	}
	return preds
}

// extractExtraBets collects bonus predictions: "Game N:" prefixed lines
// anywhere in the text, plus unlabeled score lines inside a marked extra
// sub-section. The sub-section ends at the next round marker.
func extractExtraBets(text string) []models.ExtraBet {
	var extras []models.ExtraBet
	inExtraSection := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if _, isMarker := markerRound(line); isMarker {
			inExtraSection = false
			continue
		}
		if extraSectionStart.MatchString(line) && !extraBetPrefix.MatchString(line) {
			inExtraSection = true
			continue
		}

		if m := extraBetPrefix.FindStringSubmatch(line); m != nil {
			if p, matched := parseScoreLine(strings.TrimSpace(m[2])); matched && p != nil {
				extras = append(extras, models.ExtraBet{
					RawPrediction: *p,
					Label:         fmt.Sprintf("Game %s", m[1]),
				})
			}
			continue
		}

		if inExtraSection {
			if p, matched := parseScoreLine(line); matched && p != nil {
				extras = append(extras, models.ExtraBet{RawPrediction: *p})
			}
		}
	}
	return extras
}
