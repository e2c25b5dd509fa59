// Package parse turns free-form bettor text into raw prediction records:
// splitting multi-round submissions, extracting bettor identity, round
// numbers, score lines and extra bets, and inferring the round from team
// mentions when no marker is present.
package parse

import "regexp"

// The extraction grammar lives in these tables. Supporting a new text format
// means adding an entry, not a new code path.

// scorePatterns capture (home, homeGoals, awayGoals, away). Tried in order;
// first match wins.
var scorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s*x\s*(\d+)\s+(.+)$`),                        // Flamengo 2x1 Palmeiras
	regexp.MustCompile(`^(.+?)\s+(\d+)\s*-\s*(\d+)\s+(.+)$`),                            // Flamengo 2-1 Palmeiras
	regexp.MustCompile(`^(.+?)\s+(\d+)\s*:\s*(\d+)\s+(.+)$`),                            // Flamengo 2:1 Palmeiras
	regexp.MustCompile(`(?i)^(.+?)\s*\(\s*(\d+)\s*\)\s*x\s*\(\s*(\d+)\s*\)\s*(.+)$`),    // Flamengo (2) x (1) Palmeiras
}

// bareFixturePattern matches "TeamA x TeamB" with no score, kept so the
// fixture can still be identified downstream.
var bareFixturePattern = regexp.MustCompile(`(?i)^(.+?)\s+x\s+(.+)$`)

// roundPatterns capture the round number from ordinal, plain, abbreviated
// and localized forms.
var roundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:ª|º|°|st|nd|rd|th)?\s*(?:rodada|jornada|round)`), // 1ª Rodada, 1st Round
	regexp.MustCompile(`(?i)(?:rodada|jornada|round)\s*(\d+)`),                          // Rodada 5, Round 5
	regexp.MustCompile(`(?i)\br\s*(\d+)\b`),                                             // R3
}

// roundMarkerLine matches a whole line that is a round boundary, tolerating
// decorative characters (emoji, brackets) around the marker.
var roundMarkerLine = regexp.MustCompile(
	`(?i)^\W*(?:(?:rodada|jornada|round)\W*(\d{1,2})|(\d{1,2})\s*(?:ª|º|°|st|nd|rd|th)?\W*(?:rodada|jornada|round))\W*$`)

// bettorMarker captures the bettor name from an explicit marker line.
var bettorMarker = regexp.MustCompile(`(?i)^\s*(?:apostador|bettor|nome|name|participante)\s*:\s*(.+)$`)

// nameOnlyLine matches a line consisting solely of letters and spaces.
var nameOnlyLine = regexp.MustCompile(`^[\p{L} ]+$`)

// headerIndicators flags lines that are metadata rather than predictions.
var headerIndicators = regexp.MustCompile(
	`(?i)apostador|bettor|participante|\bnome\b|\bname\b|rodada|jornada|round|aposta\s+extra|extra\s+bet`)

// roundOrGameIndicators disqualifies a first line from being a bare bettor
// name.
var roundOrGameIndicators = regexp.MustCompile(`(?i)rodada|jornada|round|\bjogo\b|\bgame\b|\d+\s*[x\-:]\s*\d+`)

// extraBetPrefix captures ("<n>", rest) from "Game 5: ..." / "Jogo 5: ...".
var extraBetPrefix = regexp.MustCompile(`(?i)^\s*(?:jogo|game)\s*(\d+)\s*:\s*(.+)$`)

// extraSectionStart marks the beginning of an extra-bets sub-section.
var extraSectionStart = regexp.MustCompile(`(?i)aposta\s+extra|apostas\s+extras|extra\s+bets?|^\s*extra\s*:`)

const (
	minRound = 1
	maxRound = 50

	// MinGoals and MaxGoals bound a plausible per-team goal count; score
	// lines outside the range are discarded, not errors.
	MinGoals = 0
	MaxGoals = 20
)
