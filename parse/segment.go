package parse

import (
	"strconv"
	"strings"
)

// Section is one per-round chunk of a submission. RoundHint is 0 when the
// chunk carried no recognizable round marker.
type Section struct {
	RoundHint int
	Body      string
}

// Segment splits a raw submission into per-round sections. A round marker
// line starts a section running until the next marker or end of text. Text
// before the first marker survives as a hint-less section 0 only when it
// contains a prediction-like line; with no markers at all the whole text is
// a single hint-less section.
func Segment(raw string) []Section {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	lines := strings.Split(raw, "\n")
	var sections []Section
	var body []string
	current := -1 // -1: preamble

	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		body = body[:0]
		if current == -1 {
			if hasPredictionLine(text) {
				sections = append(sections, Section{Body: text})
			}
			return
		}
		sections = append(sections, Section{RoundHint: current, Body: text})
	}

	sawMarker := false
	for _, line := range lines {
		if n, ok := markerRound(line); ok {
			flush()
			current = n
			sawMarker = true
			continue
		}
		body = append(body, line)
	}

	if !sawMarker {
		return []Section{{Body: raw}}
	}
	flush()
	return sections
}

// markerRound reports whether line is a round boundary and which round it
// names.
func markerRound(line string) (int, bool) {
	m := roundMarkerLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, false
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < minRound || n > maxRound {
		return 0, false
	}
	return n, true
}

func hasPredictionLine(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || headerIndicators.MatchString(line) {
			continue
		}
		for _, p := range scorePatterns {
			if p.MatchString(line) {
				return true
			}
		}
		// Bare "TeamA x TeamB" fixtures are captured downstream too, so
		// they qualify a preamble just like scored lines.
		if m := bareFixturePattern.FindStringSubmatch(line); m != nil {
			if !isNumeric(strings.TrimSpace(m[1])) && !isNumeric(strings.TrimSpace(m[2])) {
				return true
			}
		}
	}
	return false
}
