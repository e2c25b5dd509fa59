// Package report renders a standings table as plain text.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/tsoliveira/bolao/models"
)

// Render produces the full round report: header, classification table,
// rule-code legend and round summary.
func Render(rep *models.StandingsReport, rules models.RuleSet) string {
	var b strings.Builder
	writeHeader(&b, rep)
	writeTable(&b, rep.Standings)
	writeLegend(&b, rules)
	writeSummary(&b, rep)
	return b.String()
}

func writeHeader(b *strings.Builder, rep *models.StandingsReport) {
	bar := strings.Repeat("=", 80)
	fmt.Fprintln(b, bar)
	fmt.Fprintf(b, "STANDINGS REPORT - ROUND %02d\n", rep.Round)
	fmt.Fprintln(b, bar)
	fmt.Fprintf(b, "Pool: %s\n", rep.PoolName)
	if rep.Season != "" {
		fmt.Fprintf(b, "Season: %s\n", rep.Season)
	}
	fmt.Fprintf(b, "Generated: %s\n", time.Now().Format("02/01/2006 15:04"))
	if !rep.Committed {
		fmt.Fprintln(b, "Mode: PREVIEW (nothing saved)")
	}
	fmt.Fprintln(b, bar)
	fmt.Fprintln(b)
}

func writeTable(b *strings.Builder, table []models.StandingEntry) {
	if len(table) == 0 {
		fmt.Fprintln(b, "No results for this round.")
		fmt.Fprintln(b)
		return
	}

	header := "Pos Name                 Round  Total  Var | Rule codes"
	fmt.Fprintln(b, header)
	fmt.Fprintln(b, strings.Repeat("-", len(header)))

	for _, e := range table {
		variation := "="
		switch {
		case e.RankDelta > 0:
			variation = fmt.Sprintf("↑%d", e.RankDelta)
		case e.RankDelta < 0:
			variation = fmt.Sprintf("↓%d", -e.RankDelta)
		}
		fmt.Fprintf(b, "%2d. %-20s %5.1f %6.1f %4s | %s (%d games)\n",
			e.Rank, e.Participant, e.RoundPoints, e.CumulativePoints,
			variation, strings.Join(e.RuleCodes(), " "), e.GamesPlayed)
	}

	fmt.Fprintln(b, strings.Repeat("-", len(header)))
	fmt.Fprintf(b, "Participants: %d\n", len(table))
	fmt.Fprintln(b)
}

func writeLegend(b *strings.Builder, rules models.RuleSet) {
	fmt.Fprintln(b, "RULE CODES:")
	for _, name := range models.CanonicalRuleNames() {
		r, ok := rules[name]
		if !ok {
			continue
		}
		points := r.Points
		suffix := ""
		if r.BonusDivisor {
			points = r.BasePoints
			suffix = " + bonus"
		}
		fmt.Fprintf(b, "%-3s= %s (%.0f%s)\n", r.Code, r.Description, points, suffix)
	}
	fmt.Fprintln(b)
}

func writeSummary(b *strings.Builder, rep *models.StandingsReport) {
	if len(rep.Standings) == 0 {
		return
	}

	best, worst := rep.Standings[0], rep.Standings[0]
	var sum float64
	for _, e := range rep.Standings {
		if e.RoundPoints > best.RoundPoints {
			best = e
		}
		if e.RoundPoints < worst.RoundPoints {
			worst = e
		}
		sum += e.RoundPoints
	}

	fmt.Fprintf(b, "ROUND %02d SUMMARY\n", rep.Round)
	fmt.Fprintln(b, strings.Repeat("=", 30))
	fmt.Fprintf(b, "Best round score:  %.1f (%s)\n", best.RoundPoints, best.Participant)
	fmt.Fprintf(b, "Worst round score: %.1f (%s)\n", worst.RoundPoints, worst.Participant)
	fmt.Fprintf(b, "Round average:     %.1f\n", sum/float64(len(rep.Standings)))
}
