/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// formatPercentAsOneIn renders a percent as an approximate "1 in N" rate,
// which reads better than raw percentages for rare events.
func formatPercentAsOneIn(pct float64) string {
	if pct <= 0 {
		return fmt.Sprintf("Never (%.1f%%)", pct)
	}
	if pct >= 100 {
		return fmt.Sprintf("Always (%.1f%%)", pct)
	}
	n := int(math.Round(100 / pct))
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("~1 in %d tournaments (%.1f%%)", n, pct)
}

func writeDistTable(sb *strings.Builder, label string, dist map[int]float64) {
	var values []int
	for v := range dist {
		values = append(values, v)
	}
	sort.Ints(values)

	type row struct{ value, rate string }
	var rows []row
	for _, v := range values {
		rows = append(rows, row{
			value: fmt.Sprintf("%d", v),
			rate:  formatPercentAsOneIn(dist[v]),
		})
	}

	maxV := len(label)
	for _, r := range rows {
		if l := len(r.value); l > maxV {
			maxV = l
		}
	}

	sb.WriteString(fmt.Sprintf("  %-*s  %s\n", maxV, label, "Frequency"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("  %-*s  %s\n", maxV, r.value, r.rate))
	}
}

func writeBubbleSection(sb *strings.Builder, title string, bs BubbleStats) {
	sb.WriteString(fmt.Sprintf("%s\n", title))
	sb.WriteString(fmt.Sprintf("  Any bubble: %s\n",
		formatPercentAsOneIn(bs.Frequency)))
	sb.WriteString(fmt.Sprintf("  Size avg %.2f, median %.1f, stddev %.2f\n",
		bs.Average, bs.Median, bs.StdDev))
	writeDistTable(sb, "Size", bs.Distribution)
	sb.WriteString("\n")
}

func writeRecordSections(sb *strings.Builder, title string,
	records map[string]map[int]float64, rounds int) {

	sb.WriteString(fmt.Sprintf("%s\n", title))
	for _, target := range targetRecords(rounds) {
		dist, ok := records[target]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf(" Players at %s or better:\n", target))
		writeDistTable(sb, "Count", dist)
	}
	sb.WriteString("\n")
}

// BuildCutAnalysisOutput formats one cut's comparison into aligned string
// output.
func BuildCutAnalysisOutput(ca *CutAnalysis, rounds int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("=== Top %d cut ===\n\n", ca.CutSize))

	writeBubbleSection(&sb, "Bubble without intentional draws:", ca.Bubble)
	writeBubbleSection(&sb, "Bubble with intentional draws:", ca.BubbleWithID)

	writeRecordSections(&sb, "Records without intentional draws:",
		ca.Records, rounds)
	writeRecordSections(&sb, "Records with intentional draws:",
		ca.RecordsWithID, rounds)

	sb.WriteString("Cut discrepancy (players displaced by intentional draws):\n")
	sb.WriteString(fmt.Sprintf("  avg %.2f, median %.1f, stddev %.2f\n",
		ca.Discrepancy.Average, ca.Discrepancy.Median, ca.Discrepancy.StdDev))
	writeDistTable(&sb, "Displaced", ca.Discrepancy.Distribution)
	sb.WriteString("\n")

	return sb.String()
}

// BuildLockstepOutput formats a full lockstep report.
func BuildLockstepOutput(rep *LockstepReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Lockstep run %s\n", rep.RunID))
	sb.WriteString(fmt.Sprintf(
		"%d players, %d rounds, %.1f%% draw chance, %d simulations\n\n",
		rep.Params.Players, rep.Params.Rounds, rep.Params.DrawChance,
		rep.Params.Simulations))

	if rep.Top4 != nil {
		sb.WriteString(BuildCutAnalysisOutput(rep.Top4, rep.Params.Rounds))
	}
	if rep.Top8 != nil {
		sb.WriteString(BuildCutAnalysisOutput(rep.Top8, rep.Params.Rounds))
	}

	return sb.String()
}

// BuildLeaderOutput formats a rounds-for-single-leader search result.
func BuildLeaderOutput(players int, drawChance float64, target float64,
	res LeaderResult) string {

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"Sole leader search: %d players, %.1f%% draw chance\n\n",
		players, drawChance))

	type row struct{ rounds, prob string }
	var rows []row
	for _, rp := range res.ByRound {
		rows = append(rows, row{
			rounds: fmt.Sprintf("%d", rp.Rounds),
			prob:   fmt.Sprintf("%.1f%%", 100*rp.Probability),
		})
	}
	maxR := len("Rounds")
	for _, r := range rows {
		if l := len(r.rounds); l > maxR {
			maxR = l
		}
	}
	sb.WriteString(fmt.Sprintf("%-*s  %s\n", maxR, "Rounds", "P(sole leader)"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %s\n", maxR, r.rounds, r.prob))
	}
	sb.WriteString("\n")

	if res.ProbabilityAtRounds >= target {
		sb.WriteString(fmt.Sprintf(
			"%d rounds reach a sole leader in %.1f%% of tournaments\n",
			res.Rounds, 100*res.ProbabilityAtRounds))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Target %.0f%% not reached within %d rounds (best %.1f%%)\n",
			100*target, res.Rounds, 100*res.ProbabilityAtRounds))
	}

	return sb.String()
}

// BuildIntentionalDrawOutput formats per-round intentional-draw count
// distributions.
func BuildIntentionalDrawOutput(dists map[int]map[int]int,
	simulations int) string {

	var sb strings.Builder
	sb.WriteString("Intentional draws per round:\n\n")

	var roundNums []int
	for r := range dists {
		roundNums = append(roundNums, r)
	}
	sort.Ints(roundNums)

	for _, r := range roundNums {
		counts := dists[r]
		pct := make(map[int]float64, len(counts))
		for n, c := range counts {
			pct[n] = 100 * float64(c) / float64(simulations)
		}
		sb.WriteString(fmt.Sprintf("Round %d\n", r))
		writeDistTable(&sb, "Draws", pct)
		sb.WriteString("\n")
	}

	return sb.String()
}
