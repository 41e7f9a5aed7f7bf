/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/mikeb26/swiss-tournament-sim/swiss"
)

// DistStats summarizes an integer-valued statistic across trials.
type DistStats struct {
	Average float64
	Median  float64
	StdDev  float64

	// Distribution maps each observed value to the percent of trials it
	// occurred in.
	Distribution map[int]float64
}

// BubbleStats extends DistStats with how often any bubble existed at all.
type BubbleStats struct {
	DistStats

	// Frequency is the percent of trials with a non-empty bubble.
	Frequency float64
}

// CutAnalysis compares the no-ID baseline against one with-ID variant at a
// single cut size.
type CutAnalysis struct {
	CutSize int

	Bubble       BubbleStats
	BubbleWithID BubbleStats

	// Records maps each target record ("5-0", "4-0-1", ...) to the
	// distribution of how many players finished with that record or
	// better; zero-count trials are omitted.
	Records       map[string]map[int]float64
	RecordsWithID map[string]map[int]float64

	// Discrepancy is how many of the no-ID top-N were displaced from the
	// with-ID top-N.
	Discrepancy DistStats
}

func buildCutAnalysis(cut int, std, withID [][]*swiss.Player,
	rounds, trials int) *CutAnalysis {

	return &CutAnalysis{
		CutSize:       cut,
		Bubble:        calcBubbleStats(bubbleSizes(std, cut), trials),
		BubbleWithID:  calcBubbleStats(bubbleSizes(withID, cut), trials),
		Records:       recordDistributions(std, rounds, trials),
		RecordsWithID: recordDistributions(withID, rounds, trials),
		Discrepancy: calcDistStats(discrepancyCounts(std, withID, cut),
			trials),
	}
}

// bubbleSize counts players tied in points with the cutline holder but
// ranked below the cut.
func bubbleSize(standings []*swiss.Player, cut int) int {
	if len(standings) < cut {
		return 0
	}
	cutPoints := standings[cut-1].Points
	bubble := 0
	for _, p := range standings[cut:] {
		if p.Points != cutPoints {
			break
		}
		bubble++
	}
	return bubble
}

func bubbleSizes(standings [][]*swiss.Player, cut int) []int {
	sizes := make([]int, len(standings))
	for i, s := range standings {
		sizes[i] = bubbleSize(s, cut)
	}
	return sizes
}

func calcDistStats(values []int, trials int) DistStats {
	ds := DistStats{Distribution: make(map[int]float64)}
	if len(values) == 0 || trials == 0 {
		return ds
	}

	fs := make([]float64, len(values))
	for i, v := range values {
		fs[i] = float64(v)
	}
	ds.Average = stat.Mean(fs, nil)
	if len(fs) > 1 {
		ds.StdDev = stat.StdDev(fs, nil)
	}

	sort.Float64s(fs)
	mid := len(fs) / 2
	if len(fs)%2 == 1 {
		ds.Median = fs[mid]
	} else {
		ds.Median = (fs[mid-1] + fs[mid]) / 2
	}

	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}
	for v, c := range counts {
		ds.Distribution[v] = 100 * float64(c) / float64(trials)
	}

	return ds
}

func calcBubbleStats(sizes []int, trials int) BubbleStats {
	bs := BubbleStats{DistStats: calcDistStats(sizes, trials)}
	if len(sizes) == 0 {
		return bs
	}
	nonEmpty := 0
	for _, s := range sizes {
		if s > 0 {
			nonEmpty++
		}
	}
	bs.Frequency = 100 * float64(nonEmpty) / float64(len(sizes))
	return bs
}

// discrepancyCounts returns, per trial, how many of the no-ID top-N players
// are missing from the with-ID top-N.
func discrepancyCounts(std, withID [][]*swiss.Player, cut int) []int {
	counts := make([]int, len(std))
	for i := range std {
		idTop := make(map[int]bool, cut)
		for _, p := range topN(withID[i], cut) {
			idTop[p.ID] = true
		}
		displaced := 0
		for _, p := range topN(std[i], cut) {
			if !idTop[p.ID] {
				displaced++
			}
		}
		counts[i] = displaced
	}
	return counts
}

func topN(standings []*swiss.Player, n int) []*swiss.Player {
	if len(standings) < n {
		return standings
	}
	return standings[:n]
}

// record is a parsed "W-L" / "W-L-D" record string.
type record struct {
	wins   int
	losses int
	draws  int
}

func (r record) points() int {
	return 3*r.wins + r.draws
}

func parseRecord(s string) (record, error) {
	parts := strings.Split(s, "-")
	if len(parts) < 2 || len(parts) > 3 {
		return record{}, fmt.Errorf("malformed record %q", s)
	}
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return record{}, fmt.Errorf("malformed record %q: %w", s, err)
		}
		nums[i] = n
	}
	r := record{wins: nums[0], losses: nums[1]}
	if len(nums) == 3 {
		r.draws = nums[2]
	}
	return r, nil
}

// compareRecords orders records better-first: higher points, then fewer
// losses, then more draws. Negative means a is better than b.
func compareRecords(a, b record) int {
	if a.points() != b.points() {
		return b.points() - a.points()
	}
	if a.losses != b.losses {
		return a.losses - b.losses
	}
	return b.draws - a.draws
}

// normalizeTargetRecord maps a player's record onto the target-record space:
// at most one draw and at most two losses (two losses only without draws).
// Records outside that space never contend for a cutline slot worth
// counting.
func normalizeTargetRecord(p *swiss.Player) (record, bool) {
	r := record{wins: p.Wins, losses: p.Losses, draws: p.Draws}
	switch {
	case r.losses == 0 && r.draws == 0:
		return r, true
	case r.losses == 0 && r.draws == 1:
		return r, true
	case r.losses == 1 && r.draws == 0:
		return r, true
	case r.losses == 1 && r.draws == 1:
		return r, true
	case r.losses == 2 && r.draws == 0:
		return r, true
	}
	return record{}, false
}

// targetRecords lists the cutline-relevant records for a tournament length.
func targetRecords(rounds int) []string {
	return []string{
		fmt.Sprintf("%d-0", rounds),
		fmt.Sprintf("%d-0-1", rounds-1),
		fmt.Sprintf("%d-1", rounds-1),
		fmt.Sprintf("%d-1-1", rounds-2),
		fmt.Sprintf("%d-2", rounds-2),
	}
}

// recordDistributions returns, per target record, the distribution across
// trials of how many players finished with that record or better.
func recordDistributions(standings [][]*swiss.Player, rounds,
	trials int) map[string]map[int]float64 {

	out := make(map[string]map[int]float64)
	for _, target := range targetRecords(rounds) {
		targetRec, err := parseRecord(target)
		if err != nil {
			continue
		}

		counts := make(map[int]int)
		for _, s := range standings {
			n := 0
			for _, p := range s {
				rec, ok := normalizeTargetRecord(p)
				if ok && compareRecords(rec, targetRec) <= 0 {
					n++
				}
			}
			if n > 0 {
				counts[n]++
			}
		}
		if len(counts) == 0 {
			continue
		}

		dist := make(map[int]float64, len(counts))
		for n, c := range counts {
			dist[n] = 100 * float64(c) / float64(trials)
		}
		out[target] = dist
	}

	return out
}
