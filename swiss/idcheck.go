/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
)

// CutSafetyChecker decides whether a candidate pair can intentionally draw
// without either player risking a cut slot, under every adversarial
// assignment of future outcomes to the rest of the field.
//
// Final round: exact bound. After the draw each candidate sits at points+1.
// The two candidates occupy two top slots, so the first non-qualifier can at
// best be the (cut-1)th-best remaining player winning their last match, i.e.
// their points+3. Both candidates must strictly exceed that.
//
// Earlier rounds: two conditions. (a) Both candidates must be able to draw
// every remaining round and still clear the projected cutline ("draw-safe").
// The projection cannot simply add 3 points per remaining round to every
// rival: Swiss pairing forces same-score players onto each other, so per
// round only ceil(n/2) members of a score group can win. (b) The set of all
// draw-safe players must hold an even count at every score level, otherwise
// Swiss pairing eventually forces a draw-safe player onto a non-draw-safe
// opponent and the draw-out assumption collapses.
type CutSafetyChecker struct{}

func (c CutSafetyChecker) SafeForCut(player, opponent *Player, all []*Player,
	cutSize, currentRound, totalRounds int) bool {

	if cutSize < 2 {
		return false
	}

	others := make([]*Player, 0, len(all))
	for _, p := range all {
		if p.ID == player.ID || p.ID == opponent.ID {
			continue
		}
		others = append(others, p)
	}
	if len(others) < cutSize {
		// the whole field fits in the cut
		return true
	}

	roundsRemaining := totalRounds - currentRound
	if roundsRemaining == 0 {
		sort.Slice(others, func(i, j int) bool {
			if others[i].Points != others[j].Points {
				return others[i].Points > others[j].Points
			}
			return others[i].ID < others[j].ID
		})
		maxRival := others[cutSize-2].Points + 3
		return player.Points+1 > maxRival && opponent.Points+1 > maxRival
	}

	return c.canDrawOut(player, opponent, all, others, cutSize,
		roundsRemaining)
}

// canDrawOut implements the earlier-round branch: both candidates draw-safe
// against the projected cutline, and the draw-safe set closed under Swiss
// pairing.
func (CutSafetyChecker) canDrawOut(player, opponent *Player,
	all, others []*Player, cutSize, roundsRemaining int) bool {

	otherScores := make([]int, len(others))
	for i, p := range others {
		otherScores[i] = p.Points
	}
	bound := projectCutRival(otherScores, roundsRemaining, cutSize)
	if bound < 0 {
		return true
	}

	drawSafe := func(p *Player) bool {
		return p.Points+roundsRemaining > bound
	}
	if !drawSafe(player) || !drawSafe(opponent) {
		return false
	}

	// Parity is evaluated over the entire field, candidates included; the
	// pair may itself land on a shared score level.
	safeAtScore := make(map[int]int)
	for _, p := range all {
		if drawSafe(p) {
			safeAtScore[p.Points]++
		}
	}
	for _, count := range safeAtScore {
		if count%2 != 0 {
			return false
		}
	}

	return true
}

// projectCutRival advances the given scores through rounds of
// Swiss-constrained play and returns the projected (cut-1)th-highest score:
// the best score the first non-qualifier slot can reach. Each round,
// ceil(n/2) members of every score group advance by 3 and the rest stay put,
// re-grouping between rounds. Returns -1 when too few scores exist to occupy
// the rival slot.
func projectCutRival(scores []int, rounds, cutSize int) int {
	if len(scores) < cutSize-1 {
		return -1
	}

	current := scores
	for r := 0; r < rounds; r++ {
		groups := make(map[int]int)
		for _, s := range current {
			groups[s]++
		}
		levels := make([]int, 0, len(groups))
		for s := range groups {
			levels = append(levels, s)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(levels)))

		next := make([]int, 0, len(current))
		for _, s := range levels {
			count := groups[s]
			winners := (count + 1) / 2
			for i := 0; i < winners; i++ {
				next = append(next, s+3)
			}
			for i := winners; i < count; i++ {
				next = append(next, s)
			}
		}
		current = next
	}

	sorted := make([]int, len(current))
	copy(sorted, current)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	return sorted[cutSize-2]
}
