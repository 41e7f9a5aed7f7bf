/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
)

// Pair is a single pairing for one round. Opponent == nil denotes a bye.
type Pair struct {
	Player   *Player
	Opponent *Player
}

// SwissPairer pairs the field by score group: sort by (-points, id), then
// greedily pair each not-yet-paired player with the next not-yet-paired
// player in sort order. A player reaching the end of the list unpaired
// receives the bye, so there is exactly one bye iff the field is odd and the
// bye always lands on the lowest-ranked eligible player.
type SwissPairer struct{}

func (SwissPairer) PairRound(players []*Player) []Pair {
	sorted := make([]*Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].ID < sorted[j].ID
	})

	pairs := make([]Pair, 0, (len(sorted)+1)/2)
	used := make(map[int]bool, len(sorted))
	for i, p1 := range sorted {
		if used[p1.ID] {
			continue
		}
		used[p1.ID] = true

		paired := false
		for _, p2 := range sorted[i+1:] {
			if used[p2.ID] {
				continue
			}
			used[p2.ID] = true
			pairs = append(pairs, Pair{Player: p1, Opponent: p2})
			paired = true
			break
		}
		if !paired {
			pairs = append(pairs, Pair{Player: p1})
		}
	}

	return pairs
}
