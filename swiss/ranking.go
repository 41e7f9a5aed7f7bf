/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
)

// PointsRanker orders the field by points descending, then opponent win
// percentage descending, then id ascending. Ids are unique, so the order is
// a strict total order. OppWinPct is recomputed on every player as a side
// effect so the tiebreak always reflects current records.
type PointsRanker struct{}

func (PointsRanker) Rank(players []*Player) []*Player {
	byID := make(map[int]*Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	for _, p := range players {
		p.CalcOppWinPct(byID)
	}

	ranked := make([]*Player, len(players))
	copy(ranked, players)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.OppWinPct != b.OppWinPct {
			return a.OppWinPct > b.OppWinPct
		}
		return a.ID < b.ID
	})

	return ranked
}

// CountPlayersAtTop returns how many players are tied for first place by
// points. 1 means a sole leader.
func CountPlayersAtTop(ranked []*Player) int {
	if len(ranked) == 0 {
		return 0
	}
	top := ranked[0].Points
	count := 0
	for _, p := range ranked {
		if p.Points != top {
			break
		}
		count++
	}
	return count
}
