/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
)

// Player represents one competitor's running record within a tournament.
// Points, wins, losses, and draws only ever increase; points == 3*wins+draws
// holds at all times.
type Player struct {
	ID     int
	Points int
	Wins   int
	Losses int
	Draws  int

	// Opponents holds the ids of opponents faced so far in round order. A
	// bye does not append an opponent.
	Opponents []int

	// OppWinPct is the opponent-win-percentage tiebreaker. It is a derived
	// cache recomputed by the ranker, not authoritative state.
	OppWinPct float64
}

// NewPlayer returns a player with a zero record.
func NewPlayer(id int) *Player {
	return &Player{ID: id}
}

// AddWin records a win against oppID.
func (p *Player) AddWin(oppID int) {
	p.Points += 3
	p.Wins++
	p.Opponents = append(p.Opponents, oppID)
}

// AddByeWin awards a full win without recording an opponent.
func (p *Player) AddByeWin() {
	p.Points += 3
	p.Wins++
}

// AddLoss records a loss against oppID.
func (p *Player) AddLoss(oppID int) {
	p.Losses++
	p.Opponents = append(p.Opponents, oppID)
}

// AddDraw records a draw against oppID.
func (p *Player) AddDraw(oppID int) {
	p.Points++
	p.Draws++
	p.Opponents = append(p.Opponents, oppID)
}

// MatchesPlayed returns the number of rounds played so far, byes included.
func (p *Player) MatchesPlayed() int {
	return p.Wins + p.Losses + p.Draws
}

// RecordString renders the record as "3-1", or "3-0-1" when draws are
// present.
func (p *Player) RecordString() string {
	if p.Draws > 0 {
		return fmt.Sprintf("%d-%d-%d", p.Wins, p.Losses, p.Draws)
	}
	return fmt.Sprintf("%d-%d", p.Wins, p.Losses)
}

// CalcOppWinPct recomputes the opponent-win-percentage tiebreaker from the
// given player lookup table and stores it on the player. Each opponent
// contributes (wins + 0.5*draws) / matches; an opponent with no completed
// matches contributes 0.
func (p *Player) CalcOppWinPct(byID map[int]*Player) float64 {
	if len(p.Opponents) == 0 {
		p.OppWinPct = 0.0
		return 0.0
	}

	sum := 0.0
	for _, oppID := range p.Opponents {
		opp, ok := byID[oppID]
		if !ok {
			continue
		}
		total := opp.Wins + opp.Losses + opp.Draws
		if total > 0 {
			sum += (float64(opp.Wins) + 0.5*float64(opp.Draws)) /
				float64(total)
		}
	}

	p.OppWinPct = sum / float64(len(p.Opponents))
	return p.OppWinPct
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(%d, %s, %dpts)", p.ID, p.RecordString(),
		p.Points)
}
