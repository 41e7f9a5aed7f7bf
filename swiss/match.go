/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
)

// Result is the outcome of one pairing in one round.
type Result struct {
	Player   *Player
	Opponent *Player // nil for a bye

	Winner *Player
	Loser  *Player

	Draw        bool
	Bye         bool
	Intentional bool
}

// StandardOutcomeModel resolves pairings in the standard decision order:
//  1. a bye is an automatic win for the lone player
//  2. with intentional draws enabled and at most 2 rounds remaining, a
//     pair that the safety checker reports safe draws intentionally and the
//     random roll is skipped entirely
//  3. a roll below the draw chance is an incidental draw
//  4. the remaining probability mass splits exactly in half between the two
//     players, keeping win probability symmetric regardless of draw chance
type StandardOutcomeModel struct {
	// Checker decides intentional-draw safety; nil selects
	// CutSafetyChecker.
	Checker SafetyChecker
}

func (m StandardOutcomeModel) Simulate(player, opponent *Player,
	drawRoll, drawPct float64, rctx RoundContext) Result {

	if opponent == nil {
		return Result{Player: player, Winner: player, Bye: true}
	}

	if rctx.AllowID && rctx.TotalRounds > 0 &&
		rctx.TotalRounds-rctx.CurrentRound <= 2 &&
		len(rctx.AllPlayers) > 0 {

		checker := m.Checker
		if checker == nil {
			checker = CutSafetyChecker{}
		}
		if checker.SafeForCut(player, opponent, rctx.AllPlayers,
			rctx.CutSize, rctx.CurrentRound, rctx.TotalRounds) {
			return Result{
				Player:      player,
				Opponent:    opponent,
				Draw:        true,
				Intentional: true,
			}
		}
	}

	if drawRoll < drawPct {
		return Result{Player: player, Opponent: opponent, Draw: true}
	}

	// split the remaining mass evenly between the two players
	if drawRoll < 50+drawPct/2 {
		return Result{
			Player:   player,
			Opponent: opponent,
			Winner:   player,
			Loser:    opponent,
		}
	}
	return Result{
		Player:   player,
		Opponent: opponent,
		Winner:   opponent,
		Loser:    player,
	}
}

// Apply mutates both players' records per the result. A bye awards a full
// win but records no opponent relationship.
func (r Result) Apply() {
	switch {
	case r.Bye:
		r.Player.AddByeWin()
	case r.Draw:
		r.Player.AddDraw(r.Opponent.ID)
		r.Opponent.AddDraw(r.Player.ID)
	default:
		r.Winner.AddWin(r.Loser.ID)
		r.Loser.AddLoss(r.Winner.ID)
	}
}

func (r Result) String() string {
	if r.Bye {
		return fmt.Sprintf("Result(BYE: %v)", r.Player)
	}
	if r.Draw {
		kind := "DRAW"
		if r.Intentional {
			kind = "ID"
		}
		return fmt.Sprintf("Result(%s: %v vs %v)", kind, r.Player, r.Opponent)
	}
	return fmt.Sprintf("Result(WIN: %v def. %v)", r.Winner, r.Loser)
}
