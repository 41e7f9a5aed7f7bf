/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// The four engine seams of the simulator. A Tournament accepts any
// combination of these; the zero values of the standard implementations
// (SwissPairer, PointsRanker, StandardOutcomeModel, CutSafetyChecker) are
// ready to use. Tests substitute fixed-outcome models to drive tournaments
// deterministically.

// Pairer produces the ordered pairings for one round.
type Pairer interface {
	PairRound(players []*Player) []Pair
}

// Ranker orders the field into standings.
type Ranker interface {
	Rank(players []*Player) []*Player
}

// RoundContext carries the round state an outcome model needs beyond the two
// players at the table.
type RoundContext struct {
	AllPlayers   []*Player
	CurrentRound int
	TotalRounds  int
	CutSize      int
	AllowID      bool
}

// OutcomeModel resolves a single pairing into a Result. drawRoll is a value
// in [0,100); drawPct is the incidental draw chance in percent. opponent is
// nil for a bye.
type OutcomeModel interface {
	Simulate(player, opponent *Player, drawRoll, drawPct float64,
		rctx RoundContext) Result
}

// SafetyChecker reports whether a candidate pair can intentionally draw
// without either player risking a cut slot.
type SafetyChecker interface {
	SafeForCut(player, opponent *Player, all []*Player,
		cutSize, currentRound, totalRounds int) bool
}
