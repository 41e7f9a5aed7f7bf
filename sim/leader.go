/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"github.com/mikeb26/swiss-tournament-sim/internal"
	"github.com/mikeb26/swiss-tournament-sim/swiss"
)

// LeaderSearch configures RoundsForSingleLeader. Zero values select
// defaults.
type LeaderSearch struct {
	TargetProbability float64 // default 0.9
	MaxRounds         int     // default 25
	Simulations       int     // default 5000

	// Seed 0 selects a time-based seed.
	Seed int64
}

// RoundProbability is one entry of the round-by-round search trace.
type RoundProbability struct {
	Rounds      int
	Probability float64
}

// LeaderResult answers "how many rounds until a sole leader".
type LeaderResult struct {
	// Rounds is the minimum round count reaching the target probability,
	// or the search ceiling when it was never reached.
	Rounds int

	// ProbabilityAtRounds is the empirical sole-leader probability at
	// Rounds.
	ProbabilityAtRounds float64

	ByRound []RoundProbability
}

// ProbabilitySingleLeader returns the fraction of simulated tournaments that
// end with exactly one player at the top by points.
func (h *Harness) ProbabilitySingleLeader(players, rounds int,
	drawChance float64, simulations int, seed int64) float64 {

	standings := h.RunSimulations(BatchOptions{
		Players:     players,
		Rounds:      rounds,
		DrawChance:  drawChance,
		Simulations: simulations,
		Seed:        seed,
	})

	single := 0
	for _, s := range standings {
		if swiss.CountPlayersAtTop(s) == 1 {
			single++
		}
	}
	return float64(single) / float64(len(standings))
}

// RoundsForSingleLeader finds the minimum number of rounds such that at
// least the target fraction of simulated tournaments end with a sole
// leader. The search walks round counts upward and stops at the first count
// reaching the target.
func (h *Harness) RoundsForSingleLeader(players int, drawChance float64,
	search LeaderSearch) LeaderResult {

	if search.TargetProbability <= 0 {
		search.TargetProbability = internal.DefaultTargetProbability
	}
	if search.MaxRounds <= 0 {
		search.MaxRounds = internal.DefaultMaxLeaderRounds
	}
	if search.Simulations <= 0 {
		search.Simulations = internal.DefaultLeaderSimulations
	}
	players = internal.ClampInt(players, internal.MinPlayers,
		internal.MaxPlayers)
	drawChance = internal.ClampFloat(drawChance, 0, 100)
	maxRounds := internal.ClampInt(search.MaxRounds, internal.MinRounds,
		internal.MaxRounds)

	var byRound []RoundProbability
	for r := 1; r <= maxRounds; r++ {
		prob := h.ProbabilitySingleLeader(players, r, drawChance,
			search.Simulations, search.Seed)
		byRound = append(byRound, RoundProbability{
			Rounds:      r,
			Probability: prob,
		})
		if prob >= search.TargetProbability {
			return LeaderResult{
				Rounds:              r,
				ProbabilityAtRounds: prob,
				ByRound:             byRound,
			}
		}
	}

	last := 0.0
	if len(byRound) > 0 {
		last = byRound[len(byRound)-1].Probability
	}
	return LeaderResult{
		Rounds:              maxRounds,
		ProbabilityAtRounds: last,
		ByRound:             byRound,
	}
}
