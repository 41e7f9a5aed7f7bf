/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package sim

import (
	"testing"
)

func TestProbabilitySingleLeader_Bounds(t *testing.T) {
	h := &Harness{Workers: 4}
	prob := h.ProbabilitySingleLeader(16, 4, 5, 50, 7)
	if prob < 0 || prob > 1 {
		t.Fatalf("probability out of range: %v", prob)
	}
}

func TestProbabilitySingleLeader_TwoPlayersOneRound(t *testing.T) {
	// With two players and no draw chance every tournament has a sole
	// leader after one round.
	h := &Harness{}
	prob := h.ProbabilitySingleLeader(2, 1, 0, 50, 3)
	if prob != 1.0 {
		t.Fatalf("two-player sole leader: got %v want 1", prob)
	}
}

func TestRoundsForSingleLeader_FindsTarget(t *testing.T) {
	h := &Harness{Workers: 4}
	res := h.RoundsForSingleLeader(8, 0, LeaderSearch{
		TargetProbability: 0.5,
		MaxRounds:         10,
		Simulations:       200,
		Seed:              11,
	})

	if res.Rounds < 1 || res.Rounds > 10 {
		t.Fatalf("rounds out of range: %v", res.Rounds)
	}
	if len(res.ByRound) != res.Rounds {
		t.Fatalf("trace length %v does not match rounds %v",
			len(res.ByRound), res.Rounds)
	}
	// the trace stops at the first round meeting the target
	for _, rp := range res.ByRound[:len(res.ByRound)-1] {
		if rp.Probability >= 0.5 {
			t.Fatalf("search overshot: round %v already at %v",
				rp.Rounds, rp.Probability)
		}
	}
}

func TestRoundsForSingleLeader_UnreachableTarget(t *testing.T) {
	// 100% draws can never produce a sole leader
	h := &Harness{}
	res := h.RoundsForSingleLeader(8, 100, LeaderSearch{
		TargetProbability: 0.9,
		MaxRounds:         3,
		Simulations:       100,
		Seed:              13,
	})

	if res.Rounds != 3 {
		t.Fatalf("ceiling rounds: got %v want 3", res.Rounds)
	}
	if res.ProbabilityAtRounds != 0 {
		t.Fatalf("sole leader under forced draws: got %v want 0",
			res.ProbabilityAtRounds)
	}
	if len(res.ByRound) != 3 {
		t.Fatalf("trace length: got %v want 3", len(res.ByRound))
	}
}

func TestRoundsForSingleLeader_DefaultsApplied(t *testing.T) {
	h := &Harness{}
	res := h.RoundsForSingleLeader(2, 0, LeaderSearch{
		Simulations: 50,
		Seed:        1,
	})

	// two players with no draws always yields a sole leader in round 1,
	// clearing the default 0.9 target immediately
	if res.Rounds != 1 {
		t.Fatalf("rounds with defaults: got %v want 1", res.Rounds)
	}
	if res.ProbabilityAtRounds != 1.0 {
		t.Fatalf("probability with defaults: got %v want 1",
			res.ProbabilityAtRounds)
	}
}
