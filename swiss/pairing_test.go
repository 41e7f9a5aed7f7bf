/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package swiss

import (
	"testing"
)

func makeField(points ...int) []*Player {
	players := make([]*Player, len(points))
	for i, pts := range points {
		p := NewPlayer(i)
		// synthesize a record consistent with the points total
		p.Wins = pts / 3
		p.Draws = pts % 3
		p.Points = pts
		players[i] = p
	}
	return players
}

func TestSwissPairer_EvenFieldNoBye(t *testing.T) {
	players := makeField(0, 0, 0, 0, 0, 0, 0, 0)
	pairs := SwissPairer{}.PairRound(players)

	if len(pairs) != 4 {
		t.Fatalf("pair count: got %v want %v", len(pairs), 4)
	}
	for _, pair := range pairs {
		if pair.Opponent == nil {
			t.Fatalf("unexpected bye in even field: %v", pair.Player)
		}
	}
}

func TestSwissPairer_OddFieldOneByeToLowest(t *testing.T) {
	players := makeField(9, 6, 6, 3, 0)
	pairs := SwissPairer{}.PairRound(players)

	if len(pairs) != 3 {
		t.Fatalf("pair count: got %v want %v", len(pairs), 3)
	}
	byes := 0
	var byePlayer *Player
	for _, pair := range pairs {
		if pair.Opponent == nil {
			byes++
			byePlayer = pair.Player
		}
	}
	if byes != 1 {
		t.Fatalf("bye count: got %v want %v", byes, 1)
	}
	if byePlayer.ID != 4 {
		t.Fatalf("bye player: got id %v want 4", byePlayer.ID)
	}
}

func TestSwissPairer_AdjacentScoresPaired(t *testing.T) {
	players := makeField(6, 6, 3, 3)
	pairs := SwissPairer{}.PairRound(players)

	// ids 0,1 share 6 points and must pair together; same for 2,3
	if pairs[0].Player.ID != 0 || pairs[0].Opponent.ID != 1 {
		t.Fatalf("top pair: got %v vs %v want 0 vs 1",
			pairs[0].Player.ID, pairs[0].Opponent.ID)
	}
	if pairs[1].Player.ID != 2 || pairs[1].Opponent.ID != 3 {
		t.Fatalf("second pair: got %v vs %v want 2 vs 3",
			pairs[1].Player.ID, pairs[1].Opponent.ID)
	}
}

func TestSwissPairer_Deterministic(t *testing.T) {
	players := makeField(3, 3, 3, 0, 0, 0)

	first := SwissPairer{}.PairRound(players)
	second := SwissPairer{}.PairRound(players)

	if len(first) != len(second) {
		t.Fatalf("pair counts differ: %v vs %v", len(first), len(second))
	}
	for i := range first {
		if first[i].Player.ID != second[i].Player.ID {
			t.Fatalf("pair %d player differs: %v vs %v", i,
				first[i].Player.ID, second[i].Player.ID)
		}
		a, b := first[i].Opponent, second[i].Opponent
		if (a == nil) != (b == nil) {
			t.Fatalf("pair %d bye mismatch", i)
		}
		if a != nil && a.ID != b.ID {
			t.Fatalf("pair %d opponent differs: %v vs %v", i, a.ID, b.ID)
		}
	}
}

func TestPointsRanker_StrictTotalOrder(t *testing.T) {
	players := makeField(6, 6, 3, 9)
	ranked := PointsRanker{}.Rank(players)

	wantIDs := []int{3, 0, 1, 2}
	for i, want := range wantIDs {
		if ranked[i].ID != want {
			t.Fatalf("rank %d: got id %v want %v", i, ranked[i].ID, want)
		}
	}
	// input order untouched
	if players[0].ID != 0 {
		t.Fatalf("input mutated: got id %v want 0", players[0].ID)
	}
}

func TestPointsRanker_OppWinPctBreaksTies(t *testing.T) {
	// Players 0 and 1 both 1-1, but player 1 faced stronger opposition.
	strong := NewPlayer(2)
	strong.AddWin(9)
	strong.AddWin(8)
	weak := NewPlayer(3)
	weak.AddLoss(9)
	weak.AddLoss(8)

	p0 := NewPlayer(0)
	p0.AddWin(3)
	p0.AddLoss(3)
	p1 := NewPlayer(1)
	p1.AddWin(2)
	p1.AddLoss(2)

	ranked := PointsRanker{}.Rank([]*Player{p0, p1, strong, weak})

	// strong is 2-0 and leads outright; p1 beats p0 on opposition strength
	if ranked[0].ID != 2 {
		t.Fatalf("leader: got id %v want 2", ranked[0].ID)
	}
	if ranked[1].ID != 1 || ranked[2].ID != 0 {
		t.Fatalf("tiebreak order: got %v,%v want 1,0",
			ranked[1].ID, ranked[2].ID)
	}
}

func TestCountPlayersAtTop(t *testing.T) {
	ranked := PointsRanker{}.Rank(makeField(6, 6, 3, 6))
	if got := CountPlayersAtTop(ranked); got != 3 {
		t.Fatalf("tied at top: got %v want %v", got, 3)
	}

	ranked = PointsRanker{}.Rank(makeField(9, 6, 3))
	if got := CountPlayersAtTop(ranked); got != 1 {
		t.Fatalf("sole leader: got %v want %v", got, 1)
	}

	if got := CountPlayersAtTop(nil); got != 0 {
		t.Fatalf("empty field: got %v want %v", got, 0)
	}
}
