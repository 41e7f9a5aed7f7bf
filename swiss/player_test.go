/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package swiss

import (
	"math"
	"testing"
)

func TestPlayer_RecordAccumulation(t *testing.T) {
	p := NewPlayer(0)
	p.AddWin(1)
	p.AddWin(2)
	p.AddDraw(3)
	p.AddLoss(4)

	if p.Points != 7 {
		t.Fatalf("points: got %v want %v", p.Points, 7)
	}
	if p.Points != 3*p.Wins+p.Draws {
		t.Fatalf("points identity violated: points=%v wins=%v draws=%v",
			p.Points, p.Wins, p.Draws)
	}
	if p.MatchesPlayed() != 4 {
		t.Fatalf("matches played: got %v want %v", p.MatchesPlayed(), 4)
	}
	if len(p.Opponents) != 4 {
		t.Fatalf("opponents recorded: got %v want %v", len(p.Opponents), 4)
	}
}

func TestPlayer_ByeWinRecordsNoOpponent(t *testing.T) {
	p := NewPlayer(0)
	p.AddByeWin()

	if p.Points != 3 || p.Wins != 1 {
		t.Fatalf("bye win: got %v pts %v wins want 3 pts 1 win",
			p.Points, p.Wins)
	}
	if len(p.Opponents) != 0 {
		t.Fatalf("bye recorded an opponent: %v", p.Opponents)
	}
}

func TestPlayer_RecordString(t *testing.T) {
	p := NewPlayer(0)
	p.AddWin(1)
	p.AddWin(2)
	p.AddWin(3)
	p.AddLoss(4)
	if got := p.RecordString(); got != "3-1" {
		t.Fatalf("record string: got %v want 3-1", got)
	}

	p.AddDraw(5)
	if got := p.RecordString(); got != "3-1-1" {
		t.Fatalf("record string with draw: got %v want 3-1-1", got)
	}
}

func TestPlayer_CalcOppWinPct(t *testing.T) {
	// Opponent 1 is 2-0, opponent 2 is 1-0-1. Expected average of 1.0 and
	// 0.75.
	opp1 := NewPlayer(1)
	opp1.AddWin(9)
	opp1.AddWin(8)
	opp2 := NewPlayer(2)
	opp2.AddWin(7)
	opp2.AddDraw(6)

	p := NewPlayer(0)
	p.AddLoss(1)
	p.AddLoss(2)

	byID := map[int]*Player{1: opp1, 2: opp2}
	got := p.CalcOppWinPct(byID)
	want := (1.0 + 0.75) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("opp win pct: got %v want %v", got, want)
	}
	if p.OppWinPct != got {
		t.Fatalf("opp win pct not stored: got %v want %v", p.OppWinPct, got)
	}
}

func TestPlayer_CalcOppWinPct_ZeroMatchOpponent(t *testing.T) {
	// An opponent with no completed matches contributes 0 rather than
	// dividing by zero.
	opp := NewPlayer(1)
	p := NewPlayer(0)
	p.AddWin(1)

	got := p.CalcOppWinPct(map[int]*Player{1: opp})
	if got != 0.0 {
		t.Fatalf("zero-match opponent: got %v want 0", got)
	}
}

func TestPlayer_CalcOppWinPct_NoOpponents(t *testing.T) {
	p := NewPlayer(0)
	if got := p.CalcOppWinPct(map[int]*Player{}); got != 0.0 {
		t.Fatalf("no opponents: got %v want 0", got)
	}
}
