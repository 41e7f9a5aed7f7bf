/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swiss-tournament-sim/internal"
	"github.com/mikeb26/swiss-tournament-sim/swiss"
)

// Harness runs batches of independent tournament trials and aggregates
// statistics across them. Trials are embarrassingly parallel; each one owns
// its rng and draw cache, seeded from the batch seed plus the trial index so
// results are reproducible at any worker count.
type Harness struct {
	// Logger, when set, receives run logs. Nil is fine.
	Logger *logrus.Logger

	// Workers bounds how many trials run concurrently; <= 0 runs serially.
	Workers int
}

// BatchOptions configures a batch of single-variant trials. Out-of-range
// values are clamped before use.
type BatchOptions struct {
	Players          int
	Rounds           int
	DrawChance       float64
	Simulations      int
	AllowIntentional bool
	CutSize          int

	// Seed 0 selects a time-based seed.
	Seed int64

	SaveRoundResults bool
}

// Params echoes the clamped inputs a run actually used.
type Params struct {
	Players     int
	Rounds      int
	DrawChance  float64
	Simulations int
}

func (h *Harness) workers() int {
	if h.Workers > 0 {
		return h.Workers
	}
	return 1
}

func baseSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func (h *Harness) runTrials(opts BatchOptions,
	maxRounds int) []*swiss.Tournament {

	players := internal.ClampInt(opts.Players, internal.MinPlayers,
		internal.MaxPlayers)
	rounds := internal.ClampInt(opts.Rounds, internal.MinRounds, maxRounds)
	drawPct := internal.ClampFloat(opts.DrawChance, 0, 100)
	sims := internal.ClampInt(opts.Simulations, internal.MinSimulations,
		internal.MaxSimulations)
	seed := baseSeed(opts.Seed)

	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{
			"players":     players,
			"rounds":      rounds,
			"draw_chance": drawPct,
			"simulations": sims,
		}).Info("running tournament trials")
	}

	tournaments := make([]*swiss.Tournament, sims)
	g := new(errgroup.Group)
	g.SetLimit(h.workers())
	for i := 0; i < sims; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			t := swiss.NewTournament(swiss.Config{
				NumPlayers:       players,
				NumRounds:        rounds,
				DrawPercent:      drawPct,
				AllowIntentional: opts.AllowIntentional,
				CutSize:          opts.CutSize,
				SaveRoundResults: opts.SaveRoundResults,
			}, rng)
			t.PlayAllRounds()
			tournaments[i] = t
			return nil
		})
	}
	// trials cannot fail; the group only bounds concurrency
	_ = g.Wait()

	return tournaments
}

// RunSimulations plays Simulations independent tournaments and returns each
// one's final ranked standings.
func (h *Harness) RunSimulations(opts BatchOptions) [][]*swiss.Player {
	tournaments := h.runTrials(opts, internal.MaxRounds)
	out := make([][]*swiss.Player, len(tournaments))
	for i, t := range tournaments {
		out[i] = t.Standings()
	}
	return out
}

// AnalyzeIntentionalDraws runs trials with intentional draws enabled and
// returns, per round, how often each intentional-draw count occurred.
func (h *Harness) AnalyzeIntentionalDraws(
	opts BatchOptions) map[int]map[int]int {

	opts.AllowIntentional = true
	if opts.CutSize == 0 {
		opts.CutSize = internal.DefaultCutSize
	}
	tournaments := h.runTrials(opts, internal.MaxRounds)

	dists := make(map[int]map[int]int)
	for _, t := range tournaments {
		for idx, count := range t.IntentionalDrawsPerRound() {
			round := idx + 1
			if dists[round] == nil {
				dists[round] = make(map[int]int)
			}
			dists[round][count]++
		}
	}

	return dists
}

// RunWithRoundSnapshots runs trials and returns, per round, the
// tied-for-first counts observed across them, along with the clamped
// parameters in effect.
func (h *Harness) RunWithRoundSnapshots(
	opts BatchOptions) (map[int][]int, Params) {

	tournaments := h.runTrials(opts, internal.MaxRounds)

	snapshots := make(map[int][]int)
	for _, t := range tournaments {
		for idx, count := range t.LeadersPerRound() {
			snapshots[idx+1] = append(snapshots[idx+1], count)
		}
	}

	cfg := tournaments[0].Config()
	params := Params{
		Players:     cfg.NumPlayers,
		Rounds:      cfg.NumRounds,
		DrawChance:  cfg.DrawPercent,
		Simulations: len(tournaments),
	}

	return snapshots, params
}

// LockstepOptions configures a lockstep run: a no-ID baseline plus optional
// ID-top4 and ID-top8 variants per trial, all three resolving each pairing
// from the same cached roll so the only difference between variants is the
// intentional-draw rule under test.
type LockstepOptions struct {
	Players     int
	Rounds      int
	DrawChance  float64
	Simulations int
	AnalyzeTop4 bool
	AnalyzeTop8 bool

	// Seed 0 selects a time-based seed.
	Seed int64
}

// LockstepReport aggregates one lockstep run.
type LockstepReport struct {
	RunID  uuid.UUID
	Params Params
	Top4   *CutAnalysis
	Top8   *CutAnalysis
}

// RunLockstep runs the lockstep comparison. At least one of AnalyzeTop4 or
// AnalyzeTop8 must be set; that is the one configuration error this package
// reports rather than clamps.
func (h *Harness) RunLockstep(opts LockstepOptions) (*LockstepReport, error) {
	if !opts.AnalyzeTop4 && !opts.AnalyzeTop8 {
		return nil, fmt.Errorf(
			"lockstep run requires at least one of top4 or top8 analysis")
	}

	players := internal.ClampInt(opts.Players, internal.MinPlayers,
		internal.MaxPlayers)
	rounds := internal.ClampInt(opts.Rounds, internal.MinRounds,
		internal.MaxLockstepRounds)
	drawPct := internal.ClampFloat(opts.DrawChance, 0, 100)
	sims := internal.ClampInt(opts.Simulations,
		internal.MinLockstepSimulations, internal.MaxSimulations)
	seed := baseSeed(opts.Seed)

	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{
			"players":     players,
			"rounds":      rounds,
			"draw_chance": drawPct,
			"simulations": sims,
			"top4":        opts.AnalyzeTop4,
			"top8":        opts.AnalyzeTop8,
		}).Info("running lockstep simulations")
	}
	start := time.Now()

	finalStd := make([][]*swiss.Player, sims)
	var finalID4, finalID8 [][]*swiss.Player
	if opts.AnalyzeTop4 {
		finalID4 = make([][]*swiss.Player, sims)
	}
	if opts.AnalyzeTop8 {
		finalID8 = make([][]*swiss.Player, sims)
	}

	g := new(errgroup.Group)
	g.SetLimit(h.workers())
	for i := 0; i < sims; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			cache := swiss.NewDrawCache(rng)

			newVariant := func(allowID bool, cut int) *swiss.Tournament {
				t := swiss.NewTournament(swiss.Config{
					NumPlayers:       players,
					NumRounds:        rounds,
					DrawPercent:      drawPct,
					AllowIntentional: allowID,
					CutSize:          cut,
				}, rng)
				t.SetDrawCache(cache)
				return t
			}

			std := newVariant(false, 0)
			var t4, t8 *swiss.Tournament
			if opts.AnalyzeTop4 {
				t4 = newVariant(true, 4)
			}
			if opts.AnalyzeTop8 {
				t8 = newVariant(true, 8)
			}

			for r := 0; r < rounds; r++ {
				// fresh rolls each round; the standard variant populates
				// the cache first and the ID variants reuse its rolls
				cache.Clear()
				std.PlayRound()
				if t4 != nil {
					t4.PlayRound()
				}
				if t8 != nil {
					t8.PlayRound()
				}
			}

			finalStd[i] = std.Standings()
			if t4 != nil {
				finalID4[i] = t4.Standings()
			}
			if t8 != nil {
				finalID8[i] = t8.Standings()
			}
			return nil
		})
	}
	_ = g.Wait()

	report := &LockstepReport{
		RunID: uuid.New(),
		Params: Params{
			Players:     players,
			Rounds:      rounds,
			DrawChance:  drawPct,
			Simulations: sims,
		},
	}
	if opts.AnalyzeTop4 {
		report.Top4 = buildCutAnalysis(4, finalStd, finalID4, rounds, sims)
	}
	if opts.AnalyzeTop8 {
		report.Top8 = buildCutAnalysis(8, finalStd, finalID8, rounds, sims)
	}

	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{
			"run_id":       report.RunID,
			"simulations":  sims,
			"elapsed_time": time.Since(start),
		}).Info("lockstep simulations completed")
	}

	return report, nil
}
