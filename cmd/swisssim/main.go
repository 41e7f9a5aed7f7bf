/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/mikeb26/swiss-tournament-sim/internal"
	"github.com/mikeb26/swiss-tournament-sim/sim"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(h *sim.Harness, cfg *internal.Config, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"simulate": handleSimulate,
	"lockstep": handleLockstep,
	"leader":   handleLeader,
	"iddist":   handleIDDist,
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if os.Getenv("SWISSSIM_DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	h := &sim.Harness{
		Logger:  logger,
		Workers: workers,
	}

	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(h, cfg, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(h *sim.Harness, cfg *internal.Config, args []string) {
	usage()
}

func handleSimulate(h *sim.Harness, cfg *internal.Config, args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	players := fs.Int("players", 64, "Number of players (2-10000)")
	rounds := fs.Int("rounds", 6, "Number of rounds (1-50)")
	drawPct := fs.Float64("drawchance", internal.DefaultDrawPercent,
		"Incidental draw chance percent (0-100)")
	sims := fs.Int("sims", cfg.Simulations, "Number of simulations (1-10000)")
	seed := fs.Int64("seed", cfg.Seed, "Random seed (0 for time-based)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	snapshots, params := h.RunWithRoundSnapshots(sim.BatchOptions{
		Players:     *players,
		Rounds:      *rounds,
		DrawChance:  *drawPct,
		Simulations: *sims,
		Seed:        *seed,
	})

	fmt.Printf("%d players, %d rounds, %.1f%% draw chance, %d simulations\n\n",
		params.Players, params.Rounds, params.DrawChance, params.Simulations)

	var roundNums []int
	for r := range snapshots {
		roundNums = append(roundNums, r)
	}
	sort.Ints(roundNums)

	fmt.Printf("%-6s  %-14s  %s\n", "Round", "Avg tied at #1",
		"P(sole leader)")
	for _, r := range roundNums {
		counts := snapshots[r]
		total := 0
		sole := 0
		for _, c := range counts {
			total += c
			if c == 1 {
				sole++
			}
		}
		avg := float64(total) / float64(len(counts))
		pct := 100 * float64(sole) / float64(len(counts))
		fmt.Printf("%-6d  %-14.2f  %.1f%%\n", r, avg, pct)
	}
}

func handleLockstep(h *sim.Harness, cfg *internal.Config, args []string) {
	fs := flag.NewFlagSet("lockstep", flag.ExitOnError)
	players := fs.Int("players", 64, "Number of players (2-10000)")
	rounds := fs.Int("rounds", 6, "Number of rounds (1-20)")
	drawPct := fs.Float64("drawchance", internal.DefaultDrawPercent,
		"Incidental draw chance percent (0-100)")
	sims := fs.Int("sims", cfg.Simulations, "Number of simulations (100-10000)")
	seed := fs.Int64("seed", cfg.Seed, "Random seed (0 for time-based)")
	top4 := fs.Bool("top4", false, "Analyze a top 4 cut")
	top8 := fs.Bool("top8", true, "Analyze a top 8 cut")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	report, err := h.RunLockstep(sim.LockstepOptions{
		Players:     *players,
		Rounds:      *rounds,
		DrawChance:  *drawPct,
		Simulations: *sims,
		AnalyzeTop4: *top4,
		AnalyzeTop8: *top8,
		Seed:        *seed,
	})
	if err != nil {
		log.Fatalf("Error running lockstep simulations: %v", err)
	}

	fmt.Print(sim.BuildLockstepOutput(report))
}

func handleLeader(h *sim.Harness, cfg *internal.Config, args []string) {
	fs := flag.NewFlagSet("leader", flag.ExitOnError)
	players := fs.Int("players", 64, "Number of players (2-10000)")
	drawPct := fs.Float64("drawchance", internal.DefaultDrawPercent,
		"Incidental draw chance percent (0-100)")
	target := fs.Float64("target", internal.DefaultTargetProbability,
		"Target sole-leader probability (0-1)")
	maxRounds := fs.Int("maxrounds", internal.DefaultMaxLeaderRounds,
		"Maximum rounds to search (1-50)")
	sims := fs.Int("sims", internal.DefaultLeaderSimulations,
		"Simulations per round count (1-10000)")
	seed := fs.Int64("seed", cfg.Seed, "Random seed (0 for time-based)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	// enforce bounds
	if *target <= 0 || *target > 1 {
		*target = internal.DefaultTargetProbability
	}

	res := h.RoundsForSingleLeader(*players, *drawPct, sim.LeaderSearch{
		TargetProbability: *target,
		MaxRounds:         *maxRounds,
		Simulations:       *sims,
		Seed:              *seed,
	})

	fmt.Print(sim.BuildLeaderOutput(*players, *drawPct, *target, res))
}

func handleIDDist(h *sim.Harness, cfg *internal.Config, args []string) {
	fs := flag.NewFlagSet("iddist", flag.ExitOnError)
	players := fs.Int("players", 64, "Number of players (2-10000)")
	rounds := fs.Int("rounds", 6, "Number of rounds (1-50)")
	drawPct := fs.Float64("drawchance", internal.DefaultDrawPercent,
		"Incidental draw chance percent (0-100)")
	sims := fs.Int("sims", cfg.Simulations, "Number of simulations (1-10000)")
	cut := fs.Int("cut", internal.DefaultCutSize, "Cut size guarded by draws")
	seed := fs.Int64("seed", cfg.Seed, "Random seed (0 for time-based)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	dists := h.AnalyzeIntentionalDraws(sim.BatchOptions{
		Players:     *players,
		Rounds:      *rounds,
		DrawChance:  *drawPct,
		Simulations: *sims,
		CutSize:     *cut,
		Seed:        *seed,
	})

	clampedSims := internal.ClampInt(*sims, internal.MinSimulations,
		internal.MaxSimulations)
	fmt.Print(sim.BuildIntentionalDrawOutput(dists, clampedSims))
}
