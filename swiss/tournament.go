/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"math/rand"

	"github.com/mikeb26/swiss-tournament-sim/internal"
)

// DrawCache stores the random roll used for each unordered pair of player
// ids. Sibling variant tournaments within one simulation trial share a cache
// so a given pairing resolves from the same roll in every variant; the first
// lookup generates and caches the value. A cache must stay private to one
// trial.
type DrawCache struct {
	rng  *rand.Rand
	vals map[[2]int]float64
}

// NewDrawCache returns an empty cache drawing from rng.
func NewDrawCache(rng *rand.Rand) *DrawCache {
	return &DrawCache{
		rng:  rng,
		vals: make(map[[2]int]float64),
	}
}

// Draw returns the cached roll in [0,100) for the pair, generating it on
// first use.
func (c *DrawCache) Draw(id1, id2 int) float64 {
	key := [2]int{id1, id2}
	if id2 < id1 {
		key = [2]int{id2, id1}
	}
	v, ok := c.vals[key]
	if !ok {
		v = c.rng.Float64() * 100
		c.vals[key] = v
	}
	return v
}

// Clear drops all cached rolls. The lockstep harness clears between rounds
// so a rematch in a later round rolls fresh.
func (c *DrawCache) Clear() {
	for k := range c.vals {
		delete(c.vals, k)
	}
}

// Config carries one tournament's parameters. Out-of-range counts are
// clamped, not rejected.
type Config struct {
	NumPlayers       int
	NumRounds        int
	DrawPercent      float64
	AllowIntentional bool
	CutSize          int

	// SaveRoundResults retains every round's full match results for later
	// study.
	SaveRoundResults bool
}

// Tournament owns one tournament's state and drives it round by round. The
// round counter runs 0..NumRounds; PlayRound is the only transition and a
// round, once played, is final.
type Tournament struct {
	cfg Config

	players []*Player
	byID    map[int]*Player

	currentRound int

	// per-round snapshots, recorded as each round completes
	leadersPerRound []int
	idsPerRound     []int
	roundResults    [][]Result

	draws *DrawCache

	pairer Pairer
	ranker Ranker
	model  OutcomeModel
}

// NewTournament builds a tournament of fresh zero-record players. The rng
// seeds the tournament's own draw cache; use SetDrawCache to share rolls
// with sibling variants instead.
func NewTournament(cfg Config, rng *rand.Rand) *Tournament {
	cfg.NumPlayers = internal.ClampInt(cfg.NumPlayers, internal.MinPlayers,
		internal.MaxPlayers)
	cfg.NumRounds = internal.ClampInt(cfg.NumRounds, internal.MinRounds,
		internal.MaxRounds)
	cfg.DrawPercent = internal.ClampFloat(cfg.DrawPercent, 0, 100)

	t := &Tournament{
		cfg:    cfg,
		byID:   make(map[int]*Player, cfg.NumPlayers),
		draws:  NewDrawCache(rng),
		pairer: SwissPairer{},
		ranker: PointsRanker{},
		model:  StandardOutcomeModel{Checker: CutSafetyChecker{}},
	}
	for i := 0; i < cfg.NumPlayers; i++ {
		p := NewPlayer(i)
		t.players = append(t.players, p)
		t.byID[i] = p
	}

	return t
}

// SetDrawCache replaces the tournament's draw cache, typically with one
// shared by sibling variant tournaments in the same trial.
func (t *Tournament) SetDrawCache(cache *DrawCache) {
	t.draws = cache
}

// SetOutcomeModel substitutes the outcome model; useful for driving a
// tournament with fixed outcomes in tests.
func (t *Tournament) SetOutcomeModel(model OutcomeModel) {
	t.model = model
}

// SetPairer substitutes the pairing engine.
func (t *Tournament) SetPairer(pairer Pairer) {
	t.pairer = pairer
}

// SetRanker substitutes the ranking engine.
func (t *Tournament) SetRanker(ranker Ranker) {
	t.ranker = ranker
}

// Config returns the clamped configuration in effect.
func (t *Tournament) Config() Config {
	return t.cfg
}

// CurrentRound returns the number of rounds completed so far.
func (t *Tournament) CurrentRound() int {
	return t.currentRound
}

// Done reports whether all rounds have been played.
func (t *Tournament) Done() bool {
	return t.currentRound >= t.cfg.NumRounds
}

// Players returns the field in id order. Callers must not mutate.
func (t *Tournament) Players() []*Player {
	return t.players
}

// PlayRound pairs the field, resolves every pairing, applies the results,
// and records the round snapshots. Returns the round's results.
func (t *Tournament) PlayRound() []Result {
	t.currentRound++

	pairs := t.pairer.PairRound(t.players)
	rctx := RoundContext{
		AllPlayers:   t.players,
		CurrentRound: t.currentRound,
		TotalRounds:  t.cfg.NumRounds,
		CutSize:      t.cfg.CutSize,
		AllowID:      t.cfg.AllowIntentional,
	}

	results := make([]Result, 0, len(pairs))
	for _, pair := range pairs {
		roll := 0.0
		if pair.Opponent != nil {
			roll = t.draws.Draw(pair.Player.ID, pair.Opponent.ID)
		}
		res := t.model.Simulate(pair.Player, pair.Opponent, roll,
			t.cfg.DrawPercent, rctx)
		res.Apply()
		results = append(results, res)
	}

	ranked := t.Standings()
	t.leadersPerRound = append(t.leadersPerRound, CountPlayersAtTop(ranked))
	t.idsPerRound = append(t.idsPerRound, CountIntentionalDraws(results))
	if t.cfg.SaveRoundResults {
		t.roundResults = append(t.roundResults, results)
	}

	return results
}

// PlayAllRounds plays every remaining round and returns the final
// standings.
func (t *Tournament) PlayAllRounds() []*Player {
	for !t.Done() {
		t.PlayRound()
	}
	return t.Standings()
}

// Standings returns the field ranked by points, opponent win percentage,
// then id.
func (t *Tournament) Standings() []*Player {
	return t.ranker.Rank(t.players)
}

// LeadersPerRound returns, per completed round, how many players were tied
// for first.
func (t *Tournament) LeadersPerRound() []int {
	return t.leadersPerRound
}

// IntentionalDrawsPerRound returns, per completed round, how many pairings
// drew intentionally.
func (t *Tournament) IntentionalDrawsPerRound() []int {
	return t.idsPerRound
}

// RoundResults returns every round's results when SaveRoundResults was set,
// nil otherwise.
func (t *Tournament) RoundResults() [][]Result {
	return t.roundResults
}

// CountIntentionalDraws counts the intentional draws in one round's results.
func CountIntentionalDraws(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Draw && r.Intentional {
			count++
		}
	}
	return count
}
