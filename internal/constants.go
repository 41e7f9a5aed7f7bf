/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

// Input bounds. Out-of-range values are clamped rather than rejected;
// simulation is exploratory.
const (
	MinPlayers = 2
	MaxPlayers = 10000

	MinRounds = 1
	MaxRounds = 50
	// The lockstep entry point keeps a tighter round ceiling.
	MaxLockstepRounds = 20

	MinSimulations = 1
	MaxSimulations = 10000
	// Lockstep discrepancy statistics are meaningless on tiny samples.
	MinLockstepSimulations = 100
)

const (
	DefaultCutSize           = 8
	DefaultDrawPercent       = 2.0
	DefaultSimulations       = 10000
	DefaultLeaderSimulations = 5000
	DefaultTargetProbability = 0.9
	DefaultMaxLeaderRounds   = 25
)
