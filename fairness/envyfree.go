package fairness

import (
	"fmt"

	"github.com/katalvlaran/fairdiv/division"
)

// IsEnvyFree verifies a full allocation against the relaxed envy-freeness
// criterion.
//
// For every ordered pair (agent, other) with agent ≠ other:
//  1. Compare self-valuations: other's value of other's bundle vs agent's
//     value of agent's bundle, each under the owner's own table.
//  2. Only when other's self-valuation is strictly greater, inspect every
//     item in other's bundle that agent ranks at all: if agent ranks it
//     strictly better (lower index) than other does, envy is detected and
//     the verdict is false.
//
// No pair triggering the condition means the allocation passes. Step 1
// compares each agent's valuation of their OWN bundle; the textbook
// cross-valuation test is intentionally not performed.
//
// Errors:
//   - division.ErrUnknownAgent — an agent has no allocation entry,
//     valuation table, or ranking list.
//   - division.ErrMissingValuation — an allocated item has no valuation
//     entry for its holder.
func IsEnvyFree(alloc division.Allocation, agents []division.Agent, items division.Valuations, rankings division.Rankings) (bool, error) {
	for _, agent := range agents {
		mineBundle, ok := alloc[agent]
		if !ok {
			return false, fmt.Errorf("%w: agent %q has no allocation entry", division.ErrUnknownAgent, agent)
		}
		mine, err := division.BundleValue(mineBundle, agent, items)
		if err != nil {
			return false, err
		}

		for _, other := range agents {
			if other == agent {
				continue
			}
			otherBundle, ok := alloc[other]
			if !ok {
				return false, fmt.Errorf("%w: agent %q has no allocation entry", division.ErrUnknownAgent, other)
			}
			theirs, err := division.BundleValue(otherBundle, other, items)
			if err != nil {
				return false, err
			}
			if theirs <= mine {
				continue
			}

			myRanking, ok := rankings[agent]
			if !ok {
				return false, fmt.Errorf("%w: agent %q has no ranking list", division.ErrUnknownAgent, agent)
			}
			otherRanking, ok := rankings[other]
			if !ok {
				return false, fmt.Errorf("%w: agent %q has no ranking list", division.ErrUnknownAgent, other)
			}

			for _, item := range otherBundle {
				if !division.Ranked(myRanking, item) {
					continue
				}
				if division.RankIndex(myRanking, item) < division.RankIndex(otherRanking, item) {
					return false, nil
				}
			}
		}
	}

	return true, nil
}
