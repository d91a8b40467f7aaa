package fairness

import (
	"fmt"

	"github.com/katalvlaran/fairdiv/division"
)

// IsParetoOptimal verifies a full allocation against single-item-move
// Pareto optimality.
//
// Algorithm Outline:
//  1. Compute each agent's baseline utility: the self-valuation of its
//     held bundle.
//  2. For every holder, for every item the holder currently has, for
//     every other agent: simulate moving exactly that item from holder to
//     recipient on a deep-copied allocation, then recompute every agent's
//     utility under the trial.
//  3. If the recipient strictly gains and no other agent falls below its
//     baseline, the allocation is dominated — return false immediately.
//  4. No improving single move found — return true.
//
// The search covers only single-item unilateral transfers; multi-item
// swaps are out of scope. Each trial uses a fresh copy of the allocation,
// so the candidate allocation is never aliased or mutated.
//
// Errors:
//   - division.ErrUnknownAgent — an agent has no allocation entry or no
//     valuation table.
//   - division.ErrMissingValuation — an item lacks a valuation entry for
//     its holder in the baseline or in a simulated allocation.
func IsParetoOptimal(alloc division.Allocation, agents []division.Agent, items division.Valuations) (bool, error) {
	baseline := make(map[division.Agent]float64, len(agents))
	for _, agent := range agents {
		bundle, ok := alloc[agent]
		if !ok {
			return false, fmt.Errorf("%w: agent %q has no allocation entry", division.ErrUnknownAgent, agent)
		}
		u, err := division.BundleValue(bundle, agent, items)
		if err != nil {
			return false, err
		}
		baseline[agent] = u
	}

	for _, holder := range agents {
		for _, item := range alloc[holder] {
			for _, recipient := range agents {
				if recipient == holder {
					continue
				}

				trial := alloc.Clone()
				trial[holder] = removeFirst(trial[holder], item)
				trial[recipient] = append(trial[recipient], item)

				dominated, err := improvesWithoutHarm(trial, baseline, recipient, agents, items)
				if err != nil {
					return false, err
				}
				if dominated {
					return false, nil
				}
			}
		}
	}

	return true, nil
}

// improvesWithoutHarm recomputes every agent's utility under trial and
// reports whether recipient strictly gains while no other agent drops
// below its baseline.
func improvesWithoutHarm(trial division.Allocation, baseline map[division.Agent]float64, recipient division.Agent, agents []division.Agent, items division.Valuations) (bool, error) {
	utilities := make(map[division.Agent]float64, len(agents))
	for _, agent := range agents {
		u, err := division.BundleValue(trial[agent], agent, items)
		if err != nil {
			return false, err
		}
		utilities[agent] = u
	}

	if utilities[recipient] <= baseline[recipient] {
		return false, nil
	}
	for _, agent := range agents {
		if agent != recipient && utilities[agent] < baseline[agent] {
			return false, nil
		}
	}

	return true, nil
}

// removeFirst returns bundle without the first occurrence of item.
func removeFirst(bundle []division.Item, item division.Item) []division.Item {
	out := make([]division.Item, 0, len(bundle))
	removed := false
	for _, it := range bundle {
		if !removed && it == item {
			removed = true
			continue
		}
		out = append(out, it)
	}

	return out
}
