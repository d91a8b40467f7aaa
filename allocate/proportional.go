package allocate

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fairdiv/division"
)

// Proportional — envy-aware greedy allocator.
//
// Algorithm Outline:
//  1. Start every agent with an empty bundle; each distinct item key across
//     all valuation tables contributes one available unit.
//  2. Serve agents in descending order of their total own-valuation sum
//     (willingness-to-pay over every item they value); ties keep instance
//     order (stable sort).
//  3. Each agent scans its own valued items by RankIndex ascending
//     (unranked items last, ties by deterministic base order).
//  4. The first item that still has a unit, is not globally allocated, and
//     does not trigger the envy probe against already-served agents is
//     assigned; the agent stops scanning (at most one item per agent).
//  5. An agent with no eligible item keeps an empty bundle — an ordinary
//     outcome, not an error.
//
// Guarantees: one entry per instance agent; no item allocated twice.
//
// Complexity: O(A² · I · R) worst case; A agents, I items per agent,
// R total ranking size.
//
// Errors:
//   - division.ErrUnknownAgent — an agent has no valuation table or no
//     ranking list.
func Proportional(inst division.Instance) (division.Allocation, error) {
	alloc := make(division.Allocation, len(inst.Agents))
	for _, agent := range inst.Agents {
		alloc[agent] = []division.Item{}
	}

	// One unit per distinct item key, shared system-wide: the same key in
	// several agents' tables is the same physical good.
	remaining := make(map[division.Item]int)
	for _, agent := range inst.Agents {
		table, ok := inst.Items[agent]
		if !ok {
			return nil, fmt.Errorf("%w: agent %q has no valuation table", division.ErrUnknownAgent, agent)
		}
		for item := range table {
			if _, seen := remaining[item]; !seen {
				remaining[item] = 1
			}
		}
	}
	allocated := make(map[division.Item]bool)

	order := agentsByTotalValue(inst)

	for _, agent := range order {
		ranking, ok := inst.Rankings[agent]
		if !ok {
			return nil, fmt.Errorf("%w: agent %q has no ranking list", division.ErrUnknownAgent, agent)
		}

		for _, item := range itemsByRank(inst.Items[agent], ranking) {
			if remaining[item] <= 0 || allocated[item] {
				continue
			}
			if causesEnvy(agent, item, alloc, inst.Rankings) {
				continue
			}
			alloc[agent] = append(alloc[agent], item)
			allocated[item] = true
			remaining[item]--

			break
		}
	}

	return alloc, nil
}

// agentsByTotalValue orders instance agents by descending sum of their own
// valuation table; ties preserve instance order.
func agentsByTotalValue(inst division.Instance) []division.Agent {
	order := make([]division.Agent, len(inst.Agents))
	copy(order, inst.Agents)

	totals := make(map[division.Agent]float64, len(order))
	for _, agent := range order {
		var sum float64
		for _, v := range inst.Items[agent] {
			sum += v
		}
		totals[agent] = sum
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	return order
}

// itemsByRank lists an agent's valued items ordered by RankIndex ascending
// (unranked last). Go maps carry no insertion order, so lexicographic item
// order is the deterministic base; the rank sort is stable over it.
func itemsByRank(table map[division.Item]float64, ranking []division.Bundle) []division.Item {
	items := make([]division.Item, 0, len(table))
	for item := range table {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
	sort.SliceStable(items, func(i, j int) bool {
		return division.RankIndex(ranking, items[i]) < division.RankIndex(ranking, items[j])
	})

	return items
}
