package allocate

import (
	"fmt"

	"github.com/katalvlaran/fairdiv/division"
)

// MinimalBundles — greedy first-fit bundle allocator.
//
// Each agent, in instance order, receives the first of its ranked bundles
// none of whose items has been claimed by an earlier agent; the whole
// bundle is claimed atomically. An agent whose every bundle touches a
// claimed item keeps an empty bundle. Earlier claims are never revisited,
// so the result is greedy first-fit, not globally optimal.
//
// Complexity: O(A · R); A agents, R total ranking size.
//
// Errors:
//   - division.ErrUnknownAgent — an agent has no ranking list.
func MinimalBundles(inst division.Instance) (division.Allocation, error) {
	alloc := make(division.Allocation, len(inst.Agents))
	claimed := make(map[division.Item]bool)

	for _, agent := range inst.Agents {
		alloc[agent] = []division.Item{}

		ranking, ok := inst.Rankings[agent]
		if !ok {
			return nil, fmt.Errorf("%w: agent %q has no ranking list", division.ErrUnknownAgent, agent)
		}

		for _, bundle := range ranking {
			if anyClaimed(bundle, claimed) {
				continue
			}
			for _, item := range bundle {
				alloc[agent] = append(alloc[agent], item)
				claimed[item] = true
			}

			break
		}
	}

	return alloc, nil
}

// anyClaimed reports whether any item of bundle is already claimed.
func anyClaimed(bundle division.Bundle, claimed map[division.Item]bool) bool {
	for _, item := range bundle {
		if claimed[item] {
			return true
		}
	}

	return false
}
