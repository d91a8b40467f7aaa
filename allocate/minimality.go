package allocate

import (
	"fmt"

	"github.com/katalvlaran/fairdiv/division"
)

// MinimalityMap reports, per agent per item, whether the item appears in
// at least one of that agent's ranked bundles. The key set for each agent
// is the union of items over all of that agent's bundles, so every entry
// is true by construction: this is a membership summary, not a
// non-trivial minimality proof. Downstream consumers rely on the all-true
// outcome, so the construction is kept as-is.
//
// Complexity: O(A · R).
//
// Errors:
//   - division.ErrUnknownAgent — an agent has no ranking list.
func MinimalityMap(inst division.Instance) (map[division.Agent]map[division.Item]bool, error) {
	out := make(map[division.Agent]map[division.Item]bool, len(inst.Agents))

	for _, agent := range inst.Agents {
		ranking, ok := inst.Rankings[agent]
		if !ok {
			return nil, fmt.Errorf("%w: agent %q has no ranking list", division.ErrUnknownAgent, agent)
		}

		marks := make(map[division.Item]bool)
		for _, bundle := range ranking {
			for _, item := range bundle {
				marks[item] = true
			}
		}
		out[agent] = marks
	}

	return out, nil
}
