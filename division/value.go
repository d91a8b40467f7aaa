package division

import "fmt"

// BundleValue sums agent's own valuations over every item in bundle.
//
// An empty bundle is worth exactly 0. A bundle item with no entry in the
// agent's valuation table is a configuration error and yields
// ErrMissingValuation; a missing agent table yields ErrUnknownAgent.
// Silent zero-defaulting would corrupt every downstream comparison, so
// lookups fail loudly instead.
//
// Complexity: O(len(bundle)).
func BundleValue(bundle []Item, agent Agent, items Valuations) (float64, error) {
	table, ok := items[agent]
	if !ok {
		return 0, fmt.Errorf("%w: agent %q has no valuation table", ErrUnknownAgent, agent)
	}

	var total float64
	for _, item := range bundle {
		v, ok := table[item]
		if !ok {
			return 0, fmt.Errorf("%w: agent %q, item %q", ErrMissingValuation, agent, item)
		}
		total += v
	}

	return total, nil
}
