package allocate_test

import (
	"fmt"

	"github.com/katalvlaran/fairdiv/division"
)

// canonicalInstance returns the three-agent, three-item instance used
// throughout the documentation: every ranking is a strict total order of
// singleton bundles.
func canonicalInstance() division.Instance {
	return division.Instance{
		Agents: []division.Agent{"Alice", "Bob", "Charlie"},
		Items: division.Valuations{
			"Alice":   {"A": 40, "B": 35, "C": 25},
			"Bob":     {"A": 35, "B": 40, "C": 25},
			"Charlie": {"A": 40, "B": 25, "C": 35},
		},
		Rankings: division.Rankings{
			"Alice":   {{"A"}, {"B"}, {"C"}},
			"Bob":     {{"B"}, {"A"}, {"C"}},
			"Charlie": {{"A"}, {"C"}, {"B"}},
		},
	}
}

// syntheticInstance builds an n-agent, n-item instance with rotated
// singleton rankings, used by benchmarks.
func syntheticInstance(n int) division.Instance {
	agents := make([]division.Agent, n)
	items := make(division.Valuations, n)
	rankings := make(division.Rankings, n)

	names := make([]division.Item, n)
	for i := 0; i < n; i++ {
		names[i] = division.Item(fmt.Sprintf("I%03d", i))
	}

	for i := 0; i < n; i++ {
		agent := division.Agent(fmt.Sprintf("A%03d", i))
		agents[i] = agent

		table := make(map[division.Item]float64, n)
		ranking := make([]division.Bundle, n)
		for j := 0; j < n; j++ {
			item := names[(i+j)%n] // rotate preferences per agent
			table[item] = float64(n - j)
			ranking[j] = division.Bundle{item}
		}
		items[agent] = table
		rankings[agent] = ranking
	}

	return division.Instance{Agents: agents, Items: items, Rankings: rankings}
}
