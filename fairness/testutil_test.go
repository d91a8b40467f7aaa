package fairness_test

import "github.com/katalvlaran/fairdiv/division"

// canonicalAgents, canonicalItems and canonicalRankings describe the
// three-agent instance shared by the package tests.
var (
	canonicalAgents = []division.Agent{"Alice", "Bob", "Charlie"}

	canonicalItems = division.Valuations{
		"Alice":   {"A": 40, "B": 35, "C": 25},
		"Bob":     {"A": 35, "B": 40, "C": 25},
		"Charlie": {"A": 40, "B": 25, "C": 35},
	}

	canonicalRankings = division.Rankings{
		"Alice":   {{"A"}, {"B"}, {"C"}},
		"Bob":     {{"B"}, {"A"}, {"C"}},
		"Charlie": {{"A"}, {"C"}, {"B"}},
	}
)

// canonicalAllocation returns the top-pick allocation; a fresh value per
// call so tests may mutate it freely.
func canonicalAllocation() division.Allocation {
	return division.Allocation{
		"Alice":   {"A"},
		"Bob":     {"B"},
		"Charlie": {"C"},
	}
}
