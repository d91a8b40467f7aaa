package allocate_test

import (
	"testing"

	"github.com/katalvlaran/fairdiv/allocate"
	"github.com/katalvlaran/fairdiv/division"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinimalityMap_Canonical verifies the full map on the canonical
// instance: every item of every agent's ranking is marked true.
func TestMinimalityMap_Canonical(t *testing.T) {
	m, err := allocate.MinimalityMap(canonicalInstance())

	require.NoError(t, err)
	assert.Equal(t, map[division.Agent]map[division.Item]bool{
		"Alice":   {"A": true, "B": true, "C": true},
		"Bob":     {"A": true, "B": true, "C": true},
		"Charlie": {"A": true, "B": true, "C": true},
	}, m)
}

// TestMinimalityMap_KeySetIsRankingUnion verifies that each agent's key
// set is exactly the union of its bundles and that, by construction,
// every entry is true.
func TestMinimalityMap_KeySetIsRankingUnion(t *testing.T) {
	inst := division.Instance{
		Agents: []division.Agent{"P"},
		Rankings: division.Rankings{
			"P": {{"A", "B"}, {"B", "C"}},
		},
	}

	m, err := allocate.MinimalityMap(inst)

	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.Equal(t, map[division.Item]bool{"A": true, "B": true, "C": true}, m["P"])
}

// TestMinimalityMap_UnknownAgent verifies the malformed-instance error.
func TestMinimalityMap_UnknownAgent(t *testing.T) {
	inst := canonicalInstance()
	delete(inst.Rankings, "Bob")

	_, err := allocate.MinimalityMap(inst)

	assert.ErrorIs(t, err, division.ErrUnknownAgent)
}
