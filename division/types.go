// Package division - shared types and sentinel errors for fairdiv.
package division

import "errors"

// Sentinel errors for instance access.
var (
	// ErrUnknownAgent indicates an agent listed in Instance.Agents has no
	// entry in the valuation table or the rankings.
	ErrUnknownAgent = errors.New("division: agent missing from instance")
	// ErrMissingValuation indicates a bundle references an item the agent
	// has no valuation for. Never silently treated as zero.
	ErrMissingValuation = errors.New("division: item missing from agent's valuation table")
)

// Agent identifies a participant receiving a share of items.
type Agent string

// Item identifies an atomic, non-divisible good. The same Item key across
// different agents' valuation tables denotes one physical unit valued
// differently by each agent.
type Item string

// Bundle is a group of items an agent ranks as equally preferred at one
// position of its ranking list.
type Bundle []Item

// Valuations maps each agent to that agent's private value per item.
// Values are non-negative; every item referenced anywhere in an instance
// must have an entry for every agent.
type Valuations map[Agent]map[Item]float64

// Rankings maps each agent to its ordered bundle list; index 0 is the
// most preferred bundle.
type Rankings map[Agent][]Bundle

// Instance is a complete fair-division problem: the agent roster, the
// valuation table, and the ranked preferences. Instances are read-only
// for every routine in this module; Agents order is the processing and
// tie-break order.
type Instance struct {
	Agents   []Agent
	Items    Valuations
	Rankings Rankings
}

// Allocation maps each agent to the items it holds. Allocators return one
// entry per instance agent (possibly an empty bundle); no item appears
// under more than one agent.
type Allocation map[Agent][]Item

// Clone returns a deep copy of the allocation. Bundles are copied, so the
// clone can be mutated freely without aliasing the original.
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	for agent, bundle := range a {
		cp := make([]Item, len(bundle))
		copy(cp, bundle)
		out[agent] = cp
	}

	return out
}
