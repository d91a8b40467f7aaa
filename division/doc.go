// Package division defines the core data model and leaf helpers shared by
// the fairdiv allocators and fairness audits.
//
// What:
//
//   - Instance bundles agents, per-agent item valuations, and ranked bundles.
//   - Allocation maps each agent to the items it currently holds.
//   - RankIndex looks an item up in an agent's ranked bundle list.
//   - BundleValue sums an agent's own valuations over an arbitrary bundle.
//
// Conventions:
//
//   - Instances are caller-owned and read-only; allocators never mutate them.
//   - Agents order is significant: it is the processing priority and the
//     tie-break order for every routine that walks agents.
//   - An item absent from an agent's rankings is not an error; it is
//     modeled as maximally unpreferred via the Unranked sentinel rank.
//   - An item absent from an agent's valuation table IS an error:
//     valuation lookups fail loudly rather than defaulting to zero.
//
// Errors:
//
//   - ErrUnknownAgent: an agent is missing from the valuation table or
//     rankings — the instance is malformed; surfaced at first access.
//   - ErrMissingValuation: a bundle references an item the agent has no
//     value for.
//
// Complexity: RankIndex is O(bundles·bundle size); BundleValue is O(bundle size).
package division
