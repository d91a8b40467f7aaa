// Package fairness audits candidate allocations against two classic
// criteria, each in a deliberately restricted form.
//
// What:
//
//   - IsEnvyFree checks a relaxed envy-freeness criterion combining
//     self-valuation comparison with rank comparison: agent a flags envy
//     toward agent b only when b's own value for b's bundle exceeds a's
//     own value for a's bundle AND b holds an item that a ranks strictly
//     better than b does. This is NOT the textbook "would a prefer b's
//     bundle under a's valuations" test; the relaxed form is the contract.
//   - IsParetoOptimal searches single-item unilateral transfers: an
//     allocation fails iff moving exactly one item from its holder to
//     another agent strictly improves the recipient without lowering
//     anyone else. Multi-item swaps and arbitrary reallocations are out
//     of scope — a documented limitation, not a bug.
//
// Both predicates are deterministic pure functions: identical inputs
// always yield identical verdicts. Simulated allocations are deep copies;
// the candidate allocation is never mutated.
//
// Complexity:
//
//   - IsEnvyFree:       O(A² · B · R); A agents, B bundle size, R ranking size.
//   - IsParetoOptimal:  O(A² · I · A·B); one full utility recomputation per trial move.
//
// Errors:
//
//   - division.ErrUnknownAgent — an agent has no allocation entry or no
//     valuation table.
//   - division.ErrMissingValuation — an allocated item has no valuation
//     entry for the agent holding it in a real or simulated allocation.
package fairness
