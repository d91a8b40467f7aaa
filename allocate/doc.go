// Package allocate implements fairdiv's greedy allocators: routines that
// distribute a fixed set of indivisible items among agents according to
// each agent's valuations and ranked preferences.
//
// What:
//
//   - Proportional assigns at most one item per agent, serving agents in
//     descending order of total willingness-to-pay, each agent trying its
//     own items in ranking order and skipping assignments that would make
//     an already-served agent envious (rank-based probe).
//   - MinimalBundles assigns each agent, in instance order, the first of
//     its ranked bundles whose items are all still unclaimed.
//   - MinimalityMap summarizes, per agent, which items appear in at least
//     one of that agent's ranked bundles.
//
// Why:
//
//   - Classroom & research experiments with allocation heuristics.
//   - Baselines to compare exact fair-division solvers against.
//
// Both allocators are greedy first-fit heuristics: earlier decisions are
// never revisited, and no global optimality is claimed. Their iteration
// orders (agent priority, ranking order, stable tie-breaks) are part of
// the observable contract — identical inputs always produce identical
// allocations.
//
// Complexity:
//
//   - Proportional:   O(A² · I · R) worst case (A agents, I items per
//     agent, R total ranking size; the envy probe rescans served agents).
//   - MinimalBundles: O(A · R).
//   - MinimalityMap:  O(A · R).
//
// Errors:
//
//   - division.ErrUnknownAgent: an instance agent has no valuation table
//     or no ranking list; surfaced at first access, no pre-validation pass.
//
// See example_test.go for end-to-end usage on a three-agent instance.
package allocate
