// Package fairdiv is an in-memory playground for experimenting with
// combinatorial fair division: allocating indivisible items among agents
// with ranked preferences, and auditing the result.
//
// 🚀 What is fairdiv?
//
//	A small, pure-Go library that brings together:
//		• Core model: agents, items, per-agent valuations & ranked bundles
//		• Greedy allocators: proportional (envy-aware) and minimal-bundle
//		• Fairness audits: relaxed envy-freeness, single-move Pareto optimality
//		• Leaf helpers: ranking lookup, bundle valuation
//
// ✨ Why choose fairdiv?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – stable sorts and fixed iteration orders, reproducible runs
//   - Pure Go – no cgo, no hidden deps
//   - Honest heuristics – greedy allocators and relaxed audits, documented as such
//
// Everything is organized under three subpackages:
//
//	division/ — Instance, Allocation, valuations, rankings & leaf helpers
//	allocate/ — proportional & minimal-bundle allocators, minimality summary
//	fairness/ — envy-freeness and Pareto-optimality predicates
//
// Quick ASCII example:
//
//	    Alice ──────▶ A
//	    Bob ────────▶ B
//	    Charlie ────▶ C
//
//	three agents, three items, everyone receives their top-ranked pick.
//
// The allocators are greedy heuristics, not exact solvers; the audit
// predicates implement the relaxed criteria documented in their packages.
// Dive into the package docs for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/fairdiv
package fairdiv
