// Package visgraph turns one-dimensional time series into graphs whose
// structure encodes the series' internal visibility relationships.
//
// 🚀 What is visgraph?
//
//	A small, deterministic, thread-safe library that brings together:
//		• Visibility graphs: natural (straight line-of-sight) construction
//		• Horizontal visibility graphs: flat line-of-sight construction
//		• Directed horizontal visibility graphs: edges oriented in time
//		• A compact result-graph container with deterministic enumeration
//		• Deterministic series generators for fixtures and demos
//
// ✨ Why choose visgraph?
//
//   - Faithful semantics – periodic series map to regular graphs, random
//     series to random graphs, fractal series to scale-free networks
//   - Rock-solid guarantees – pure predicates, reproducible edge sets,
//     optional parallel construction with identical results
//   - Pure Go – no cgo, tiny dependency surface
//
// Everything is organized under three subpackages:
//
//	core/       — the result Graph: nodes keyed by series index, value
//	              attributes, directed or undirected edges
//	visibility/ — the visibility predicates and the graph builder
//	series/     — deterministic sequence generators (ramp, pulse, chirp,
//	              random walk) useful as inputs and test fixtures
//
// Quick ASCII example:
//
//	value ▲        ╷3          ╷3
//	      │  ╷2    │     ╷2    │
//	      │  │  ╷1 │     │  ╷1 │
//	      └──┴──┴──┴─────┴──┴──┴──▶ index
//	         0  1  2     3  4  5
//
//	horizontal visibility connects every consecutive pair plus the pairs
//	whose flat line-of-sight clears all intervening bars.
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/jmrozanec/visgraph
package visgraph
