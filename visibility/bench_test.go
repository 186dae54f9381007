// Package visibility_test provides benchmarks for graph construction,
// sequential and parallel, on deterministic fixtures.
package visibility_test

import (
	"testing"

	"github.com/jmrozanec/visgraph/series"
	"github.com/jmrozanec/visgraph/visibility"
)

// benchSeed keeps all benchmark fixtures reproducible.
const benchSeed = 42

// BenchmarkVisibilityGraph measures the natural variant on a random walk.
func BenchmarkVisibilityGraph(b *testing.B) {
	input := series.RandomWalk(256, benchSeed)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = visibility.VisibilityGraph(input)
	}
}

// BenchmarkVisibilityGraph_Workers4 measures the same construction with a
// four-way pairwise scan.
func BenchmarkVisibilityGraph_Workers4(b *testing.B) {
	input := series.RandomWalk(256, benchSeed)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = visibility.VisibilityGraph(input, visibility.WithWorkers(4))
	}
}

// BenchmarkHorizontalVisibilityGraph measures the flat-line variant; its
// interior scans terminate earlier on rough series.
func BenchmarkHorizontalVisibilityGraph(b *testing.B) {
	input := series.RandomWalk(256, benchSeed)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = visibility.HorizontalVisibilityGraph(input)
	}
}

// BenchmarkDirectedHorizontalVisibilityGraph measures the directed variant.
func BenchmarkDirectedHorizontalVisibilityGraph(b *testing.B) {
	input := series.RandomWalk(256, benchSeed)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = visibility.DirectedHorizontalVisibilityGraph(input)
	}
}
