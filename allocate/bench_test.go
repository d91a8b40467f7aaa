package allocate_test

import (
	"testing"

	"github.com/katalvlaran/fairdiv/allocate"
	"github.com/katalvlaran/fairdiv/division"
)

// benchmarkAllocator runs fn over a synthetic n-agent instance, resetting
// the timer after setup and failing on unexpected errors.
func benchmarkAllocator(b *testing.B, n int, fn func(division.Instance) (division.Allocation, error)) {
	inst := syntheticInstance(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := fn(inst); err != nil {
			b.Fatalf("allocator failed: %v", err)
		}
	}
}

// BenchmarkProportional_Small benchmarks the envy-aware allocator on 10 agents.
func BenchmarkProportional_Small(b *testing.B) {
	benchmarkAllocator(b, 10, allocate.Proportional)
}

// BenchmarkProportional_Medium benchmarks the envy-aware allocator on 50 agents.
func BenchmarkProportional_Medium(b *testing.B) {
	benchmarkAllocator(b, 50, allocate.Proportional)
}

// BenchmarkMinimalBundles_Small benchmarks the first-fit allocator on 10 agents.
func BenchmarkMinimalBundles_Small(b *testing.B) {
	benchmarkAllocator(b, 10, allocate.MinimalBundles)
}

// BenchmarkMinimalBundles_Medium benchmarks the first-fit allocator on 50 agents.
func BenchmarkMinimalBundles_Medium(b *testing.B) {
	benchmarkAllocator(b, 50, allocate.MinimalBundles)
}
