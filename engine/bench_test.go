package engine_test

import (
	"testing"

	"github.com/katalvlaran/polycube/engine"
)

// BenchmarkStep_ToGeneration6 measures the cost of advancing from the seed
// through generation 6 (166 Shapes), single-threaded.
func BenchmarkStep_ToGeneration6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := engine.New()
		for n := 1; n < 6; n++ {
			e.Step()
		}
	}
}

// BenchmarkStepParallel_ToGeneration6 is BenchmarkStep_ToGeneration6's
// 4-worker counterpart.
func BenchmarkStepParallel_ToGeneration6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := engine.New()
		for n := 1; n < 6; n++ {
			e.StepParallel(4)
		}
	}
}
