package obstruction_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvpatrol/grid"
	"github.com/katalvlaran/lvpatrol/obstruction"
)

// randomLab builds an n×n lab with ~2% obstacles and the start in the middle.
func randomLab(n int) string {
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch {
			case r == n/2 && c == n/2:
				sb.WriteByte('^')
			case rng.Intn(50) == 0:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkCount measures the full candidate search on a 130×130 lab.
// Complexity: O(V × R×C)
func BenchmarkCount(b *testing.B) {
	g, err := grid.Parse(randomLab(130))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	start, _ := g.FindStart(grid.Start)
	base, err := obstruction.Baseline(g, start)
	if err != nil {
		b.Fatalf("setup Baseline failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = obstruction.Count(context.Background(), g, start, base.Visited)
	}
}
