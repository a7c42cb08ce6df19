package engine

import (
	"slices"
	"testing"

	"lotto/internal/models"
)

// scriptedSource replays a fixed list of Intn results.
type scriptedSource struct {
	t      *testing.T
	values []int
}

func (s *scriptedSource) Intn(n int) int {
	s.t.Helper()
	if len(s.values) == 0 {
		s.t.Fatalf("scripted source exhausted (Intn(%d))", n)
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted value %d out of range for Intn(%d)", v, n)
	}
	return v
}

// sourceDrawing builds a source that makes drawDistinct over [1, total]
// produce each of the given draws in turn.
func sourceDrawing(t *testing.T, total int, draws ...[]int) *scriptedSource {
	t.Helper()
	src := &scriptedSource{t: t}
	for _, draw := range draws {
		pool := make([]int, total)
		for i := range pool {
			pool[i] = i + 1
		}
		for i, want := range draw {
			j := slices.Index(pool, want)
			if j < i {
				t.Fatalf("draw %v repeats %d", draw, want)
			}
			src.values = append(src.values, j-i)
			pool[i], pool[j] = pool[j], pool[i]
		}
	}
	return src
}

func newTestEngine(t *testing.T, cfg models.GameConfig, opts ...Option) *Engine {
	t.Helper()
	e, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e
}

func selectAll(t *testing.T, e *Engine, numbers ...int) {
	t.Helper()
	for _, n := range numbers {
		if _, _, err := e.ToggleSelection(n); err != nil {
			t.Fatalf("ToggleSelection(%d) failed: %v", n, err)
		}
	}
}
