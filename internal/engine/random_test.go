package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawDistinct_Valid(t *testing.T) {
	sources := map[string]RandomSource{
		"math":   MathSource{},
		"crypto": CryptoSource{},
		"seeded": rand.New(rand.NewSource(1)),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				drawn := drawDistinct(src, 50, 6)
				require.Len(t, drawn, 6)
				seen := map[int]bool{}
				for _, n := range drawn {
					require.True(t, n >= 1 && n <= 50, "value %d out of pool", n)
					require.False(t, seen[n], "duplicate %d", n)
					seen[n] = true
				}
			}
		})
	}
}

func TestDrawDistinct_WholePool(t *testing.T) {
	drawn := drawDistinct(rand.New(rand.NewSource(3)), 10, 10)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, drawn)
}

func TestDrawDistinct_Uniform(t *testing.T) {
	const (
		total  = 10
		count  = 3
		rounds = 60_000
	)
	src := rand.New(rand.NewSource(99))
	hits := make([]int, total+1)
	for i := 0; i < rounds; i++ {
		for _, n := range drawDistinct(src, total, count) {
			hits[n]++
		}
	}

	expected := float64(rounds*count) / total
	for n := 1; n <= total; n++ {
		assert.InEpsilon(t, expected, float64(hits[n]), 0.05, "value %d drawn %d times", n, hits[n])
	}
}

func TestDrawDistinct_ScriptedIsDeterministic(t *testing.T) {
	src := sourceDrawing(t, 50, []int{6, 5, 4, 3, 2, 1})
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, drawDistinct(src, 50, 6))
}

func TestDrawDistinct_LargePool(t *testing.T) {
	const total = 1_000_000_000
	src := rand.New(rand.NewSource(5))

	for i := 0; i < 50; i++ {
		drawn := drawDistinct(src, total, 6)
		require.Len(t, drawn, 6)
		seen := map[int]bool{}
		for _, n := range drawn {
			require.True(t, n >= 1 && n <= total, "value %d out of pool", n)
			require.False(t, seen[n], "duplicate %d", n)
			seen[n] = true
		}
	}
}

func TestDrawDistinct_RepeatedPositions(t *testing.T) {
	// Picking the last slot every time walks the pool from the top down.
	src := sourceDrawing(t, 5, []int{5, 4, 3, 2, 1})
	assert.Equal(t, []int{5, 4, 3, 2, 1}, drawDistinct(src, 5, 5))
}
