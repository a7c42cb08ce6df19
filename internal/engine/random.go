package engine

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// RandomSource produces uniform integers in [0, n). Implementations shared
// between engines must be safe for concurrent use.
type RandomSource interface {
	Intn(n int) int
}

// MathSource draws from the math/rand global generator.
type MathSource struct{}

func (MathSource) Intn(n int) int {
	return rand.Intn(n)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is unusable.
		panic("engine: crypto random source failed: " + err.Error())
	}
	return int(v.Int64())
}

// drawDistinct returns count distinct values from [1, total] using a
// partial Fisher-Yates shuffle. Values come back in draw order. Only the
// positions touched by a swap are stored, so the cost is O(count) whatever
// the pool size.
func drawDistinct(src RandomSource, total, count int) []int {
	swapped := make(map[int]int, 2*count)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i + 1
	}

	drawn := make([]int, count)
	for i := 0; i < count; i++ {
		j := i + src.Intn(total-i)
		vi, vj := at(i), at(j)
		swapped[i], swapped[j] = vj, vi
		drawn[i] = vj
	}
	return drawn
}
