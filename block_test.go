package bjpeg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigzagRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var stored [64]float64
	for i := range stored {
		stored[i] = float64(rng.Intn(2048) - 1024)
	}

	b := zigzagReorder(stored)
	back := inverseZigzagReorder(b)

	require.Equal(t, stored, back)
}

func TestZigzagIndexIsAPermutation(t *testing.T) {
	seen := make(map[int]bool, 64)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			idx := zigzagIndex[i][j]
			require.False(t, seen[idx], "index %d produced twice", idx)
			seen[idx] = true
		}
	}

	require.Len(t, seen, 64)
}
