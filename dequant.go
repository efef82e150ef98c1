package bjpeg

// dequantize multiplies each of the 64 stored-order coefficients
// element-wise by the corresponding quantization-table entry (§4.6). Both
// operands are in the order they were read from the file; reordering to
// natural 2-D layout happens afterward, in zigzagReorder.
func dequantize(coeffs [64]int32, q *quantTable) [64]float64 {
	var out [64]float64
	for i := 0; i < 64; i++ {
		out[i] = float64(coeffs[i]) * float64(q.values[i])
	}

	return out
}

// zigzagReorder applies the standard 8x8 zig-zag permutation (§4.7),
// mapping the 64 stored-order coefficients to their natural row-major
// positions.
func zigzagReorder(stored [64]float64) block {
	var b block
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			b[i][j] = stored[zigzagIndex[i][j]]
		}
	}

	return b
}

// inverseZigzagReorder undoes zigzagReorder: given a block in natural
// order, it returns the 64 coefficients in stored (zig-zag) order. Used by
// the round-trip test in §8 ("permuting a block by zig-zag and then by
// inverse zig-zag yields the original block"); the decode pipeline itself
// never needs to re-flatten a block.
func inverseZigzagReorder(b block) [64]float64 {
	var stored [64]float64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			stored[zigzagIndex[i][j]] = b[i][j]
		}
	}

	return stored
}
