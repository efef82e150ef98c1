package bjpeg

// block is an 8x8 matrix of real-valued coefficients: born zero, filled by
// the entropy decoder in zig-zag order, then mutated in place by dequant,
// zig-zag reorder, and the IDCT, and finally consumed by upsample+CSC.
// Kept as a fixed-size array owned by value, per the design notes — no
// heap allocation per block, same spirit as the teacher's [64]int32
// d.block field reused across decodeBlock calls.
type block [8][8]float64

// zigzagIndex is the fixed 8x8 zig-zag permutation table from §4.7: entry
// at (i,j) is the index into the stored (zig-zag-encoded) coefficient
// sequence that supplies the natural-order (i,j) cell. Identical to
// original_source/src/jpegDecoder.cpp's zigzagIndex table, and to the
// teacher's inverse table zz (which maps the other direction, natural
// storage position -> stored index, built into decodeBlock instead of
// being its own stage).
var zigzagIndex = [8][8]int{
	{0, 1, 5, 6, 14, 15, 27, 28},
	{2, 4, 7, 13, 16, 26, 29, 42},
	{3, 8, 12, 17, 25, 30, 41, 43},
	{9, 11, 18, 24, 31, 40, 44, 53},
	{10, 19, 23, 32, 39, 45, 52, 54},
	{20, 22, 33, 38, 46, 51, 55, 60},
	{21, 34, 37, 47, 50, 56, 59, 61},
	{35, 36, 48, 49, 57, 58, 62, 63},
}

// inverseZigzagIndex[k] is the natural-order flat index (row*8+col) that
// stored position k maps to. Derived once from zigzagIndex. The entropy
// decoder fills coefficients in stored/zig-zag order without it, and
// inverseZigzagReorder works from zigzagIndex directly, so nothing in the
// package reads this table.
var inverseZigzagIndex = func() [64]int {
	var inv [64]int
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			inv[zigzagIndex[i][j]] = i*8 + j
		}
	}

	return inv
}()
