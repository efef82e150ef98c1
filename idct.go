package bjpeg

import "math"

// cosTable precomputes cos(k*pi/16) for k = 0..199, so that the index
// expressions (2x+1)*u and (2y+1)*v used by the separable IDCT below can
// be looked up directly instead of recomputed per element. Grounded on
// original_source/src/jpegDecoder.cpp's MCU::cosVal, which builds the same
// 200-entry table the same way (the largest index it is ever queried at
// is (2*7+1)*7 = 105, but the original keeps 200 entries of headroom and
// this implementation does too).
var cosTable = func() [200]float64 {
	var t [200]float64
	for i := range t {
		t[i] = math.Cos(float64(i) * math.Pi / 16.0)
	}

	return t
}()

// idctScale returns C(0) = 1/sqrt(2) and C(k) = 1 for k != 0, per §4.8.
func idctScale(k int) float64 {
	if k == 0 {
		return 1.0 / math.Sqrt2
	}

	return 1.0
}

// idct2D performs the separable 2-D inverse DCT-II on b in place:
//
//	f(x,y) = (1/4) * sum_u sum_v C(u)C(v) F(u,v) cos((2x+1)u*pi/16) cos((2y+1)v*pi/16)
//
// computed as two 1-D passes (columns, then rows) to cut the cost from
// O(64^2) to O(2*8*64), exactly as §4.8 prescribes and as
// original_source/src/jpegDecoder.cpp's MCU::idct does (its s[j][x] pass
// over v, then its tmp[i][j] pass over u). No rounding is applied; the
// result is left real-valued for the caller (upsample+CSC) to clamp and
// cast to a byte.
func idct2D(b block) block {
	var s block

	for j := 0; j < 8; j++ {
		for x := 0; x < 8; x++ {
			var sum float64
			for v := 0; v < 8; v++ {
				sum += idctScale(v) * b[x][v] * cosTable[(2*j+1)*v]
			}

			s[j][x] = sum / 2.0
		}
	}

	var out block

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			var sum float64
			for u := 0; u < 8; u++ {
				sum += idctScale(u) * s[j][u] * cosTable[(2*i+1)*u]
			}

			out[i][j] = sum / 2.0
		}
	}

	return out
}
