package bjpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampByte(t *testing.T) {
	require.Equal(t, uint8(0), clampByte(-50))
	require.Equal(t, uint8(255), clampByte(400))
	require.Equal(t, uint8(130), clampByte(130.4))
	require.Equal(t, uint8(131), clampByte(130.5))
}

func TestSampleComponentNearestNeighborUpsample(t *testing.T) {
	// Luma at 2x2 sampling, chroma at 1x1: a 16x16 luma image shares a
	// single 8x8 chroma plane, and every 2x2 luma neighborhood must map to
	// the same chroma sample.
	chroma := newPlane(8, 8)
	chroma.pix[0] = 7
	chroma.pix[1] = 9

	c := componentSpec{h: 1, v: 1}

	v00 := sampleComponent(chroma, &c, 2, 2, 0, 0)
	v10 := sampleComponent(chroma, &c, 2, 2, 1, 0)
	v01 := sampleComponent(chroma, &c, 2, 2, 0, 1)

	require.Equal(t, 7.0, v00)
	require.Equal(t, 7.0, v10) // x=1 still maps to chroma column 0
	require.Equal(t, 7.0, v01)

	v20 := sampleComponent(chroma, &c, 2, 2, 2, 0)
	require.Equal(t, 9.0, v20) // x=2 maps to chroma column 1
}

func TestAssembleImageGrayscale(t *testing.T) {
	fr := &frame{
		width: 2, height: 1,
		components: []componentSpec{{id: 1, h: 1, v: 1}},
		hMax:       1, vMax: 1,
	}

	y := newPlane(8, 8)
	y.pix[0] = 2  // -> 130 after +128 level shift
	y.pix[1] = -3 // -> 125

	img, err := assembleImage(fr, []*plane{y})
	require.NoError(t, err)

	r, g, b := img.At(0, 0)
	require.Equal(t, uint8(130), r)
	require.Equal(t, r, g)
	require.Equal(t, r, b)

	r, _, _ = img.At(1, 0)
	require.Equal(t, uint8(125), r)
}

func TestAssembleImageCropsPadding(t *testing.T) {
	fr := &frame{
		width: 3, height: 3,
		components: []componentSpec{{id: 1, h: 1, v: 1}},
		hMax:       1, vMax: 1,
	}

	y := newPlane(8, 8) // padded to a full 8x8 block

	img, err := assembleImage(fr, []*plane{y})
	require.NoError(t, err)
	require.Equal(t, 3, img.Width)
	require.Equal(t, 3, img.Height)
	require.Len(t, img.Pix, 3*3*3)
}
