package bjpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeMCUProducesComponentGrids(t *testing.T) {
	store := newTableStore()

	var quant [64]uint16
	for i := range quant {
		quant[i] = 1
	}

	store.setQuant(0, quant)

	var dcCounts [16]uint8
	dcCounts[0] = 2

	dcTable, err := buildHuffmanTable(dcCounts, []uint8{5, 0})
	require.NoError(t, err)
	*store.table(huffClassDC, 0) = *dcTable

	var acCounts [16]uint8
	acCounts[0] = 1

	acTable, err := buildHuffmanTable(acCounts, []uint8{0x00})
	require.NoError(t, err)
	*store.table(huffClassAC, 0) = *acTable

	fr := &frame{
		width: 16, height: 8,
		components: []componentSpec{
			{id: 1, h: 2, v: 1, quantID: 0, dcTabID: 0, acTabID: 0},
		},
		hMax: 2, vMax: 1,
	}

	var w testBitWriter
	dcBlockBits(t, &w, 16) // block (0,0): DC predictor 0 -> 16
	dcBlockBits(t, &w, 0)  // block (0,1): predictor stays 16

	r := newBitReader(w.bytes(), 0)

	blocks, err := decodeMCU(r, store, fr)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	grid := blocks[0]
	require.Len(t, grid, 1)    // v=1
	require.Len(t, grid[0], 2) // h=2

	// Both blocks carry an absolute DC of 16, so both come out as the
	// same uniform 2.0 spatial block (16/8, per the pure-DC IDCT identity).
	require.InDelta(t, 2.0, grid[0][0][0][0], 1e-9)
	require.InDelta(t, 2.0, grid[0][1][0][0], 1e-9)
	require.Equal(t, 16, fr.components[0].dcPred)
}

func TestDecodeMCUMissingQuantTable(t *testing.T) {
	store := newTableStore()

	fr := &frame{
		components: []componentSpec{{id: 1, h: 1, v: 1, quantID: 2}},
		hMax:       1, vMax: 1,
	}

	r := newBitReader(nil, 0)

	_, err := decodeMCU(r, store, fr)
	require.ErrorIs(t, err, ErrTableMissing)
}
