package bjpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildHuffmanTableCanonicalConstruction(t *testing.T) {
	// counts: 0 codes of length 1, 2 codes of length 2, 1 code of length 3.
	var counts [16]uint8
	counts[0] = 0
	counts[1] = 2
	counts[2] = 1

	symbols := []uint8{'A', 'B', 'C'}

	ht, err := buildHuffmanTable(counts, symbols)
	require.NoError(t, err)

	require.Equal(t, uint8('A'), ht.entries[huffKey{length: 2, code: 0}])
	require.Equal(t, uint8('B'), ht.entries[huffKey{length: 2, code: 1}])
	require.Equal(t, uint8('C'), ht.entries[huffKey{length: 3, code: 4}])
	require.Len(t, ht.entries, 3)
}

func TestBuildHuffmanTableSymbolCountMismatch(t *testing.T) {
	var counts [16]uint8
	counts[0] = 2

	_, err := buildHuffmanTable(counts, []uint8{'A'})
	require.Error(t, err)

	de, ok := AsDecodeError(err)
	require.True(t, ok)
	require.Equal(t, KindMalformedStream, de.Kind)
}

func TestHuffTableDecodeSymbol(t *testing.T) {
	var counts [16]uint8
	counts[1] = 2 // two codes of length 2

	ht, err := buildHuffmanTable(counts, []uint8{'A', 'B'})
	require.NoError(t, err)

	// code "00" -> A, code "01" -> B, MSB first.
	r := newBitReader([]byte{0b00_01_0000}, 0)

	sym, err := ht.decodeSymbol(r)
	require.NoError(t, err)
	require.Equal(t, uint8('A'), sym)

	sym, err = ht.decodeSymbol(r)
	require.NoError(t, err)
	require.Equal(t, uint8('B'), sym)
}

func TestTableStoreGetMissing(t *testing.T) {
	store := newTableStore()

	_, err := store.getQuant(0)
	require.ErrorIs(t, err, ErrTableMissing)

	_, err = store.getHuff(huffClassDC, 0)
	require.ErrorIs(t, err, ErrTableMissing)
}

func TestTableStoreSetAndGetQuant(t *testing.T) {
	store := newTableStore()

	var values [64]uint16
	values[0] = 16

	store.setQuant(0, values)

	q, err := store.getQuant(0)
	require.NoError(t, err)
	require.Equal(t, uint16(16), q.values[0])
}
