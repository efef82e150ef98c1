package bjpeg

// quantTable holds one JPEG quantization table: 64 coefficients in the
// order they were stored in the file (zig-zag encoded), not yet reordered
// to natural 2-D layout. Reordering is the Dequant+Zig-zag stage's job,
// not the table store's.
type quantTable struct {
	values [64]uint16
	loaded bool
}

// huffKey identifies one canonical Huffman code: its bit length and its
// value, MSB first.
type huffKey struct {
	length uint8
	code   uint16
}

// huffTable maps (length, code) to an 8-bit symbol, per §4.2's construction:
// built once from a DHT segment and never mutated afterward.
type huffTable struct {
	entries map[huffKey]uint8
	loaded  bool
}

// tableStore holds every quantization and Huffman table loaded from DQT/DHT
// segments, indexed the way the bitstream indexes them: quant tables by ID
// 0..3, Huffman tables by class (dc/ac) and ID 0..3.
type tableStore struct {
	quant [4]quantTable
	dc    [4]huffTable
	ac    [4]huffTable
}

func newTableStore() *tableStore {
	return &tableStore{}
}

// setQuant replaces (or installs) the quantization table at id. Re-reading
// an id from a later DQT segment replaces the old entry, per the Data
// Model's "re-reading an ID replaces it."
func (t *tableStore) setQuant(id int, values [64]uint16) {
	t.quant[id] = quantTable{values: values, loaded: true}
}

func (t *tableStore) getQuant(id int) (*quantTable, error) {
	if id < 0 || id > 3 || !t.quant[id].loaded {
		return nil, newErr(KindTableMissing, -1, "quantization table %d not loaded", id)
	}

	return &t.quant[id], nil
}

func (t *tableStore) table(class int, id int) *huffTable {
	if class == huffClassDC {
		return &t.dc[id]
	}

	return &t.ac[id]
}

func (t *tableStore) getHuff(class int, id int) (*huffTable, error) {
	if id < 0 || id > 3 {
		return nil, newErr(KindTableMissing, -1, "huffman table id %d out of range", id)
	}

	ht := t.table(class, id)
	if !ht.loaded {
		name := "DC"
		if class == huffClassAC {
			name = "AC"
		}

		return nil, newErr(KindTableMissing, -1, "%s huffman table %d not loaded", name, id)
	}

	return ht, nil
}

const (
	huffClassDC = 0
	huffClassAC = 1
)

// buildHuffmanTable implements the canonical Huffman construction from
// §4.2: walk code lengths 1..16 with a rolling code, assigning each of the
// counts[length-1] symbols the next code at that length in order, then
// shifting the code left by one bit before moving to the next length.
//
// This is the map-keyed rendering of the algorithm; createHuffCode in
// original_source/src/jpegDecoder.cpp builds the identical (length, code)
// pairs before looking the symbol up in a std::map. The direct 16-bit
// lookup table the teacher (gen2brain/jpegn's decodeDHT) builds instead is
// a valid alternative per the design notes, but a (length, code) map keeps
// the construction legible and is in no way a hot path here — there's one
// entropy decoder call per AC/DC symbol, not per output pixel.
func buildHuffmanTable(counts [16]uint8, symbols []uint8) (*huffTable, error) {
	var total int
	for _, c := range counts {
		total += int(c)
	}

	if total != len(symbols) {
		return nil, newErr(KindMalformedStream, -1, "huffman symbol count mismatch: counts sum to %d, got %d symbols", total, len(symbols))
	}

	ht := &huffTable{entries: make(map[huffKey]uint8, total), loaded: true}

	var code uint16
	symIdx := 0

	for length := 1; length <= 16; length++ {
		n := int(counts[length-1])
		for i := 0; i < n; i++ {
			key := huffKey{length: uint8(length), code: code}
			if _, dup := ht.entries[key]; dup {
				return nil, newErr(KindMalformedStream, -1, "duplicate huffman code at length %d", length)
			}

			ht.entries[key] = symbols[symIdx]
			symIdx++
			code++
		}

		code <<= 1
	}

	return ht, nil
}

// decodeSymbol reads one Huffman symbol from r using ht, trying codes of
// increasing length (1..16) until one matches, per §4.4's InvalidHuffmanCode
// failure mode.
func (ht *huffTable) decodeSymbol(r *bitReader) (uint8, error) {
	var code uint16

	for length := 1; length <= 16; length++ {
		bit, err := r.nextBit()
		if err != nil {
			return 0, err
		}

		code = (code << 1) | uint16(bit)

		if sym, ok := ht.entries[huffKey{length: uint8(length), code: code}]; ok {
			return sym, nil
		}
	}

	return 0, newErr(KindInvalidHuffmanCode, r.pos, "no huffman code matched within 16 bits")
}
