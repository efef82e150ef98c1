package bjpeg

import "github.com/golang/glog"

// Marker codes, the byte that follows a 0xFF marker prefix. Named exactly
// as original_source/src/jpegDecoder.h names them (SOI, APP0, DQT, ...),
// translated from C #define constants to a Go const block — the "tagged
// variant" the design notes ask for: a closed enum switched by value
// rather than a chain of magic numbers.
const (
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOF0 = 0xC0
	markerDHT  = 0xC4
	markerDQT  = 0xDB
	markerDRI  = 0xDD
	markerSOS  = 0xDA
	markerCOM  = 0xFE

	markerAPP0Lo = 0xE0
	markerAPP0Hi = 0xEF
)

func isAPPn(marker byte) bool {
	return marker >= markerAPP0Lo && marker <= markerAPP0Hi
}

// isNonBaselineSOF reports whether marker is one of the SOF variants this
// decoder rejects outright (progressive, extended sequential, lossless,
// arithmetic-coded, hierarchical, ...). SOF0 (baseline) is handled
// separately and is not in this set.
func isNonBaselineSOF(marker byte) bool {
	switch marker {
	case 0xC1, 0xC2, 0xC3, 0xC5, 0xC6, 0xC7, 0xC9, 0xCA, 0xCB, 0xCD, 0xCE, 0xCF:
		return true
	default:
		return false
	}
}

// segmentReader walks a JPEG byte stream marker by marker. It is the
// session-owned cursor the marker parser advances; DecodeContext creates
// one per call.
type segmentReader struct {
	data []byte
	pos  int
}

func (s *segmentReader) remaining() int {
	return len(s.data) - s.pos
}

func (s *segmentReader) u8(off int) (uint8, error) {
	p := s.pos + off
	if p < 0 || p >= len(s.data) {
		return 0, newErr(KindIO, s.pos, "unexpected end of stream")
	}

	return s.data[p], nil
}

func (s *segmentReader) u16be(off int) (int, error) {
	hi, err := s.u8(off)
	if err != nil {
		return 0, err
	}

	lo, err := s.u8(off + 1)
	if err != nil {
		return 0, err
	}

	return int(hi)<<8 | int(lo), nil
}

func (s *segmentReader) skip(n int) error {
	if n < 0 || s.pos+n > len(s.data) {
		return newErr(KindMalformedStream, s.pos, "segment length overruns input")
	}

	s.pos += n

	return nil
}

// segmentLength reads the 2-byte big-endian length field at the current
// position and advances past it, returning the length of the remaining
// payload (i.e. not counting the 2 length bytes themselves).
func (s *segmentReader) segmentLength() (int, error) {
	if s.remaining() < 2 {
		return 0, newErr(KindMalformedStream, s.pos, "segment length field truncated")
	}

	n, err := s.u16be(0)
	if err != nil {
		return 0, err
	}

	if n < 2 {
		return 0, newErr(KindMalformedStream, s.pos, "segment length %d shorter than its own field", n)
	}

	if err := s.skip(2); err != nil {
		return 0, err
	}

	payload := n - 2
	if s.remaining() < payload {
		return 0, newErr(KindMalformedStream, s.pos, "segment length %d overruns input", n)
	}

	return payload, nil
}

// skipSegment consumes a length-prefixed segment's entire payload without
// interpreting it. Used for APPn and COM per §4.1.
func (s *segmentReader) skipSegment(name string) error {
	n, err := s.segmentLength()
	if err != nil {
		return err
	}

	glog.V(2).Infof("bjpeg: skipping %s segment (%d bytes)", name, n)

	return s.skip(n)
}

// parseDQT parses a Define Quantization Table segment (§4.2): a sequence
// of (precision-nibble, id-nibble) bytes each followed by 64 coefficients,
// 8-bit or 16-bit big-endian depending on the precision nibble.
func (s *segmentReader) parseDQT(store *tableStore) error {
	n, err := s.segmentLength()
	if err != nil {
		return err
	}

	end := s.pos + n

	for s.pos < end {
		pq, err := s.u8(0)
		if err != nil {
			return err
		}

		precision := pq >> 4
		id := int(pq & 0x0F)
		if id > 3 {
			return newErr(KindMalformedStream, s.pos, "quant table id %d out of range", id)
		}

		if err := s.skip(1); err != nil {
			return err
		}

		var values [64]uint16
		for i := 0; i < 64; i++ {
			if precision == 0 {
				v, err := s.u8(0)
				if err != nil {
					return err
				}

				values[i] = uint16(v)

				if err := s.skip(1); err != nil {
					return err
				}
			} else {
				v, err := s.u16be(0)
				if err != nil {
					return err
				}

				values[i] = uint16(v)

				if err := s.skip(2); err != nil {
					return err
				}
			}
		}

		store.setQuant(id, values)
		glog.V(1).Infof("bjpeg: DQT id=%d precision=%d", id, precision)
	}

	if s.pos != end {
		return newErr(KindMalformedStream, s.pos, "DQT segment length mismatch")
	}

	return nil
}

// parseDHT parses a Define Huffman Table segment (§4.2): a sequence of
// (class-nibble, id-nibble) bytes each followed by a 16-entry length
// histogram and then the concatenated symbol list.
func (s *segmentReader) parseDHT(store *tableStore) error {
	n, err := s.segmentLength()
	if err != nil {
		return err
	}

	end := s.pos + n

	for s.pos < end {
		tc, err := s.u8(0)
		if err != nil {
			return err
		}

		class := int(tc >> 4)
		id := int(tc & 0x0F)
		if class > 1 || id > 3 {
			return newErr(KindMalformedStream, s.pos, "huffman table class/id out of range")
		}

		if err := s.skip(1); err != nil {
			return err
		}

		var counts [16]uint8
		total := 0
		for i := 0; i < 16; i++ {
			c, err := s.u8(i)
			if err != nil {
				return err
			}

			counts[i] = c
			total += int(c)
		}

		if err := s.skip(16); err != nil {
			return err
		}

		if total > 256 {
			return newErr(KindMalformedStream, s.pos, "huffman symbol count %d exceeds 256", total)
		}

		symbols := make([]uint8, total)
		for i := 0; i < total; i++ {
			b, err := s.u8(i)
			if err != nil {
				return err
			}

			symbols[i] = b
		}

		if err := s.skip(total); err != nil {
			return err
		}

		ht, err := buildHuffmanTable(counts, symbols)
		if err != nil {
			return err
		}

		*store.table(class, id) = *ht

		className := "DC"
		if class == huffClassAC {
			className = "AC"
		}

		glog.V(1).Infof("bjpeg: DHT class=%s id=%d symbols=%d", className, id, total)
	}

	if s.pos != end {
		return newErr(KindMalformedStream, s.pos, "DHT segment length mismatch")
	}

	return nil
}

// parseDRI parses a Define Restart Interval segment, recording the restart
// interval in MCUs. Restart markers themselves are not handled by the
// entropy decoder (see SPEC_FULL.md §9 open questions); a nonzero interval
// whose restart marker is actually encountered surfaces as
// MalformedStream rather than being silently resynced.
func (s *segmentReader) parseDRI() (int, error) {
	n, err := s.segmentLength()
	if err != nil {
		return 0, err
	}

	if n != 2 {
		return 0, newErr(KindMalformedStream, s.pos, "DRI segment has unexpected length %d", n)
	}

	interval, err := s.u16be(0)
	if err != nil {
		return 0, err
	}

	return interval, s.skip(2)
}
