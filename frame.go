package bjpeg

import "github.com/golang/glog"

// componentSpec describes one color component's frame-level and
// scan-level parameters, per the Data Model's ComponentSpec.
type componentSpec struct {
	id       int // 1=Y, 2=Cb, 3=Cr (or just 1 for grayscale)
	h, v     int // horizontal/vertical sampling factors, each in {1,2}
	quantID  int
	dcTabID  int // assigned at SOS
	acTabID  int // assigned at SOS
	dcPred   int // running DC predictor, reset at the start of each scan
}

// frame holds everything decoded from SOF0: image dimensions and the
// per-component specs, plus the derived sampling extremes.
type frame struct {
	width, height int
	components    []componentSpec
	hMax, vMax    int
}

// parseSOF0 parses a baseline Start Of Frame segment (§4.2): a precision
// byte (must be 8), height, width, component count, then one
// (id, sampling-nibbles, quant-id) triple per component.
func (s *segmentReader) parseSOF0() (*frame, error) {
	n, err := s.segmentLength()
	if err != nil {
		return nil, err
	}

	end := s.pos + n

	if n < 6 {
		return nil, newErr(KindMalformedStream, s.pos, "SOF0 segment too short")
	}

	precision, err := s.u8(0)
	if err != nil {
		return nil, err
	}

	if precision != 8 {
		return nil, newErr(KindUnsupportedFeature, s.pos, "sample precision %d unsupported (only 8-bit)", precision)
	}

	height, err := s.u16be(1)
	if err != nil {
		return nil, err
	}

	width, err := s.u16be(3)
	if err != nil {
		return nil, err
	}

	if width == 0 || height == 0 {
		return nil, newErr(KindMalformedStream, s.pos, "zero width or height")
	}

	nf, err := s.u8(5)
	if err != nil {
		return nil, err
	}

	switch nf {
	case 1, 3:
	default:
		return nil, newErr(KindUnsupportedFeature, s.pos, "component count %d unsupported (only 1 or 3)", nf)
	}

	if err := s.skip(6); err != nil {
		return nil, err
	}

	if n < 6+int(nf)*3 {
		return nil, newErr(KindMalformedStream, s.pos, "SOF0 segment too short for %d components", nf)
	}

	fr := &frame{width: width, height: height, components: make([]componentSpec, nf)}

	for i := 0; i < int(nf); i++ {
		id, err := s.u8(0)
		if err != nil {
			return nil, err
		}

		sampling, err := s.u8(1)
		if err != nil {
			return nil, err
		}

		qt, err := s.u8(2)
		if err != nil {
			return nil, err
		}

		if err := s.skip(3); err != nil {
			return nil, err
		}

		h := int(sampling >> 4)
		v := int(sampling & 0x0F)
		if h < 1 || h > 2 || v < 1 || v > 2 {
			return nil, newErr(KindUnsupportedFeature, s.pos, "sampling factor %dx%d unsupported", h, v)
		}

		if int(qt) > 3 {
			return nil, newErr(KindMalformedStream, s.pos, "quant table id %d out of range", qt)
		}

		fr.components[i] = componentSpec{id: int(id), h: h, v: v, quantID: int(qt)}

		if h > fr.hMax {
			fr.hMax = h
		}

		if v > fr.vMax {
			fr.vMax = v
		}
	}

	if s.pos != end {
		return nil, newErr(KindMalformedStream, s.pos, "SOF0 segment length mismatch")
	}

	glog.V(1).Infof("bjpeg: SOF0 %dx%d components=%d hMax=%d vMax=%d", width, height, nf, fr.hMax, fr.vMax)

	return fr, nil
}

// parseSOS parses a Start Of Scan header (§4.2): a component count (must
// match SOF), then per-component (selector, DC/AC table ids), then the
// three fixed spectral-selection/approximation bytes (always 0x00 0x3F
// 0x00 for baseline).
func (s *segmentReader) parseSOS(fr *frame) error {
	n, err := s.segmentLength()
	if err != nil {
		return err
	}

	end := s.pos + n

	ns, err := s.u8(0)
	if err != nil {
		return err
	}

	if int(ns) != len(fr.components) {
		return newErr(KindMalformedStream, s.pos, "SOS component count %d does not match SOF's %d", ns, len(fr.components))
	}

	if err := s.skip(1); err != nil {
		return err
	}

	for i := 0; i < int(ns); i++ {
		selector, err := s.u8(0)
		if err != nil {
			return err
		}

		tables, err := s.u8(1)
		if err != nil {
			return err
		}

		if err := s.skip(2); err != nil {
			return err
		}

		idx := -1
		for j := range fr.components {
			if fr.components[j].id == int(selector) {
				idx = j

				break
			}
		}

		if idx < 0 {
			return newErr(KindMalformedStream, s.pos, "SOS references unknown component selector %d", selector)
		}

		dcID := int(tables >> 4)
		acID := int(tables & 0x0F)
		if dcID > 3 || acID > 3 {
			return newErr(KindMalformedStream, s.pos, "huffman table selector out of range")
		}

		fr.components[idx].dcTabID = dcID
		fr.components[idx].acTabID = acID
	}

	// Spectral selection start/end and successive approximation: fixed at
	// 0x00, 0x3F, 0x00 for baseline sequential DCT.
	ss, err := s.u8(0)
	if err != nil {
		return err
	}

	se, err := s.u8(1)
	if err != nil {
		return err
	}

	ah, err := s.u8(2)
	if err != nil {
		return err
	}

	if ss != 0x00 || se != 0x3F || ah != 0x00 {
		return newErr(KindUnsupportedFeature, s.pos, "non-baseline spectral selection/approximation in SOS")
	}

	if err := s.skip(3); err != nil {
		return err
	}

	if s.pos != end {
		return newErr(KindMalformedStream, s.pos, "SOS segment length mismatch")
	}

	glog.V(1).Infof("bjpeg: SOS components=%d", ns)

	return nil
}
