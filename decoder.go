package bjpeg

import (
	"context"
	"io"

	"github.com/golang/glog"
)

// Decode reads a baseline JFIF/JPEG image from r and returns the decoded
// RGB image. It is a convenience wrapper around DecodeContext using
// context.Background().
func Decode(r io.Reader, opts ...*Options) (*Image, error) {
	return DecodeContext(context.Background(), r, opts...)
}

// DecodeContext reads a baseline JFIF/JPEG image from r, checking ctx for
// cancellation once per MCU row (§5: "a long-running decode of a large,
// pathological image should be interruptible without per-bit overhead").
// It implements the marker dispatch loop of §4.1: SOI, then any mixture
// of APPn/COM (skipped), DQT, DHT, DRI, and exactly one SOF0 before the
// SOS that starts the entropy-coded scan; EOI ends the stream.
func DecodeContext(ctx context.Context, r io.Reader, opts ...*Options) (*Image, error) {
	var opt *Options
	if len(opts) > 0 {
		opt = opts[0]
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapIO(-1, err)
	}

	s := &segmentReader{data: data}

	if s.remaining() < 2 {
		return nil, newErr(KindMalformedStream, 0, "input too short to contain SOI")
	}

	marker, err := s.u8(0)
	if err != nil {
		return nil, err
	}

	nextMarker, err := s.u8(1)
	if err != nil {
		return nil, err
	}

	if marker != 0xFF || nextMarker != markerSOI {
		return nil, newErr(KindMalformedStream, 0, "missing SOI marker")
	}

	if err := s.skip(2); err != nil {
		return nil, err
	}

	store := newTableStore()

	var fr *frame

	restartInterval := 0

	for {
		if s.remaining() < 2 {
			return nil, newErr(KindMalformedStream, s.pos, "stream ended without EOI")
		}

		lead, err := s.u8(0)
		if err != nil {
			return nil, err
		}

		if lead != 0xFF {
			return nil, newErr(KindMalformedStream, s.pos, "expected marker prefix 0xFF, got 0x%02X", lead)
		}

		m, err := s.u8(1)
		if err != nil {
			return nil, err
		}

		if err := s.skip(2); err != nil {
			return nil, err
		}

		switch {
		case m == markerEOI:
			return nil, newErr(KindMalformedStream, s.pos, "EOI reached without a preceding SOS")

		case m == markerDQT:
			if err := s.parseDQT(store); err != nil {
				return nil, err
			}

		case m == markerDHT:
			if err := s.parseDHT(store); err != nil {
				return nil, err
			}

		case m == markerDRI:
			interval, err := s.parseDRI()
			if err != nil {
				return nil, err
			}

			restartInterval = interval

		case m == markerSOF0:
			fr, err = s.parseSOF0()
			if err != nil {
				return nil, err
			}

			if mp := opt.maxPixels(); mp > 0 && int64(fr.width)*int64(fr.height) > mp {
				return nil, newErr(KindUnsupportedFeature, s.pos, "image %dx%d exceeds MaxPixels %d", fr.width, fr.height, mp)
			}

		case isNonBaselineSOF(m):
			return nil, newErr(KindUnsupportedFeature, s.pos, "non-baseline SOF marker 0x%02X", m)

		case m == markerSOS:
			if fr == nil {
				return nil, newErr(KindMalformedStream, s.pos, "SOS before SOF0")
			}

			if err := s.parseSOS(fr); err != nil {
				return nil, err
			}

			img, err := decodeScan(ctx, s, store, fr, restartInterval)
			if err != nil {
				return nil, err
			}

			return img, nil

		case isAPPn(m):
			if err := s.skipSegment("APPn"); err != nil {
				return nil, err
			}

		case m == markerCOM:
			if err := s.skipSegment("COM"); err != nil {
				return nil, err
			}

		default:
			return nil, newErr(KindUnsupportedFeature, s.pos, "unsupported marker 0x%02X", m)
		}
	}
}

// decodeScan drives the entropy-coded segment that follows an SOS header:
// it walks the image MCU by MCU in row-major order (§4.5), reassembles
// every component's padded plane, resets DC predictors to zero (Data
// Model: "reset at SOS"), and finally upsamples+color-converts the result
// down to the frame's declared dimensions (§4.9).
func decodeScan(ctx context.Context, s *segmentReader, store *tableStore, fr *frame, restartInterval int) (*Image, error) {
	for i := range fr.components {
		fr.components[i].dcPred = 0
	}

	mcuWidth := fr.hMax * 8
	mcuHeight := fr.vMax * 8

	mcuCols := (fr.width + mcuWidth - 1) / mcuWidth
	mcuRows := (fr.height + mcuHeight - 1) / mcuHeight

	planes := make([]*plane, len(fr.components))
	for i, c := range fr.components {
		planes[i] = newPlane(mcuCols*c.h*8, mcuRows*c.v*8)
	}

	r := newBitReader(s.data, s.pos)

	mcusSinceRestart := 0

	for mcuRow := 0; mcuRow < mcuRows; mcuRow++ {
		if err := ctx.Err(); err != nil {
			return nil, wrapIO(r.pos, err)
		}

		for mcuCol := 0; mcuCol < mcuCols; mcuCol++ {
			if restartInterval > 0 && mcusSinceRestart == restartInterval {
				return nil, newErr(KindMalformedStream, r.resyncPos(), "restart marker encountered, not supported")
			}

			blocks, err := decodeMCU(r, store, fr)
			if err != nil {
				return nil, err
			}

			for ci, c := range fr.components {
				grid := blocks[ci]
				for row := range grid {
					for col := range grid[row] {
						planes[ci].putBlock(mcuCol*c.h*8+col*8, mcuRow*c.v*8+row*8, grid[row][col])
					}
				}
			}

			mcusSinceRestart++
		}
	}

	glog.V(1).Infof("bjpeg: decoded %dx%d MCUs for %dx%d image", mcuCols, mcuRows, fr.width, fr.height)

	s.pos = r.resyncPos()

	return assembleImage(fr, planes)
}
