// Package ppm writes decoded images in the portable pixmap (PPM) raster
// format: an ASCII header (P6, dimensions, max sample value) followed by
// raw interleaved RGB bytes. Grounded on
// original_source/src/jpegDecoder.cpp's readData, whose final block writes
// exactly this header via fprintf(fp, "P6\n%d %d\n255\n", width, height)
// before dumping the RGB buffer.
package ppm

import (
	"bufio"
	"fmt"
	"io"
)

// Write emits a binary (P6) PPM image to w. rgb must contain exactly
// width*height*3 bytes, row-major, R/G/B interleaved.
func Write(w io.Writer, width, height int, rgb []byte) error {
	if len(rgb) != width*height*3 {
		return fmt.Errorf("ppm: expected %d bytes for %dx%d RGB image, got %d", width*height*3, width, height, len(rgb))
	}

	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	if _, err := bw.Write(rgb); err != nil {
		return err
	}

	return bw.Flush()
}
