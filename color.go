package bjpeg

// clampByte clamps a real-valued sample to the [0,255] range and rounds
// to the nearest integer, per §4.9's "clamp, do not wrap".
func clampByte(v float64) uint8 {
	r := int(v + 0.5)

	switch {
	case r < 0:
		return 0
	case r > 255:
		return 255
	default:
		return uint8(r)
	}
}

// sampleComponent fetches the component's sample nearest to full-resolution
// pixel (x,y), nearest-neighbor upsampling a subsampled plane by scaling
// the coordinate down by the component's sampling ratio relative to the
// frame's maximum (§4.9 Upsampling: "nearest neighbor, no interpolation").
func sampleComponent(p *plane, c *componentSpec, hMax, vMax, x, y int) float64 {
	cx := x * c.h / hMax
	cy := y * c.v / vMax

	return p.at(cx, cy)
}

// assembleImage upsamples every component plane to full resolution and
// applies the YCbCr -> RGB conversion of §4.9, cropping the padded MCU
// grid down to the frame's declared width and height. A single-component
// frame is treated as grayscale per §4.11: R=G=B=Y.
func assembleImage(fr *frame, planes []*plane) (*Image, error) {
	img := newImage(fr.width, fr.height)

	grayscale := len(fr.components) == 1

	for y := 0; y < fr.height; y++ {
		for x := 0; x < fr.width; x++ {
			yVal := sampleComponent(planes[0], &fr.components[0], fr.hMax, fr.vMax, x, y) + 128

			var r, g, b uint8

			if grayscale {
				v := clampByte(yVal)
				r, g, b = v, v, v
			} else {
				cb := sampleComponent(planes[1], &fr.components[1], fr.hMax, fr.vMax, x, y)
				cr := sampleComponent(planes[2], &fr.components[2], fr.hMax, fr.vMax, x, y)

				r = clampByte(yVal + 1.402*cr)
				g = clampByte(yVal - 0.34414*cb - 0.71414*cr)
				b = clampByte(yVal + 1.772*cb)
			}

			img.set(x, y, r, g, b)
		}
	}

	return img, nil
}
