package bjpeg

// Options configures Decode. The zero value is the permissive default:
// no pixel-count ceiling.
//
// A baseline decoder genuinely needs exactly one knob: a guard against
// decompression bombs, since SOF0's width/height are attacker-controlled
// 16-bit fields that can demand gigabytes of RGB output from a
// kilobyte-sized file (§7.2). Nothing else on the teacher's Options
// (auto-rotate, upsample method, RGBA vs RGB) applies to a decoder that
// only emits RGB and only does nearest-neighbor upsampling.
type Options struct {
	// MaxPixels caps width*height. Zero means unlimited.
	MaxPixels int64
}

func (o *Options) maxPixels() int64 {
	if o == nil {
		return 0
	}

	return o.MaxPixels
}
