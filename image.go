package bjpeg

// Image is a decoded baseline JPEG rendered to interleaved 8-bit RGB,
// modeled on the accessor shape of stdlib's image.RGBA (§4.10: Image
// Assembly is the only supplemented data type the corpus's image
// package convention maps onto directly).
type Image struct {
	Width, Height int
	Pix           []uint8 // R,G,B triples, row-major, no padding between rows
}

func newImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

// PixOffset returns the index of the first byte of pixel (x,y) in Pix.
func (img *Image) PixOffset(x, y int) int {
	return y*img.Width*3 + x*3
}

// At returns the R, G, B components of pixel (x,y).
func (img *Image) At(x, y int) (r, g, b uint8) {
	i := img.PixOffset(x, y)

	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

func (img *Image) set(x, y int, r, g, b uint8) {
	i := img.PixOffset(x, y)
	img.Pix[i] = r
	img.Pix[i+1] = g
	img.Pix[i+2] = b
}
