package lcd

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGB565ToRGBA expands a 16-bit pixel to 8 bits per channel.
func RGB565ToRGBA(p uint16) color.RGBA {
	r := uint8(p >> 11 & 0x1F)
	g := uint8(p >> 5 & 0x3F)
	b := uint8(p & 0x1F)
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xFF,
	}
}

// RGBA returns the frame as an image at native resolution.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	f.WriteRGBA(img.Pix)
	return img
}

// WriteRGBA writes the frame into dst as packed RGBA bytes.
// dst must hold at least Width*Height*4 bytes.
func (f *Frame) WriteRGBA(dst []byte) {
	for i, p := range f.Pix {
		c := RGB565ToRGBA(p)
		o := i * 4
		dst[o+0] = c.R
		dst[o+1] = c.G
		dst[o+2] = c.B
		dst[o+3] = c.A
	}
}

// XRGB8888 writes the frame into dst as little-endian XRGB8888.
// dst must hold at least Width*Height*4 bytes.
func (f *Frame) XRGB8888(dst []byte) {
	for i, p := range f.Pix {
		c := RGB565ToRGBA(p)
		o := i * 4
		dst[o+0] = c.B
		dst[o+1] = c.G
		dst[o+2] = c.R
		dst[o+3] = 0xFF
	}
}

// Bytes returns the frame as little-endian RGB565, Stride bytes per row.
func (f *Frame) Bytes() []byte {
	buf := make([]byte, len(f.Pix)*2)
	for i, p := range f.Pix {
		buf[i*2] = byte(p)
		buf[i*2+1] = byte(p >> 8)
	}
	return buf
}

// Scale returns src enlarged by an integer factor with nearest-neighbour
// sampling. Factors below 1 are treated as 1.
func Scale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
