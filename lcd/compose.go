// Package lcd decodes the LCD controller's planar video memory into a
// host-presentable RGB565 raster.
package lcd

import "github.com/user-none/estepdad/device"

const (
	Width  = device.LCDWidth
	Height = device.LCDHeight
	Stride = Width * 2 // bytes per row at 16 bits per pixel
)

// Palette maps the 2-bit color index to RGB565, lightest first.
var Palette = [4]uint16{
	0xB5B6,
	0x8410,
	0x632C,
	0x18E3,
}

// Frame is a fully composed 96x64 RGB565 raster.
type Frame struct {
	Pix [Width * Height]uint16
}

// At returns the pixel at (x, y).
func (f *Frame) At(x, y int) uint16 {
	return f.Pix[y*Width+x]
}

// ColorIndex decodes the 2-bit color index of pixel (x, y).
//
// Each page of VRAM holds eight scanlines. A column is a big-endian word
// whose high byte is the upper bit plane and low byte the lower one; bit
// n of each plane is scanline n of the page.
func ColorIndex(l *device.LCD, x, y int) uint8 {
	yo := y + int(l.StartLine)
	pg := (yo / 8) % device.LCDPages
	b := uint(yo % 8)

	addr := pg*device.PageSize + x*2
	word := uint16(l.VRAM[addr])<<8 | uint16(l.VRAM[addr+1])
	word >>= b

	return uint8((word>>8)&1)<<1 | uint8(word&1)
}

// Compose decodes every pixel of l into dst. It does not modify l.
func Compose(l *device.LCD, dst *Frame) {
	for y := 0; y < Height; y++ {
		row := dst.Pix[y*Width : (y+1)*Width]
		for x := range row {
			row[x] = Palette[ColorIndex(l, x, y)]
		}
	}
}
