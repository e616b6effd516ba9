//go:build !libretro

package standalone

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/estepdad/lcd"
)

// ledSize is the LED indicator edge in screen pixels.
const ledSize = 10

var (
	ledOnColor  = color.RGBA{0xE0, 0x20, 0x20, 0xFF}
	ledOffColor = color.RGBA{0x40, 0x10, 0x10, 0xFF}
)

// FramebufferRenderer owns the ebiten offscreen buffer and draws the LCD
// with aspect-ratio-preserving scaling.
type FramebufferRenderer struct {
	offscreen *ebiten.Image
	led       *ebiten.Image
	drawOpts  ebiten.DrawImageOptions
}

// NewFramebufferRenderer creates a renderer for the LCD.
func NewFramebufferRenderer() *FramebufferRenderer {
	return &FramebufferRenderer{}
}

// fitScale returns the largest uniform scale of a native-sized image that
// fits the screen, and the offsets that center it.
func fitScale(screenW, screenH, nativeW, nativeH int) (scale, offsetX, offsetY float64) {
	if nativeW <= 0 || nativeH <= 0 {
		return 0, 0, 0
	}
	scaleX := float64(screenW) / float64(nativeW)
	scaleY := float64(screenH) / float64(nativeH)
	scale = scaleX
	if scaleY < scaleX {
		scale = scaleY
	}
	offsetX = (float64(screenW) - float64(nativeW)*scale) / 2
	offsetY = (float64(screenH) - float64(nativeH)*scale) / 2
	return scale, offsetX, offsetY
}

// DrawFramebuffer renders RGBA pixel data of a full LCD frame to the
// screen. Short buffers are ignored.
func (r *FramebufferRenderer) DrawFramebuffer(screen *ebiten.Image, pixels []byte) {
	requiredLen := lcd.Width * lcd.Height * 4
	if len(pixels) < requiredLen {
		return
	}

	if r.offscreen == nil {
		r.offscreen = ebiten.NewImage(lcd.Width, lcd.Height)
	}
	r.offscreen.WritePixels(pixels[:requiredLen])

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale, offsetX, offsetY := fitScale(screenW, screenH, lcd.Width, lcd.Height)

	r.drawOpts = ebiten.DrawImageOptions{}
	r.drawOpts.GeoM.Scale(scale, scale)
	r.drawOpts.GeoM.Translate(offsetX, offsetY)
	r.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(r.offscreen, &r.drawOpts)
}

// DrawLED draws the indicator in the top-right corner of the screen.
func (r *FramebufferRenderer) DrawLED(screen *ebiten.Image, on bool) {
	if r.led == nil {
		r.led = ebiten.NewImage(ledSize, ledSize)
	}
	if on {
		r.led.Fill(ledOnColor)
	} else {
		r.led.Fill(ledOffColor)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(screen.Bounds().Dx()-ledSize-ledSize/2), float64(ledSize/2))
	screen.DrawImage(r.led, opts)
}
