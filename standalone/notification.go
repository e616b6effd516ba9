//go:build !libretro

package standalone

import (
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding = 6
	overlayMargin  = 8
)

var (
	overlayBackground = color.RGBA{0x10, 0x10, 0x10, 153} // 60% opacity
	overlayText       = color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
)

// fontFace is the OSD font. basicfont ships with x/image so no font file
// has to be bundled.
var fontFace = text.NewGoXFace(basicfont.Face7x13)

// Notification displays temporary messages on screen
type Notification struct {
	mu        sync.Mutex
	message   string
	startTime time.Time
	duration  time.Duration

	// Pre-allocated background (avoid per-frame allocations)
	bg *ebiten.Image
}

// NewNotification creates a new notification system
func NewNotification() *Notification {
	return &Notification{}
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays a notification with default 3 second duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, 3*time.Second)
}

// ShowShort displays a notification with 1 second duration
func (n *Notification) ShowShort(message string) {
	n.Show(message, 1*time.Second)
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.message == "" {
		return false
	}
	return time.Since(n.startTime) < n.duration
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
}

// Draw renders the notification in the bottom-right corner
func (n *Notification) Draw(screen *ebiten.Image) {
	n.mu.Lock()
	if n.message == "" || time.Since(n.startTime) >= n.duration {
		n.mu.Unlock()
		return
	}
	message := n.message
	n.mu.Unlock()

	drawOverlayText(screen, message, &n.bg, false)
}

// drawOverlayText draws message on a translucent box, bottom-right or
// top-left. bg caches the box image between frames.
func drawOverlayText(screen *ebiten.Image, message string, bg **ebiten.Image, topLeft bool) {
	bounds := screen.Bounds()

	textWidth, textHeight := text.Measure(message, fontFace, 0)
	bgWidth := int(textWidth) + overlayPadding*2
	bgHeight := int(textHeight) + overlayPadding*2

	bgX := bounds.Dx() - bgWidth - overlayMargin
	bgY := bounds.Dy() - bgHeight - overlayMargin
	if topLeft {
		bgX, bgY = overlayMargin, overlayMargin
	}

	if *bg == nil || (*bg).Bounds().Dx() < bgWidth || (*bg).Bounds().Dy() < bgHeight {
		*bg = ebiten.NewImage(bgWidth, bgHeight)
	}
	(*bg).Clear()
	(*bg).Fill(overlayBackground)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage((*bg).SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+overlayPadding), float64(bgY+overlayPadding))
	textOpts.ColorScale.ScaleWithColor(overlayText)
	text.Draw(screen, message, fontFace, textOpts)
}
