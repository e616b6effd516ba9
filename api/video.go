package emucore

// Geometry is the fixed logical display geometry declared to the host.
type Geometry struct {
	Width       int
	Height      int
	AspectRatio float64
}

// Stride returns bytes per row for a 16-bit-per-pixel raster.
func (g Geometry) Stride() int {
	return g.Width * 2
}

// Timing holds the nominal frame rate and audio sample rate.
// A zero SampleRate means the system produces no audio.
type Timing struct {
	FPS        float64
	SampleRate float64
}

// DisplayAspectRatio returns the display aspect ratio for a raster of the
// given size drawn with the given pixel aspect ratio.
func DisplayAspectRatio(width, height int, par float64) float64 {
	if height == 0 {
		return 0
	}
	return float64(width) / float64(height) * par
}
