package lcd

import (
	"image/color"
	"testing"
)

func TestRGB565ToRGBA(t *testing.T) {
	testCases := []struct {
		name string
		in   uint16
		want color.RGBA
	}{
		{"black", 0x0000, color.RGBA{0x00, 0x00, 0x00, 0xFF}},
		{"white", 0xFFFF, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{"red", 0xF800, color.RGBA{0xFF, 0x00, 0x00, 0xFF}},
		{"green", 0x07E0, color.RGBA{0x00, 0xFF, 0x00, 0xFF}},
		{"blue", 0x001F, color.RGBA{0x00, 0x00, 0xFF, 0xFF}},
		{"palette 0", 0xB5B6, color.RGBA{0xB5, 0xB6, 0xB5, 0xFF}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RGB565ToRGBA(tc.in); got != tc.want {
				t.Errorf("RGB565ToRGBA(%#04x) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFrameRGBA(t *testing.T) {
	var f Frame
	f.Pix[0] = 0xF800
	f.Pix[Width*Height-1] = 0x001F

	img := f.RGBA()
	if img.Bounds().Dx() != Width || img.Bounds().Dy() != Height {
		t.Fatalf("bounds = %v, want %dx%d", img.Bounds(), Width, Height)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0xFF, 0, 0, 0xFF}) {
		t.Errorf("pixel (0,0) = %v, want red", got)
	}
	if got := img.RGBAAt(Width-1, Height-1); got != (color.RGBA{0, 0, 0xFF, 0xFF}) {
		t.Errorf("last pixel = %v, want blue", got)
	}
}

// TestFrameXRGB8888 verifies channel order is B, G, R, X
func TestFrameXRGB8888(t *testing.T) {
	var f Frame
	f.Pix[0] = 0xF800

	dst := make([]byte, Width*Height*4)
	f.XRGB8888(dst)

	expected := []byte{0x00, 0x00, 0xFF, 0xFF}
	for i := 0; i < 4; i++ {
		if dst[i] != expected[i] {
			t.Errorf("dst[%d] = %#02x, want %#02x", i, dst[i], expected[i])
		}
	}
}

func TestFrameBytes(t *testing.T) {
	var f Frame
	f.Pix[1] = 0x632C

	buf := f.Bytes()
	if len(buf) != Stride*Height {
		t.Fatalf("len = %d, want %d", len(buf), Stride*Height)
	}
	if buf[2] != 0x2C || buf[3] != 0x63 {
		t.Errorf("pixel 1 bytes = %#02x %#02x, want 0x2c 0x63", buf[2], buf[3])
	}
}

func TestScale(t *testing.T) {
	var f Frame
	f.Pix[0] = 0x18E3
	src := f.RGBA()

	testCases := []struct {
		factor int
		wantW  int
	}{
		{0, Width},
		{1, Width},
		{3, Width * 3},
	}
	for _, tc := range testCases {
		dst := Scale(src, tc.factor)
		if dst.Bounds().Dx() != tc.wantW {
			t.Errorf("Scale(%d) width = %d, want %d", tc.factor, dst.Bounds().Dx(), tc.wantW)
		}
	}

	dst := Scale(src, 4)
	dark := RGB565ToRGBA(0x18E3)
	light := RGB565ToRGBA(0x0000)
	if got := dst.RGBAAt(3, 3); got != dark {
		t.Errorf("scaled pixel (3,3) = %v, want %v", got, dark)
	}
	if got := dst.RGBAAt(4, 0); got != light {
		t.Errorf("scaled pixel (4,0) = %v, want %v", got, light)
	}
}
