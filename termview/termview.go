// Package termview draws LCD frames in a terminal using 24-bit color and
// upper half block characters, two pixel rows per text row.
package termview

import (
	"bufio"
	"fmt"
	"io"

	"github.com/user-none/estepdad/lcd"
	"golang.org/x/term"
)

const (
	halfBlock = "▀"
	reset     = "\x1b[0m"
)

// Dimensions returns the preview size in pixels and text rows for a
// terminal cols characters wide. Frames are never enlarged; narrower
// terminals get a proportional nearest-neighbour reduction.
func Dimensions(cols int) (width, height, rows int) {
	if cols <= 0 {
		return 0, 0, 0
	}
	width = min(cols, lcd.Width)
	height = (lcd.Height*width + lcd.Width - 1) / lcd.Width
	height += height & 1
	return width, height, height / 2
}

// TerminalWidth reports the column count of fd when it is a terminal.
func TerminalWidth(fd int) (int, bool) {
	if !term.IsTerminal(fd) {
		return 0, false
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}

// Render writes frame to w fitted to cols columns.
func Render(w io.Writer, frame *lcd.Frame, cols int) error {
	width, height, rows := Dimensions(cols)
	bw := bufio.NewWriter(w)

	for row := 0; row < rows; row++ {
		var fg, bg uint16
		started := false
		for x := 0; x < width; x++ {
			sx := x * lcd.Width / width
			top := frame.At(sx, (row*2)*lcd.Height/height)
			bottom := frame.At(sx, (row*2+1)*lcd.Height/height)

			if !started || top != fg {
				c := lcd.RGB565ToRGBA(top)
				fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
				fg = top
			}
			if !started || bottom != bg {
				c := lcd.RGB565ToRGBA(bottom)
				fmt.Fprintf(bw, "\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
				bg = bottom
			}
			started = true
			bw.WriteString(halfBlock)
		}
		bw.WriteString(reset + "\n")
	}
	return bw.Flush()
}
