// Command estepdad-snap runs a program image headless for a number of
// frames and writes the final LCD frame as a PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/bridge"
	"github.com/user-none/estepdad/imageloader"
	"github.com/user-none/estepdad/lcd"
	"github.com/user-none/estepdad/system"
	"github.com/user-none/estepdad/termview"
)

var errUsage = errors.New("usage")

// snapHost holds a fixed set of buttons for every frame and keeps the
// last presented frame.
type snapHost struct {
	held  map[emucore.JoypadButton]bool
	frame lcd.Frame
	shown bool
}

func (h *snapHost) PollInput() {}

func (h *snapHost) InputState(port int, id emucore.JoypadButton) bool {
	return port == 0 && h.held[id]
}

func (h *snapHost) RefreshVideo(frame *lcd.Frame) {
	h.frame = *frame
	h.shown = true
}

// parseHeld converts a comma separated list of button names.
func parseHeld(list string, buttons []emucore.Button) (map[emucore.JoypadButton]bool, error) {
	held := make(map[emucore.JoypadButton]bool)
	if list == "" {
		return held, nil
	}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		found := false
		for _, b := range buttons {
			if strings.EqualFold(b.Name, name) {
				held[b.ID] = true
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown button %q", name)
		}
	}
	return held, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("estepdad-snap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("o", "snap.png", "output PNG path")
	frames := fs.Int("frames", 60, "frames to run before capturing")
	scale := fs.Int("scale", 4, "PNG magnification")
	model := fs.String("model", system.ModelNTR032.String(), "hardware model: NTR-032 or single-button")
	steps := fs.Int("steps", bridge.DefaultStepsPerFrame, "instructions per frame")
	hold := fs.String("hold", "", "buttons held for every frame, e.g. Button,Left")
	preview := fs.Bool("preview", false, "print the frame to the terminal")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: estepdad-snap [options] image\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	info := bridge.SystemInfo()

	m, ok := system.ParseModel(*model)
	if !ok {
		return fmt.Errorf("unknown model %q", *model)
	}
	held, err := parseHeld(*hold, info.Buttons)
	if err != nil {
		return err
	}

	img, err := imageloader.Load(fs.Arg(0), info.Extensions)
	if err != nil {
		return err
	}

	host := &snapHost{held: held}
	cfg := bridge.Config{StepsPerFrame: *steps, Model: m}
	driver := bridge.NewDriver(&system.NullCore{}, host, cfg)
	if err := driver.Load(img.Data); err != nil {
		return err
	}
	defer driver.Unload()

	for i := 0; i < *frames; i++ {
		driver.Tick()
	}
	if !host.shown {
		return errors.New("image produced no frame")
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := png.Encode(f, lcd.Scale(host.frame.RGBA(), *scale)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if *preview {
		cols := lcd.Width
		if w, ok := termview.TerminalWidth(int(os.Stdout.Fd())); ok {
			cols = w
		}
		if err := termview.Render(stdout, &host.frame, cols); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "%s %s: %d frames, %s\n", img.Name, img.ID(), driver.Frames(), *out)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
