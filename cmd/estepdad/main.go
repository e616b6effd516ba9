//go:build !libretro

// Command estepdad runs a Pokewalker program image in a desktop window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/user-none/estepdad/bridge"
	"github.com/user-none/estepdad/standalone"
	"github.com/user-none/estepdad/system"
)

func main() {
	model := flag.String("model", "", "hardware model: NTR-032 or single-button (default from config)")
	steps := flag.Int("steps", 0, "instructions per frame (default from config)")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	version := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: estepdad [options] [image]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a program image (or a zip, 7z, rar, gz archive holding one).\n")
		fmt.Fprintf(os.Stderr, "Without an image the most recently opened one is used.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: Ctrl+O open, Esc pause, F5 reset, Tab fast forward,\n")
		fmt.Fprintf(os.Stderr, "      F10 copy screenshot, F11 fullscreen, F12 screenshot\n")
	}
	flag.Parse()

	if *version {
		fmt.Printf("%s %s\n", bridge.Name, bridge.Version)
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	opts := standalone.Options{
		Model:         *model,
		StepsPerFrame: *steps,
		Fullscreen:    *fullscreen,
	}
	newCore := func() system.Core { return &system.NullCore{} }

	if err := standalone.Run(newCore, flag.Arg(0), opts); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
