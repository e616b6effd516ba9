// Command estepdad_libretro builds the libretro core:
//
//	go build -buildmode=c-shared -o estepdad_libretro.so ./cmd/estepdad_libretro
package main

import "C"

import (
	"github.com/user-none/estepdad/libretro"
	"github.com/user-none/estepdad/system"
)

func init() {
	libretro.Register(func() system.Core { return &system.NullCore{} })
}

func main() {}
