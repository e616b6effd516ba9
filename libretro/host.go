package libretro

/*
#include <stdlib.h>
#include "libretro.h"
#include "cfuncs.h"
*/
import "C"
import (
	"unsafe"

	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/lcd"
)

// retroHost forwards the Frame Driver's host calls to the frontend
// callbacks.
type retroHost struct {
	// rgb565 is false when the frontend refused RGB565 and frames are
	// converted to XRGB8888 before presentation.
	rgb565  bool
	xrgbBuf []byte
}

func (h *retroHost) PollInput() {
	C.call_input_poll_cb()
}

func (h *retroHost) InputState(port int, id emucore.JoypadButton) bool {
	return C.call_input_state_cb(C.uint(port), C.RETRO_DEVICE_JOYPAD, 0, C.uint(id)) != 0
}

func (h *retroHost) RefreshVideo(frame *lcd.Frame) {
	if h.rgb565 {
		C.call_video_cb(unsafe.Pointer(&frame.Pix[0]), lcd.Width, lcd.Height, lcd.Stride)
		return
	}

	if h.xrgbBuf == nil {
		h.xrgbBuf = make([]byte, lcd.Width*lcd.Height*4)
	}
	frame.XRGB8888(h.xrgbBuf)
	C.call_video_cb(unsafe.Pointer(&h.xrgbBuf[0]), lcd.Width, lcd.Height, lcd.Width*4)
}

// SetLED is a no-op when the frontend has no LED interface.
func (h *retroHost) SetLED(led int, on bool) {
	state := 0
	if on {
		state = 1
	}
	C.call_led_cb(C.int(led), C.int(state))
}

// logWriter sends log package output to the frontend logger.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	msg := C.CString(string(p))
	C.call_log_cb(C.int(logLevel(string(p))), msg)
	C.free(unsafe.Pointer(msg))
	return len(p), nil
}

// displayMessage shows msg in the frontend's on-screen notification area.
func displayMessage(msg string) {
	cMsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cMsg))

	rmsg := C.struct_retro_message{msg: cMsg, frames: 300}
	C.call_environ_cb(C.RETRO_ENVIRONMENT_SET_MESSAGE, unsafe.Pointer(&rmsg))
}
