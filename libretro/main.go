// Package libretro exposes the emulator as a libretro core. Build it with
// -buildmode=c-shared from a main package that calls Register.
package libretro

/*
#include <stdlib.h>
#include "libretro.h"
#include "cfuncs.h"
*/
import "C"
import (
	"log"
	"unsafe"

	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/bridge"
	"github.com/user-none/estepdad/imageloader"
	"github.com/user-none/estepdad/system"
)

// memoryBuffer holds a C-allocated copy of a memory region. Frontends keep
// the pointer returned by retro_get_memory_data, so Go memory cannot be
// handed out directly.
type memoryBuffer struct {
	buf  *C.uint8_t
	size C.size_t
}

func (m *memoryBuffer) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(m.buf)), int(m.size))
}

var (
	newCore func() system.Core
	sysInfo = bridge.SystemInfo()

	host   = &retroHost{}
	driver *bridge.Driver
	image  []byte

	memBuffers map[emucore.MemoryKind]*memoryBuffer

	// Pre-allocated C strings (allocated once, freed in retro_deinit)
	libNameStr   *C.char
	libVerStr    *C.char
	validExtStr  *C.char
	stringsReady bool

	optionPrefix string
	coreOptKeys  []*C.char
	coreOptVals  []*C.char
	inputDescs   []*C.char
)

// Register sets the constructor for the instruction core. Must be called
// during init() before any retro_* function runs.
func Register(f func() system.Core) {
	newCore = f
	optionPrefix = sysInfo.Name + "_"
}

//export retro_set_environment
func retro_set_environment(cb C.retro_environment_t) {
	C._retro_set_environment(cb)
	ensureOptionStrings()
	setVariables()
	setInputDescriptors()
	C.set_controller_info()
}

//export retro_set_video_refresh
func retro_set_video_refresh(cb C.retro_video_refresh_t) {
	C._retro_set_video_refresh(cb)
}

//export retro_set_audio_sample
func retro_set_audio_sample(cb C.retro_audio_sample_t) {
	C._retro_set_audio_sample(cb)
}

//export retro_set_audio_sample_batch
func retro_set_audio_sample_batch(cb C.retro_audio_sample_batch_t) {
	C._retro_set_audio_sample_batch(cb)
}

//export retro_set_input_poll
func retro_set_input_poll(cb C.retro_input_poll_t) {
	C._retro_set_input_poll(cb)
}

//export retro_set_input_state
func retro_set_input_state(cb C.retro_input_state_t) {
	C._retro_set_input_state(cb)
}

//export retro_init
func retro_init() {
	if C.init_log_interface() {
		log.SetFlags(0)
		log.SetOutput(logWriter{})
	}
	if !C.init_led_interface() {
		log.Printf("Frontend has no LED interface")
	}

	ensureStrings()
	ensureOptionStrings()
}

//export retro_deinit
func retro_deinit() {
	driver = nil
	image = nil
	freeMemBuffers()
	freeStrings()
}

//export retro_api_version
func retro_api_version() C.uint {
	return C.RETRO_API_VERSION
}

//export retro_get_system_info
func retro_get_system_info(info *C.struct_retro_system_info) {
	ensureStrings()
	info.library_name = libNameStr
	info.library_version = libVerStr
	info.valid_extensions = validExtStr
	info.need_fullpath = C.bool(false)
	info.block_extract = C.bool(false)
}

//export retro_get_system_av_info
func retro_get_system_av_info(info *C.struct_retro_system_av_info) {
	geom := sysInfo.Geometry
	info.timing.fps = C.double(sysInfo.Timing.FPS)
	info.timing.sample_rate = C.double(sysInfo.Timing.SampleRate)
	info.geometry.base_width = C.uint(geom.Width)
	info.geometry.base_height = C.uint(geom.Height)
	info.geometry.max_width = C.uint(geom.Width)
	info.geometry.max_height = C.uint(geom.Height)
	info.geometry.aspect_ratio = C.float(geom.AspectRatio)
}

//export retro_set_controller_port_device
func retro_set_controller_port_device(port C.uint, device C.uint) {
}

//export retro_reset
func retro_reset() {
	if driver == nil || image == nil {
		return
	}

	// Save memory lives on in the C buffer and is copied back in before
	// the next frame.
	driver.Unload()
	if err := driver.Load(image); err != nil {
		log.Printf("Error: reset failed: %v", err)
	}
}

//export retro_run
func retro_run() {
	if driver == nil || !driver.Loaded() {
		return
	}

	var updated C.bool
	if C.call_environ_cb(C.RETRO_ENVIRONMENT_GET_VARIABLE_UPDATE, unsafe.Pointer(&updated)) && updated {
		updateCoreOptions()
	}

	// The frontend may have written any exposed region since the last
	// frame (save loading, cheats, achievements).
	copyRegions(exposedRegions, driver.Region, bufferBytes)

	driver.Tick()

	copyRegions(exposedRegions, bufferBytes, driver.Region)
}

//export retro_serialize_size
func retro_serialize_size() C.size_t {
	if driver == nil {
		return 0
	}
	return C.size_t(driver.SerializeSize())
}

//export retro_serialize
func retro_serialize(data unsafe.Pointer, size C.size_t) C.bool {
	if driver == nil {
		return C.bool(false)
	}
	dst := unsafe.Slice((*byte)(data), size)
	return C.bool(driver.Serialize(dst) == nil)
}

//export retro_unserialize
func retro_unserialize(data unsafe.Pointer, size C.size_t) C.bool {
	if driver == nil {
		return C.bool(false)
	}
	src := C.GoBytes(data, C.int(size))
	return C.bool(driver.Deserialize(src) == nil)
}

//export retro_cheat_reset
func retro_cheat_reset() {
}

//export retro_cheat_set
func retro_cheat_set(index C.uint, enabled C.bool, code *C.char) {
}

//export retro_load_game
func retro_load_game(game *C.struct_retro_game_info) C.bool {
	if game == nil || game.data == nil || game.size == 0 || newCore == nil {
		return C.bool(false)
	}

	var pixelFormat C.enum_retro_pixel_format = C.RETRO_PIXEL_FORMAT_RGB565
	host.rgb565 = bool(C.call_environ_cb(C.RETRO_ENVIRONMENT_SET_PIXEL_FORMAT, unsafe.Pointer(&pixelFormat)))
	if !host.rgb565 {
		pixelFormat = C.RETRO_PIXEL_FORMAT_XRGB8888
		C.call_environ_cb(C.RETRO_ENVIRONMENT_SET_PIXEL_FORMAT, unsafe.Pointer(&pixelFormat))
		log.Printf("Warning: RGB565 not supported, converting frames to XRGB8888")
	}

	var path string
	if game.path != nil {
		path = C.GoString(game.path)
	}
	data := C.GoBytes(game.data, C.int(game.size))

	img, err := imageloader.LoadBytes(data, contentName(path), sysInfo.Extensions)
	if err != nil {
		log.Printf("Error: failed to load image: %v", err)
		displayMessage("Failed to load image: " + err.Error())
		return C.bool(false)
	}

	d := bridge.NewDriver(newCore(), host, bridge.DefaultConfig())
	driver = d
	updateCoreOptions()

	if err := d.Load(img.Data); err != nil {
		driver = nil
		log.Printf("Error: failed to start %s: %v", img.Name, err)
		displayMessage("Failed to start image: " + err.Error())
		return C.bool(false)
	}
	image = img.Data

	allocMemBuffers()
	log.Printf("Loaded %s (crc32 %s)", img.Name, img.ID())
	return C.bool(true)
}

//export retro_load_game_special
func retro_load_game_special(gameType C.uint, info *C.struct_retro_game_info, numInfo C.size_t) C.bool {
	return C.bool(false)
}

//export retro_unload_game
func retro_unload_game() {
	if driver != nil {
		driver.Unload()
	}
	driver = nil
	image = nil
	freeMemBuffers()
}

//export retro_get_region
func retro_get_region() C.uint {
	return C.RETRO_REGION_NTSC
}

//export retro_get_memory_data
func retro_get_memory_data(id C.uint) unsafe.Pointer {
	if buf, ok := memBuffers[emucore.MemoryKind(id)]; ok {
		return unsafe.Pointer(buf.buf)
	}
	return nil
}

//export retro_get_memory_size
func retro_get_memory_size(id C.uint) C.size_t {
	if buf, ok := memBuffers[emucore.MemoryKind(id)]; ok {
		return buf.size
	}
	return 0
}

// bufferBytes returns the C-side copy of kind, or nil when none exists.
func bufferBytes(kind emucore.MemoryKind) []byte {
	if buf, ok := memBuffers[kind]; ok {
		return buf.bytes()
	}
	return nil
}

// ensureStrings allocates C strings for system info once.
func ensureStrings() {
	if stringsReady {
		return
	}
	libNameStr = C.CString(sysInfo.CoreName)
	libVerStr = C.CString(sysInfo.CoreVersion)
	validExtStr = C.CString(extensionList(sysInfo.Extensions))
	stringsReady = true
}

// ensureOptionStrings allocates C strings for core options and input
// descriptors once.
func ensureOptionStrings() {
	if coreOptKeys != nil {
		return
	}
	for _, opt := range sysInfo.CoreOptions {
		coreOptKeys = append(coreOptKeys, C.CString(optionPrefix+opt.Key))
		coreOptVals = append(coreOptVals, C.CString(optionValue(opt)))
	}
	for _, b := range sysInfo.Buttons {
		inputDescs = append(inputDescs, C.CString(b.Name))
	}
}

func freeStrings() {
	for _, group := range [][]*C.char{coreOptKeys, coreOptVals, inputDescs, {libNameStr, libVerStr, validExtStr}} {
		for _, s := range group {
			if s != nil {
				C.free(unsafe.Pointer(s))
			}
		}
	}
	coreOptKeys, coreOptVals, inputDescs = nil, nil, nil
	libNameStr, libVerStr, validExtStr = nil, nil, nil
	stringsReady = false
}

// setVariables registers all core options with the frontend.
func setVariables() {
	options := make([]C.struct_retro_variable, len(coreOptKeys)+1)
	for i := range coreOptKeys {
		options[i] = C.struct_retro_variable{key: coreOptKeys[i], value: coreOptVals[i]}
	}
	C.call_environ_cb(C.RETRO_ENVIRONMENT_SET_VARIABLES, unsafe.Pointer(&options[0]))
}

// setInputDescriptors names the buttons in the frontend's remapping UI.
func setInputDescriptors() {
	descs := make([]C.struct_retro_input_descriptor, len(inputDescs)+1)
	for i, b := range sysInfo.Buttons {
		descs[i] = C.struct_retro_input_descriptor{
			port:        0,
			device:      C.RETRO_DEVICE_JOYPAD,
			index:       0,
			id:          C.uint(b.ID),
			description: inputDescs[i],
		}
	}
	C.call_environ_cb(C.RETRO_ENVIRONMENT_SET_INPUT_DESCRIPTORS, unsafe.Pointer(&descs[0]))
}

// updateCoreOptions reads core options from the frontend.
func updateCoreOptions() {
	for i, cKey := range coreOptKeys {
		var v C.struct_retro_variable
		v.key = cKey
		if C.call_environ_cb(C.RETRO_ENVIRONMENT_GET_VARIABLE, unsafe.Pointer(&v)) && v.value != nil {
			if driver != nil && i < len(sysInfo.CoreOptions) {
				driver.SetOption(sysInfo.CoreOptions[i].Key, C.GoString(v.value))
			}
		}
	}
}

// allocMemBuffers allocates C-side copies of every region the loaded
// system backs.
func allocMemBuffers() {
	freeMemBuffers()
	memBuffers = make(map[emucore.MemoryKind]*memoryBuffer)
	for _, kind := range exposedRegions {
		region := driver.Region(kind)
		if len(region) == 0 {
			continue
		}
		buf := &memoryBuffer{
			buf:  (*C.uint8_t)(C.malloc(C.size_t(len(region)))),
			size: C.size_t(len(region)),
		}
		copy(buf.bytes(), region)
		memBuffers[kind] = buf
	}
}

// freeMemBuffers frees all C-allocated memory buffers.
func freeMemBuffers() {
	for _, buf := range memBuffers {
		if buf.buf != nil {
			C.free(unsafe.Pointer(buf.buf))
		}
	}
	memBuffers = nil
}
