package emucore

// MemoryKind names a logical memory region a host may query.
// Values match RETRO_MEMORY_* so frontends can pass them through.
type MemoryKind int

const (
	MemorySaveRAM   MemoryKind = 0 // RETRO_MEMORY_SAVE_RAM
	MemorySystemRAM MemoryKind = 2 // RETRO_MEMORY_SYSTEM_RAM
	MemoryVideoRAM  MemoryKind = 3 // RETRO_MEMORY_VIDEO_RAM
)

// String returns the display name of the memory kind.
func (k MemoryKind) String() string {
	switch k {
	case MemorySaveRAM:
		return "SaveRAM"
	case MemorySystemRAM:
		return "SystemRAM"
	case MemoryVideoRAM:
		return "VideoRAM"
	default:
		return "Unknown"
	}
}
