package libretro

import (
	"strings"

	emucore "github.com/user-none/estepdad/api"
)

// Log levels, numbered as enum retro_log_level.
const (
	logDebug = iota
	logInfo
	logWarn
	logError
)

// exposedRegions are the memory kinds offered through retro_get_memory_*.
var exposedRegions = []emucore.MemoryKind{
	emucore.MemorySaveRAM,
	emucore.MemorySystemRAM,
	emucore.MemoryVideoRAM,
}

// copyRegions copies each kind from src into dst. Kinds missing on either
// side are skipped.
func copyRegions(kinds []emucore.MemoryKind, dst, src func(emucore.MemoryKind) []byte) {
	for _, kind := range kinds {
		copy(dst(kind), src(kind))
	}
}

// reorderDefault moves the default value to the front of a values slice.
func reorderDefault(values []string, def string) []string {
	result := make([]string, 0, len(values))
	result = append(result, def)
	for _, v := range values {
		if v != def {
			result = append(result, v)
		}
	}
	return result
}

// optionValue builds the "Label; default|other|..." string libretro
// expects for a core option.
func optionValue(opt emucore.CoreOption) string {
	switch opt.Type {
	case emucore.CoreOptionBool:
		if opt.Default == "true" {
			return opt.Label + "; true|false"
		}
		return opt.Label + "; false|true"
	case emucore.CoreOptionSelect:
		return opt.Label + "; " + strings.Join(reorderDefault(opt.Values, opt.Default), "|")
	default:
		return opt.Label + "; " + strings.Join(opt.Values, "|")
	}
}

// extensionList joins extensions the way valid_extensions wants them:
// without leading dots, separated by '|'.
func extensionList(exts []string) string {
	trimmed := make([]string, 0, len(exts))
	for _, e := range exts {
		trimmed = append(trimmed, strings.TrimPrefix(e, "."))
	}
	return strings.Join(trimmed, "|")
}

// logLevel picks a frontend log level from the message prefix used by
// the log.Printf calls in this module.
func logLevel(msg string) int {
	switch {
	case strings.HasPrefix(msg, "Error"):
		return logError
	case strings.HasPrefix(msg, "Warning"):
		return logWarn
	case strings.HasPrefix(msg, "Debug"):
		return logDebug
	default:
		return logInfo
	}
}

// contentName returns the name imageloader uses for format detection.
// Frontends may pass content without a path.
func contentName(path string) string {
	if path == "" {
		return "content.bin"
	}
	return path
}
