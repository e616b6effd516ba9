// Package imageloader reads firmware images from disk or memory. Plain
// images are accepted by extension; ZIP, 7z, gzip, tar.gz and RAR
// archives are detected by magic bytes and the first matching member is
// extracted.
package imageloader

import (
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"

	"github.com/user-none/estepdad/system"
)

// MaxImageSize is the largest image that fits the flat address space.
const MaxImageSize = system.MemorySize

// ErrNoImageFile is returned when an archive holds no matching member
var ErrNoImageFile = errors.New("no image file found in archive")

// ErrUnsupportedFormat is returned for unrecognized file formats
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrFileTooLarge is returned when the image exceeds MaxImageSize
var ErrFileTooLarge = errors.New("image exceeds address space")

// ErrEmptyImage is returned for zero-length images. It is the system's
// sentinel so callers match one value on every load path.
var ErrEmptyImage = system.ErrEmptyImage

// Image is a loaded firmware image.
type Image struct {
	Data []byte
	// Name is the base name of the file or archive member.
	Name  string
	CRC32 uint32
}

// ID returns the checksum as eight hex digits. Hosts key per-image
// storage (save RAM, screenshots) on it.
func (img *Image) ID() string {
	return fmt.Sprintf("%08x", img.CRC32)
}

// source is what every extractor reads from. Both *os.File and
// *bytes.Reader satisfy it.
type source interface {
	io.Reader
	io.ReaderAt
	io.Seeker
}

// Load reads an image from path.
func Load(path string, extensions []string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	return load(f, fi.Size(), path, extensions)
}

// LoadBytes treats data as the contents of a file called name. Frontends
// that hand over a buffer instead of a path use this.
func LoadBytes(data []byte, name string, extensions []string) (*Image, error) {
	return load(bytes.NewReader(data), int64(len(data)), name, extensions)
}

func load(src source, size int64, path string, extensions []string) (*Image, error) {
	header := make([]byte, 16)
	n, err := io.ReadFull(src, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	header = header[:n]

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek file: %w", err)
	}

	var (
		data []byte
		name string
	)
	format := detectFormat(header, path, extensions)
	switch format {
	case formatRaw:
		data, name, err = readRaw(src, path)
	case formatZIP:
		data, name, err = extractFromZIP(src, size, extensions)
	case format7z:
		data, name, err = extractFrom7z(src, size, extensions)
	case formatGzip:
		data, name, err = extractFromGzip(src, path, extensions)
	case formatRAR:
		data, name, err = extractFromRAR(src, extensions)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	// Program images have no header, so their first bytes can look like
	// an archive signature. A name with an image extension is read as-is
	// when it does not parse as the archive its magic suggests.
	if err != nil && format != formatRaw && hasExtension(path, extensions) {
		if _, serr := src.Seek(0, io.SeekStart); serr != nil {
			return nil, fmt.Errorf("failed to seek file: %w", serr)
		}
		data, name, err = readRaw(src, path)
	}
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyImage, name)
	}
	return &Image{
		Data:  data,
		Name:  name,
		CRC32: crc32.ChecksumIEEE(data),
	}, nil
}

func readRaw(src io.Reader, path string) ([]byte, string, error) {
	data, err := limitedRead(src)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	return data, filepath.Base(path), nil
}

// limitedRead reads from r up to MaxImageSize bytes, returning an error if exceeded
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxImageSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
