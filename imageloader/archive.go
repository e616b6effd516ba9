package imageloader

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

// member is one entry of an indexed archive (zip, 7z).
type member struct {
	name string
	dir  bool
	open func() (io.ReadCloser, error)
}

// readFirstMember returns the first non-directory member whose name
// matches one of extensions.
func readFirstMember(members []member, extensions []string) ([]byte, string, error) {
	for _, m := range members {
		if m.dir || !hasExtension(m.name, extensions) {
			continue
		}

		rc, err := m.open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s in archive: %w", m.name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", m.name, err)
		}
		return data, filepath.Base(m.name), nil
	}
	return nil, "", ErrNoImageFile
}

// streamEntry is the current header of a sequential archive (tar, rar).
type streamEntry struct {
	name    string
	regular bool
}

// readFirstStreamed advances next until a matching entry is found and
// reads it from body.
func readFirstStreamed(next func() (streamEntry, error), body io.Reader, extensions []string) ([]byte, string, error) {
	for {
		e, err := next()
		if err == io.EOF {
			return nil, "", ErrNoImageFile
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to read archive entry: %w", err)
		}
		if !e.regular || !hasExtension(e.name, extensions) {
			continue
		}

		data, err := limitedRead(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", e.name, err)
		}
		return data, filepath.Base(e.name), nil
	}
}

func extractFromZIP(r io.ReaderAt, size int64, extensions []string) ([]byte, string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open zip: %w", err)
	}

	members := make([]member, 0, len(zr.File))
	for _, f := range zr.File {
		members = append(members, member{name: f.Name, dir: f.FileInfo().IsDir(), open: f.Open})
	}
	return readFirstMember(members, extensions)
}

func extractFrom7z(r io.ReaderAt, size int64, extensions []string) ([]byte, string, error) {
	zr, err := sevenzip.NewReader(r, size)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open 7z: %w", err)
	}

	members := make([]member, 0, len(zr.File))
	for _, f := range zr.File {
		members = append(members, member{name: f.Name, dir: f.FileInfo().IsDir(), open: f.Open})
	}
	return readFirstMember(members, extensions)
}

func extractFromRAR(r io.Reader, extensions []string) ([]byte, string, error) {
	rr, err := rardecode.NewReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open rar: %w", err)
	}

	next := func() (streamEntry, error) {
		h, err := rr.Next()
		if err != nil {
			return streamEntry{}, err
		}
		return streamEntry{name: h.Name, regular: !h.IsDir}, nil
	}
	return readFirstStreamed(next, rr, extensions)
}

// extractFromGzip handles both tar.gz and a single gzip-compressed image.
// A plain .gz is taken as the image itself, named without the suffix.
func extractFromGzip(r io.Reader, path string, extensions []string) ([]byte, string, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gr.Close()

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		tr := tar.NewReader(gr)
		next := func() (streamEntry, error) {
			h, err := tr.Next()
			if err != nil {
				return streamEntry{}, err
			}
			return streamEntry{name: h.Name, regular: h.Typeflag == tar.TypeReg}, nil
		}
		return readFirstStreamed(next, tr, extensions)
	}

	data, err := limitedRead(gr)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decompress gzip: %w", err)
	}
	name := filepath.Base(path)
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		name = name[:len(name)-3]
	}
	return data, name, nil
}
