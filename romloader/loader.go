// Package romloader loads the four Space Invaders ROM segments
// (invaders.h/.g/.f/.e) from loose files on disk or from inside a
// compressed archive, auto-detecting the archive format by magic
// bytes.
package romloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/user-none/invaders8080/arcade"
)

// Magic bytes for format detection.
var (
	magicZIP    = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4B, 0x05, 0x06} // empty zip
	magic7z     = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip   = []byte{0x1F, 0x8B}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
	magicXZ     = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	magicZstd   = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// maxROMSize is a safety limit on any single extracted file.
const maxROMSize = 8 * 1024 * 1024

var (
	// ErrSegmentMissing is returned when a required ROM segment is not
	// present in the archive or directory.
	ErrSegmentMissing = errors.New("romloader: ROM segment missing")
	// ErrUnsupportedFormat is returned for unrecognized archive formats.
	ErrUnsupportedFormat = errors.New("romloader: unsupported file format")
	// ErrFileTooLarge is returned when extracted content exceeds the size limit.
	ErrFileTooLarge = errors.New("romloader: file exceeds maximum size limit")
)

// formatType represents the detected archive format.
type formatType int

const (
	formatUnknown formatType = iota
	formatZIP
	format7z
	formatGzip
	formatRAR
	formatXZ
	formatZstd
	formatBrotli
)

// segmentOffsets are the conventional MAME ROM-set filenames paired
// with the offset each segment is loaded at in the machine's address
// space.
var segmentOffsets = map[string]uint16{
	"invaders.h": 0x0000,
	"invaders.g": 0x0800,
	"invaders.f": 0x1000,
	"invaders.e": 0x1800,
}

// ROMSet holds the four loaded ROM segments keyed by their
// conventional filename.
type ROMSet struct {
	Segments map[string][]byte
}

// Load copies every segment into the machine at its fixed offset.
func (s ROMSet) Load(m *arcade.Machine) error {
	for name, offset := range segmentOffsets {
		data, ok := s.Segments[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrSegmentMissing, name)
		}
		m.LoadROM(data, offset)
	}
	return nil
}

// LoadSet loads a ROM set from path: either a directory containing
// the four loose segment files, or a single zip/7z/rar archive
// containing them. A gz/xz/zst/br file holds one compressed segment,
// and LoadSet returns a set with only that segment in it.
func LoadSet(path string) (ROMSet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return loadSetFromDir(path)
	}
	return loadSetFromArchive(path)
}

func loadSetFromDir(dir string) (ROMSet, error) {
	set := ROMSet{Segments: make(map[string][]byte, len(segmentOffsets))}
	for name := range segmentOffsets {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return ROMSet{}, fmt.Errorf("%w: %s: %v", ErrSegmentMissing, name, err)
		}
		if len(data) > maxROMSize {
			return ROMSet{}, ErrFileTooLarge
		}
		set.Segments[name] = data
	}
	return set, nil
}

func loadSetFromArchive(path string) (ROMSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return ROMSet{}, fmt.Errorf("romloader: failed to read file header: %w", err)
	}
	header = header[:n]

	format := detectFormat(header, path)

	switch format {
	case formatZIP:
		return extractFromZIP(path)
	case format7z:
		return extractFrom7z(path)
	case formatRAR:
		return extractFromRAR(path)
	case formatGzip:
		return extractFromGzip(path)
	case formatXZ:
		return extractFromXZ(path)
	case formatZstd:
		return extractFromZstd(path)
	case formatBrotli:
		return extractFromBrotli(path)
	default:
		return ROMSet{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// detectFormat determines the archive format based on magic bytes and extension.
func detectFormat(header []byte, path string) formatType {
	ext := strings.ToLower(filepath.Ext(path))

	if len(header) >= 4 {
		if bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEnd) {
			return formatZIP
		}
		if bytes.HasPrefix(header, magicRAR) {
			return formatRAR
		}
		if bytes.HasPrefix(header, magicZstd) {
			return formatZstd
		}
	}
	if len(header) >= 6 && bytes.HasPrefix(header, magic7z) {
		return format7z
	}
	if len(header) >= 6 && bytes.HasPrefix(header, magicXZ) {
		return formatXZ
	}
	if len(header) >= 2 && bytes.HasPrefix(header, magicGzip) {
		return formatGzip
	}

	switch ext {
	case ".zip":
		return formatZIP
	case ".7z":
		return format7z
	case ".gz", ".tgz":
		return formatGzip
	case ".rar":
		return formatRAR
	case ".xz":
		return formatXZ
	case ".zst":
		return formatZstd
	case ".br":
		// Brotli has no standard magic number, so it is only
		// detected by extension.
		return formatBrotli
	}

	if strings.HasSuffix(strings.ToLower(path), ".tar.gz") {
		return formatGzip
	}

	return formatUnknown
}

// segmentNameOf reports whether name (an archive entry's path) names
// one of the four known ROM segments, ignoring directory components
// and case.
func segmentNameOf(name string) (string, bool) {
	base := strings.ToLower(filepath.Base(name))
	if _, ok := segmentOffsets[base]; ok {
		return base, true
	}
	return "", false
}

// limitedRead reads from r up to maxROMSize bytes, returning an error if exceeded.
func limitedRead(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, maxROMSize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(data) > maxROMSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
