package romloader

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"

	"github.com/user-none/invaders8080/arcade"
)

func fakeSegments() map[string][]byte {
	return map[string][]byte{
		"invaders.h": bytes.Repeat([]byte{0x11}, 2048),
		"invaders.g": bytes.Repeat([]byte{0x22}, 2048),
		"invaders.f": bytes.Repeat([]byte{0x33}, 2048),
		"invaders.e": bytes.Repeat([]byte{0x44}, 2048),
	}
}

func writeZip(t *testing.T, segments map[string][]byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "invaders.zip")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create zip: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, data := range segments {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("failed to create entry %s: %v", name, err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("failed to write entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return path
}

func TestLoadSet_ZipRoundTrip(t *testing.T) {
	segments := fakeSegments()
	path := writeZip(t, segments)

	set, err := LoadSet(path)
	if err != nil {
		t.Fatalf("LoadSet failed: %v", err)
	}
	for name, want := range segments {
		if !bytes.Equal(set.Segments[name], want) {
			t.Errorf("segment %s mismatch", name)
		}
	}
}

func TestLoadSet_ZipMissingSegment(t *testing.T) {
	segments := fakeSegments()
	delete(segments, "invaders.e")
	path := writeZip(t, segments)

	_, err := LoadSet(path)
	if err == nil {
		t.Fatal("expected error for incomplete ROM set")
	}
}

func TestLoadSet_Directory(t *testing.T) {
	dir := t.TempDir()
	segments := fakeSegments()
	for name, data := range segments {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	set, err := LoadSet(dir)
	if err != nil {
		t.Fatalf("LoadSet failed: %v", err)
	}
	for name, want := range segments {
		if !bytes.Equal(set.Segments[name], want) {
			t.Errorf("segment %s mismatch", name)
		}
	}
}

func TestLoadSet_DirectoryMissingSegment(t *testing.T) {
	dir := t.TempDir()
	segments := fakeSegments()
	delete(segments, "invaders.h")
	for name, data := range segments {
		os.WriteFile(filepath.Join(dir, name), data, 0644)
	}

	_, err := LoadSet(dir)
	if err == nil {
		t.Fatal("expected error for missing segment")
	}
}

func TestROMSet_LoadWritesMachineAtFixedOffsets(t *testing.T) {
	set := ROMSet{Segments: fakeSegments()}
	m := arcade.NewMachine()

	if err := set.Load(m); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.CPU.Memory[0x0000] != 0x11 {
		t.Errorf("invaders.h not loaded at 0x0000")
	}
	if m.CPU.Memory[0x0800] != 0x22 {
		t.Errorf("invaders.g not loaded at 0x0800")
	}
	if m.CPU.Memory[0x1000] != 0x33 {
		t.Errorf("invaders.f not loaded at 0x1000")
	}
	if m.CPU.Memory[0x1800] != 0x44 {
		t.Errorf("invaders.e not loaded at 0x1800")
	}
}

func TestROMSet_LoadErrorsOnMissingSegment(t *testing.T) {
	segments := fakeSegments()
	delete(segments, "invaders.f")
	set := ROMSet{Segments: segments}
	m := arcade.NewMachine()

	if err := set.Load(m); err == nil {
		t.Fatal("expected error for missing segment")
	}
}

func TestDetectFormat_Magic(t *testing.T) {
	cases := []struct {
		header   []byte
		path     string
		expected formatType
	}{
		{[]byte{0x50, 0x4B, 0x03, 0x04}, "file.dat", formatZIP},
		{[]byte{0x50, 0x4B, 0x05, 0x06}, "file.dat", formatZIP},
		{[]byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}, "file.dat", format7z},
		{[]byte{0x1F, 0x8B}, "file.dat", formatGzip},
		{[]byte{0x52, 0x61, 0x72, 0x21}, "file.dat", formatRAR},
		{[]byte{0x28, 0xB5, 0x2F, 0xFD}, "file.dat", formatZstd},
	}
	for _, tc := range cases {
		if got := detectFormat(tc.header, tc.path); got != tc.expected {
			t.Errorf("detectFormat(%v, %s) = %d, want %d", tc.header, tc.path, got, tc.expected)
		}
	}
}

func TestDetectFormat_Extension(t *testing.T) {
	cases := []struct {
		path     string
		expected formatType
	}{
		{"game.zip", formatZIP},
		{"game.ZIP", formatZIP},
		{"game.7z", format7z},
		{"game.gz", formatGzip},
		{"game.tgz", formatGzip},
		{"game.tar.gz", formatGzip},
		{"game.rar", formatRAR},
		{"game.xz", formatXZ},
		{"game.zst", formatZstd},
		{"game.br", formatBrotli},
		{"game.unknown", formatUnknown},
	}
	for _, tc := range cases {
		if got := detectFormat([]byte{}, tc.path); got != tc.expected {
			t.Errorf("detectFormat([], %s) = %d, want %d", tc.path, got, tc.expected)
		}
	}
}

func TestLoadSet_BrotliSingleSegment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invaders.h.br")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create brotli file: %v", err)
	}
	want := bytes.Repeat([]byte{0x55}, 2048)
	bw := brotli.NewWriter(f)
	if _, err := bw.Write(want); err != nil {
		t.Fatalf("failed to write brotli stream: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("failed to close brotli writer: %v", err)
	}
	f.Close()

	set, err := extractFromBrotli(path)
	if err != nil {
		t.Fatalf("extractFromBrotli failed: %v", err)
	}
	if !bytes.Equal(set.Segments["invaders.h"], want) {
		t.Fatal("decompressed segment mismatch")
	}
}

func TestSegmentNameOf(t *testing.T) {
	cases := []struct {
		name     string
		wantSeg  string
		wantBool bool
	}{
		{"invaders.h", "invaders.h", true},
		{"roms/invaders.g", "invaders.g", true},
		{"INVADERS.F", "invaders.f", true},
		{"readme.txt", "", false},
	}
	for _, tc := range cases {
		seg, ok := segmentNameOf(tc.name)
		if ok != tc.wantBool || seg != tc.wantSeg {
			t.Errorf("segmentNameOf(%q) = (%q, %v), want (%q, %v)", tc.name, seg, ok, tc.wantSeg, tc.wantBool)
		}
	}
}

func TestLoadSet_FileTooLarge(t *testing.T) {
	segments := fakeSegments()
	segments["invaders.h"] = make([]byte, maxROMSize+1)
	path := writeZip(t, segments)

	_, err := LoadSet(path)
	if err == nil {
		t.Fatal("expected error for oversized segment")
	}
}

func TestLoadSet_PathNotFound(t *testing.T) {
	_, err := LoadSet("/nonexistent/path/invaders.zip")
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
}

func TestLoadSet_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invaders.dat")
	if err := os.WriteFile(path, []byte{0x00, 0x01, 0x02, 0x03}, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := LoadSet(path)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
