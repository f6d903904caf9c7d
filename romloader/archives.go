package romloader

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// checkComplete verifies that every required ROM segment was found
// while walking an archive's entries.
func checkComplete(set ROMSet) error {
	for name := range segmentOffsets {
		if _, ok := set.Segments[name]; !ok {
			return fmt.Errorf("%w: %s", ErrSegmentMissing, name)
		}
	}
	return nil
}

func extractFromZIP(path string) (ROMSet, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to open zip: %w", err)
	}
	defer r.Close()

	set := ROMSet{Segments: make(map[string][]byte, len(segmentOffsets))}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		seg, ok := segmentNameOf(f.Name)
		if !ok {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return ROMSet{}, fmt.Errorf("romloader: failed to open %s: %w", f.Name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return ROMSet{}, fmt.Errorf("romloader: failed to read %s: %w", f.Name, err)
		}
		set.Segments[seg] = data
	}

	if err := checkComplete(set); err != nil {
		return ROMSet{}, err
	}
	return set, nil
}

func extractFrom7z(path string) (ROMSet, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to open 7z: %w", err)
	}
	defer r.Close()

	set := ROMSet{Segments: make(map[string][]byte, len(segmentOffsets))}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		seg, ok := segmentNameOf(f.Name)
		if !ok {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return ROMSet{}, fmt.Errorf("romloader: failed to open %s: %w", f.Name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return ROMSet{}, fmt.Errorf("romloader: failed to read %s: %w", f.Name, err)
		}
		set.Segments[seg] = data
	}

	if err := checkComplete(set); err != nil {
		return ROMSet{}, err
	}
	return set, nil
}

// extractFromGzip handles a single-segment .gz file named after its
// segment (e.g. invaders.h.gz). A gzip stream carries no internal
// filenames the way zip/7z/rar do, so the segment is identified by
// the archive's own filename.
func extractFromGzip(path string) (ROMSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to open gzip file: %w", err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to create gzip reader: %w", err)
	}
	defer gr.Close()

	return singleSegmentFromStream(gr, gr.Name, path)
}

func extractFromXZ(path string) (ROMSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to open xz file: %w", err)
	}
	defer f.Close()

	xr, err := xz.NewReader(f)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to create xz reader: %w", err)
	}

	return singleSegmentFromStream(xr, "", path)
}

func extractFromZstd(path string) (ROMSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to open zstd file: %w", err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	return singleSegmentFromStream(zr, "", path)
}

func extractFromBrotli(path string) (ROMSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to open brotli file: %w", err)
	}
	defer f.Close()

	return singleSegmentFromStream(brotli.NewReader(f), "", path)
}

// singleSegmentFromStream reads a bare compressed stream whose
// decompressed payload is exactly one ROM segment, identified by
// embeddedName if the format carries one, falling back to the
// archive's own filename.
func singleSegmentFromStream(r io.Reader, embeddedName, archivePath string) (ROMSet, error) {
	data, err := limitedRead(r)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to decompress %s: %w", archivePath, err)
	}

	name := embeddedName
	if name == "" {
		name = archivePath
	}
	seg, ok := segmentNameOf(trimCompressedSuffix(name))
	if !ok {
		return ROMSet{}, fmt.Errorf("%w: cannot identify segment for %s", ErrSegmentMissing, archivePath)
	}

	return ROMSet{Segments: map[string][]byte{seg: data}}, nil
}

func trimCompressedSuffix(name string) string {
	for _, suffix := range []string{".gz", ".xz", ".zst", ".br", ".tgz"} {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}
