package romloader

import (
	"fmt"
	"io"

	"github.com/nwaples/rardecode/v2"
)

// extractFromRAR extracts the four ROM segments from a RAR archive.
func extractFromRAR(path string) (ROMSet, error) {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return ROMSet{}, fmt.Errorf("romloader: failed to open rar: %w", err)
	}
	defer r.Close()

	set := ROMSet{Segments: make(map[string][]byte, len(segmentOffsets))}
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ROMSet{}, fmt.Errorf("romloader: failed to read rar entry: %w", err)
		}
		if header.IsDir {
			continue
		}
		seg, ok := segmentNameOf(header.Name)
		if !ok {
			continue
		}
		data, err := limitedRead(r)
		if err != nil {
			return ROMSet{}, fmt.Errorf("romloader: failed to read %s: %w", header.Name, err)
		}
		set.Segments[seg] = data
	}

	if err := checkComplete(set); err != nil {
		return ROMSet{}, err
	}
	return set, nil
}
