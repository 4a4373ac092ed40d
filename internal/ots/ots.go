// Package ots decodes the One Touch Setting section. The section is a
// sequence of track records; their internal layout belongs to the
// instrument's panel-setting domain and is deliberately left opaque here.
package ots

import (
	"github.com/simonhull/stylemeta/internal/chunk"
	"github.com/simonhull/stylemeta/internal/types"
)

// Parse decodes an OTSc section payload into file.OTS. Each sub-chunk
// becomes one opaque track record; the payloads are views into the input
// buffer. Truncation is the only way this section fails, and truncation is
// fatal under both policies.
func Parse(data []byte, file *types.File) error {
	section := &types.Ots{}

	s := chunk.NewScanner(data)
	for s.Scan() {
		section.Tracks = append(section.Tracks, types.OtsTrack{Data: s.Chunk().Data})
	}
	if err := s.Err(); err != nil {
		return err
	}

	file.OTS = section
	return nil
}
