package chunk

import (
	"encoding/binary"

	"github.com/simonhull/stylemeta/internal/types"
)

// Scanner walks a buffer as a sequence of chunks, in the bufio.Scanner
// idiom:
//
//	s := chunk.NewScanner(data)
//	for s.Scan() {
//		c := s.Chunk()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
//
// Scanning stops cleanly when the cursor lands exactly on the buffer end.
// A leftover shorter than a header, or a declared length overrunning the
// buffer, is a truncation error: there is no safe position to resume from,
// so the scanner stays stopped.
type Scanner struct {
	data []byte
	pos  int
	cur  Chunk
	err  error
}

// NewScanner returns a Scanner over data. The scanner never copies payload
// bytes; every Chunk it yields borrows from data.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Scan advances to the next chunk. It returns false when the buffer is
// exhausted or a truncation error occurred; the two cases are told apart
// by Err.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	remain := len(s.data) - s.pos
	if remain == 0 {
		return false
	}
	if remain < HeaderSize {
		s.err = &types.TruncatedChunkError{
			Offset:   s.pos,
			Declared: -1,
			Remain:   remain,
		}
		return false
	}

	tag := Tag(s.data[s.pos : s.pos+4])
	length := int(binary.BigEndian.Uint32(s.data[s.pos+4 : s.pos+HeaderSize]))
	if length > remain-HeaderSize {
		s.err = &types.TruncatedChunkError{
			Tag:      string(tag),
			Offset:   s.pos,
			Declared: length,
			Remain:   remain - HeaderSize,
		}
		return false
	}

	start := s.pos + HeaderSize
	s.cur = Chunk{
		Tag:    tag,
		Data:   s.data[start : start+length],
		Offset: s.pos,
	}
	s.pos = start + length
	return true
}

// Chunk returns the chunk produced by the last successful Scan.
func (s *Scanner) Chunk() Chunk {
	return s.cur
}

// Err returns the truncation error that stopped the scanner, or nil if it
// stopped at the buffer end.
func (s *Scanner) Err() error {
	return s.err
}

// First scans data for the first chunk tagged tag and returns its payload.
//
// Unrelated tags are skipped, so optional sections can share one top-level
// stream; found is false when the stream runs out without a match, which is
// not an error. A truncation error encountered before a match propagates
// under both policies. Later chunks with the same tag are never observed.
func First(data []byte, tag Tag) (payload []byte, found bool, err error) {
	s := NewScanner(data)
	for s.Scan() {
		if s.Chunk().Tag == tag {
			return s.Chunk().Data, true, nil
		}
	}
	if err := s.Err(); err != nil {
		return nil, false, err
	}
	return nil, false, nil
}
