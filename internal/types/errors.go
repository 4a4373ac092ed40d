package types

import "fmt"

// TruncatedChunkError is returned when a chunk header declares more bytes
// than the buffer holds, or when a header itself is cut short. There is no
// safe position to resume scanning from, so this error is fatal under both
// decoding policies.
type TruncatedChunkError struct {
	Tag      string // 4-byte chunk tag, empty if the header was incomplete
	Offset   int    // Buffer offset of the chunk header
	Declared int    // Declared payload length (-1 if the header was incomplete)
	Remain   int    // Bytes actually remaining at Offset
}

func (e *TruncatedChunkError) Error() string {
	if e.Declared < 0 {
		return fmt.Sprintf("truncated chunk header at offset %d: only %d bytes remain",
			e.Offset, e.Remain)
	}
	return fmt.Sprintf("truncated %q chunk at offset %d: declared length %d exceeds %d remaining bytes",
		e.Tag, e.Offset, e.Declared, e.Remain)
}

// CorruptedSectionError is returned when a section's internal structure is
// invalid: an illegal chunk tag at a scope that forbids it, or a fixed-size
// field that is absent or too short.
type CorruptedSectionError struct {
	Section string // "CASM", "CSEG", "CTAB", "MDB", ...
	Offset  int    // Offset within the section payload (0 if not applicable)
	Reason  string
}

func (e *CorruptedSectionError) Error() string {
	return fmt.Sprintf("corrupted %s section at offset %d: %s", e.Section, e.Offset, e.Reason)
}

// UnknownCodeError is returned under strict decoding when a byte code does
// not map to any variant of a closed enumeration.
type UnknownCodeError struct {
	What string // "key", "chord type", "retrigger rule", ...
	Code byte
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code 0x%02X", e.What, e.Code)
}

// UnsupportedFormatError is returned when a buffer is not a style file at
// all: it does not begin with the SMF header every style file starts with.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported format: %s", e.Reason)
	}
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// Warning represents a non-fatal issue absorbed under lenient decoding.
//
// Under the lenient policy, structural violations drop the local item and
// field-level violations take a documented default; each such event is
// recorded as a Warning on the decoded File so callers can still tell a
// clean file from a patched-up one.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "CASM", "CSEG", "CTAB", "MDB", "OTS"

	// Warning message
	Message string

	// Offset within the stage's payload (0 if not applicable)
	Offset int
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
