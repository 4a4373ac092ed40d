package types

// File is a decoded style file.
//
// Each section pointer is nil when the file carries no chunk with that
// section's tag; a file may legally contain any subset of the sections.
// When the same section tag appears more than once, only the first
// occurrence is decoded and later duplicates are never observed.
//
// All byte-slice fields, at every nesting depth, are sub-slices of the
// buffer the file was decoded from. They are views, not copies: they stay
// valid exactly as long as the caller keeps that buffer alive and unmodified.
type File struct {
	// Path to the style file ("" when decoded from a raw buffer)
	Path string

	// Size of the input buffer in bytes
	Size int

	// MH section payload, opaque (nil if absent)
	MH []byte

	// CASM arrangement section (nil if absent)
	CASM *Casm

	// Music database section (nil if absent)
	MDB *Mdb

	// One Touch Setting section (nil if absent)
	OTS *Ots

	// Warnings absorbed while decoding under the lenient policy
	Warnings []Warning
}
