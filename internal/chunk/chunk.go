// Package chunk tokenizes the tagged-length-value chunk stream that style
// files use at every nesting level: a 4-byte ASCII tag, a 4-byte big-endian
// payload length, then exactly that many payload bytes. Top-level sections
// and their sub-sections all reuse the same framing, so the same Scanner
// descends into any of them.
package chunk

// Tag is a 4-byte chunk identifier.
type Tag string

// Chunk tags known to the format. The scanner itself is tag-agnostic; these
// are the tags the section decoders dispatch on.
const (
	TagMThd Tag = "MThd" // SMF header, leads every style file
	TagMTrk Tag = "MTrk" // SMF track, holds the musical content

	TagMH   Tag = "MHhd" // MH section, opaque
	TagCasm Tag = "CASM" // arrangement section
	TagCseg Tag = "CSEG" // per-style-part sub-section of CASM
	TagSdec Tag = "Sdec" // style-part declaration inside CSEG
	TagCtab Tag = "Ctab" // legacy channel record
	TagCtb2 Tag = "Ctb2" // current-generation channel record
	TagCntt Tag = "Cntt" // legacy auxiliary content table

	TagOts Tag = "OTSc" // One Touch Setting section

	TagMdb      Tag = "FNRc" // music database section
	TagRecord   Tag = "FNRP" // one database record
	TagTitle    Tag = "Mnam" // record title
	TagGenre    Tag = "Gnam" // record genre
	TagKeyword1 Tag = "Kwd1" // record keyword 1
	TagKeyword2 Tag = "Kwd2" // record keyword 2
)

// HeaderSize is the size of a chunk header: 4-byte tag + 4-byte length.
const HeaderSize = 8

// Chunk is one tokenized chunk. Data is a sub-slice of the scanned buffer,
// never a copy, so a Chunk stays valid exactly as long as that buffer does.
type Chunk struct {
	Tag    Tag
	Data   []byte
	Offset int // Buffer offset of the chunk header
}
