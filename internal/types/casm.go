package types

// Casm is the decoded CASM arrangement section: one Cseg per CSEG chunk, in
// file order. The order is meaningful — a CSEG applies to the style parts
// its Sdec declaration names.
type Casm struct {
	Csegs []Cseg
}

// Cseg is one CSEG sub-section of CASM.
type Cseg struct {
	// StyleParts are the sections this CSEG configures, in declaration
	// order.
	StyleParts []StylePart

	// Ctabs are the channel records of this CSEG, in file order.
	Ctabs []Ctab

	// Cntt holds the payloads of any legacy auxiliary content-table chunks,
	// in file order. Their interpretation is out of scope; each payload is
	// a view into the input buffer.
	Cntt [][]byte
}
