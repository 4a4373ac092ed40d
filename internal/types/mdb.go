package types

// Mdb is the decoded music database section: one Record per FNRP chunk, in
// file order.
type Mdb struct {
	Records []Record
}

// Signature is a time signature in conventional notation.
type Signature struct {
	// Upper is the number of beats per bar.
	Upper uint8

	// Lower is the note value being counted.
	Lower uint8
}

// Record is one music database entry.
type Record struct {
	// Tempo in microseconds per quarter note, a 24-bit value.
	Tempo uint32

	// Signature is the record's time signature.
	Signature Signature

	// Title of the tune.
	Title string

	// Genre name.
	Genre string

	// Keyword1 and Keyword2 are search keywords, empty when absent.
	Keyword1 string
	Keyword2 string
}
