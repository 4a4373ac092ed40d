package types

// Ots is the decoded One Touch Setting section.
type Ots struct {
	// Tracks are the section's track records in file order.
	Tracks []OtsTrack
}

// OtsTrack is one OTS track record. Its internal layout is not decoded
// here; Data is the raw track payload, a view into the input buffer.
type OtsTrack struct {
	Data []byte
}
