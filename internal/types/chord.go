package types

// ChordType is one of the chord qualities recognized by the format.
//
// Codes 0x00 through 0x22 appear on disk as the CTAB source chord type.
// ChordAutostart and ChordPercussion never appear as a stored code; they
// exist only as the two percussion-related entries of the chord-mute
// bitfield.
type ChordType int

const (
	ChordMaj ChordType = iota // 0x00
	ChordMaj6
	ChordMaj7
	ChordMaj7Sharp11
	ChordMaj9
	ChordMaj7_9
	ChordMaj6_9
	ChordAug
	ChordMin // 0x08
	ChordMin6
	ChordMin7
	ChordMin7Flat5
	ChordMin9
	ChordMin7_9
	ChordMin7_11
	ChordMinMaj7
	ChordMinMaj7_9 // 0x10
	ChordDim
	ChordDim7
	ChordSeven
	ChordSevenSus4
	ChordSevenFlat5
	ChordSeven9
	ChordSevenSharp11
	ChordSeven13 // 0x18
	ChordSevenFlat9
	ChordSevenFlat13
	ChordSevenSharp9
	ChordMaj7Aug
	ChordSevenAug
	ChordOnePlusEight
	ChordOnePlusFive
	ChordSus4 // 0x20
	ChordOnePlusTwoPlusFive
	ChordCancel // 0x22

	// Chord-mute-only entries, no on-disk chord code.
	ChordAutostart
	ChordPercussion
)

// NumChordTypes is the number of ChordType variants, bitfield-only entries
// included.
const NumChordTypes = 37

var chordNames = [NumChordTypes]string{
	"Maj", "Maj6", "Maj7", "Maj7#11", "Maj(9)", "Maj7(9)", "Maj6(9)", "aug",
	"min", "min6", "min7", "min7b5", "min(9)", "min7(9)", "min7(11)", "minMaj7",
	"minMaj7(9)", "dim", "dim7", "7th", "7sus4", "7b5", "7(9)", "7#11",
	"7(13)", "7(b9)", "7(b13)", "7(#9)", "Maj7aug", "7aug", "1+8", "1+5",
	"sus4", "1+2+5", "cancel", "autostart", "percussion",
}

// String returns the conventional short name of the chord type.
func (c ChordType) String() string {
	if c < 0 || int(c) >= NumChordTypes {
		return "ChordType(?)"
	}
	return chordNames[c]
}
