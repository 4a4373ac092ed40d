package types

// NoteRange is an inclusive MIDI note range. Both bounds are 7-bit values
// (0-127).
type NoteRange struct {
	Low  uint8
	High uint8
}

// FullNoteRange covers the entire MIDI note range. Legacy CTAB records,
// which store no middle-range boundary, default to it.
var FullNoteRange = NoteRange{Low: 0, High: 127}

// NoteTransposition is the NTR field of a transposition table: how the
// source notes relate to the detected chord root.
type NoteTransposition int

const (
	// RootTransposition shifts notes with the chord root.
	RootTransposition NoteTransposition = iota // 0x00
	// RootFixed keeps the pitch as close as possible to the source.
	RootFixed // 0x01
	// GuitarTransposition simulates guitar voicings. Current generation only.
	GuitarTransposition // 0x02
)

// String returns the NTR name.
func (n NoteTransposition) String() string {
	switch n {
	case RootTransposition:
		return "root transposition"
	case RootFixed:
		return "root fixed"
	case GuitarTransposition:
		return "guitar"
	default:
		return "NoteTransposition(?)"
	}
}

// TranspositionRule is the NTT field of a transposition table: the rule used
// to move individual notes into the detected chord.
//
// The on-disk codes are shared between variants: which rule a code means
// depends on the record generation, and codes 0x00-0x02 mean the guitar
// rules when the table's NTR is guitar.
type TranspositionRule int

const (
	RuleBypass TranspositionRule = iota
	RuleMelody
	RuleChord
	RuleMelodicMinor
	RuleHarmonicMinor
	// Current generation only.
	RuleMelodicMinorFifth
	RuleHarmonicMinorFifth
	RuleNaturalMinor
	RuleNaturalMinorFifth
	RuleDorian
	RuleDorianFifth
	// Legacy generation only.
	RuleBass
	// Guitar NTR only (implies current generation).
	RuleAllPurpose
	RuleStroke
	RuleArpeggio
)

var ruleNames = map[TranspositionRule]string{
	RuleBypass:             "bypass",
	RuleMelody:             "melody",
	RuleChord:              "chord",
	RuleMelodicMinor:       "melodic minor",
	RuleHarmonicMinor:      "harmonic minor",
	RuleMelodicMinorFifth:  "melodic minor 5th",
	RuleHarmonicMinorFifth: "harmonic minor 5th",
	RuleNaturalMinor:       "natural minor",
	RuleNaturalMinorFifth:  "natural minor 5th",
	RuleDorian:             "dorian",
	RuleDorianFifth:        "dorian 5th",
	RuleBass:               "bass",
	RuleAllPurpose:         "all-purpose",
	RuleStroke:             "stroke",
	RuleArpeggio:           "arpeggio",
}

// String returns the NTT rule name.
func (r TranspositionRule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "TranspositionRule(?)"
}

// RetriggerRule describes what happens to a sounding note when the detected
// chord changes under it.
type RetriggerRule int

const (
	RetriggerStop RetriggerRule = iota // 0x00
	RetriggerPitchShift
	RetriggerPitchShiftToRoot
	RetriggerRetrigger
	RetriggerToRoot
	RetriggerNoteGenerator // 0x05
)

var retriggerNames = [...]string{
	"stop", "pitch shift", "pitch shift to root",
	"retrigger", "retrigger to root", "note generator",
}

// String returns the retrigger rule name.
func (r RetriggerRule) String() string {
	if r < 0 || int(r) >= len(retriggerNames) {
		return "RetriggerRule(?)"
	}
	return retriggerNames[r]
}

// Table is one 6-byte transposition table. Legacy records carry exactly one
// covering the full note range; current-generation records carry three, for
// the low, middle and high sub-ranges in that order.
type Table struct {
	// Transposition is the NTR field.
	Transposition NoteTransposition

	// Rule is the NTT field.
	Rule TranspositionRule

	// BassOn reports whether the bass-mode flag (bit 7 of the NTT byte) is
	// set. Only meaningful for current-generation records.
	BassOn bool

	// HighKey is the ceiling key: chords rooted above it are played an
	// octave down.
	HighKey Key

	// Range is the inclusive note range the table applies to; notes outside
	// it are moved to the nearest octave within.
	Range NoteRange

	// Retrigger selects the chord-change behavior.
	Retrigger RetriggerRule
}

// Ctab is one channel routing, mute and transposition record.
type Ctab struct {
	// SourceChannel is the MIDI source channel, 0x00 (channel 1) through
	// 0x0F (channel 16).
	SourceChannel uint8

	// Name of the source channel, trimmed of its space padding.
	Name string

	// DestChannel is the accompaniment MIDI channel. The format expects it
	// in channels 9-16 (sub-rhythm, rhythm, bass, chord 1, chord 2, pad,
	// phrase 1, phrase 2); the decoder does not enforce that.
	DestChannel uint8

	// Editable reports whether the source channel data may be edited
	// (stored byte 0x00 means editable).
	Editable bool

	// NoteMute holds one entry per pitch class. The stored value is the
	// literal decode of the bitfield: bit cleared means true. Whether true
	// is "muted" or "plays" is not settled by the format documentation.
	NoteMute map[Key]bool

	// ChordMute holds one entry per addressed chord type (36 of the 37;
	// ChordCancel has no mute bit). A set bit decodes to true.
	ChordMute map[ChordType]bool

	// SourceKey is the key the source channel was recorded in.
	SourceKey Key

	// SourceChordType is the chord type the source channel was recorded in.
	SourceChordType ChordType

	// Tables holds one table (legacy) or the low/mid/high triple (current),
	// in that fixed order.
	Tables []Table

	// MiddleRange is the inclusive note range of the middle table. Legacy
	// records, which do not store it, default to FullNoteRange.
	MiddleRange NoteRange

	// Special is the trailing byte span whose meaning the format does not
	// document. Preserved verbatim, nil when absent. A view into the input
	// buffer.
	Special []byte
}
