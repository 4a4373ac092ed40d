package stylemeta

import (
	"github.com/simonhull/stylemeta/internal/types"
)

// File is an alias to types.File, the decoded style file.
// Re-exporting from internal/types to keep the public API at the root.
type File = types.File

// Section and record types, re-exported the same way.
type (
	Casm      = types.Casm
	Cseg      = types.Cseg
	Ctab      = types.Ctab
	Table     = types.Table
	NoteRange = types.NoteRange
	Mdb       = types.Mdb
	Record    = types.Record
	Signature = types.Signature
	Ots       = types.Ots
	OtsTrack  = types.OtsTrack
)

// Enumerations, re-exported the same way.
type (
	Key               = types.Key
	ChordType         = types.ChordType
	StylePart         = types.StylePart
	NoteTransposition = types.NoteTransposition
	TranspositionRule = types.TranspositionRule
	RetriggerRule     = types.RetriggerRule
)

// FullNoteRange covers the entire MIDI note range.
var FullNoteRange = types.FullNoteRange

// StylePartByName maps an Sdec token (for example "Fill In BA") to its
// StylePart. The match is case-sensitive, as in the format itself.
func StylePartByName(name string) (StylePart, bool) {
	return types.StylePartByName(name)
}

// Re-export all key constants.
const (
	KeyC      = types.KeyC
	KeyCSharp = types.KeyCSharp
	KeyD      = types.KeyD
	KeyEFlat  = types.KeyEFlat
	KeyE      = types.KeyE
	KeyF      = types.KeyF
	KeyFSharp = types.KeyFSharp
	KeyG      = types.KeyG
	KeyGSharp = types.KeyGSharp
	KeyA      = types.KeyA
	KeyBFlat  = types.KeyBFlat
	KeyB      = types.KeyB

	NumKeys = types.NumKeys
)

// Re-export all chord type constants.
const (
	ChordMaj                = types.ChordMaj
	ChordMaj6               = types.ChordMaj6
	ChordMaj7               = types.ChordMaj7
	ChordMaj7Sharp11        = types.ChordMaj7Sharp11
	ChordMaj9               = types.ChordMaj9
	ChordMaj7_9             = types.ChordMaj7_9
	ChordMaj6_9             = types.ChordMaj6_9
	ChordAug                = types.ChordAug
	ChordMin                = types.ChordMin
	ChordMin6               = types.ChordMin6
	ChordMin7               = types.ChordMin7
	ChordMin7Flat5          = types.ChordMin7Flat5
	ChordMin9               = types.ChordMin9
	ChordMin7_9             = types.ChordMin7_9
	ChordMin7_11            = types.ChordMin7_11
	ChordMinMaj7            = types.ChordMinMaj7
	ChordMinMaj7_9          = types.ChordMinMaj7_9
	ChordDim                = types.ChordDim
	ChordDim7               = types.ChordDim7
	ChordSeven              = types.ChordSeven
	ChordSevenSus4          = types.ChordSevenSus4
	ChordSevenFlat5         = types.ChordSevenFlat5
	ChordSeven9             = types.ChordSeven9
	ChordSevenSharp11       = types.ChordSevenSharp11
	ChordSeven13            = types.ChordSeven13
	ChordSevenFlat9         = types.ChordSevenFlat9
	ChordSevenFlat13        = types.ChordSevenFlat13
	ChordSevenSharp9        = types.ChordSevenSharp9
	ChordMaj7Aug            = types.ChordMaj7Aug
	ChordSevenAug           = types.ChordSevenAug
	ChordOnePlusEight       = types.ChordOnePlusEight
	ChordOnePlusFive        = types.ChordOnePlusFive
	ChordSus4               = types.ChordSus4
	ChordOnePlusTwoPlusFive = types.ChordOnePlusTwoPlusFive
	ChordCancel             = types.ChordCancel
	ChordAutostart          = types.ChordAutostart
	ChordPercussion         = types.ChordPercussion

	NumChordTypes = types.NumChordTypes
)

// Re-export all style part constants.
const (
	PartIntroA   = types.PartIntroA
	PartIntroB   = types.PartIntroB
	PartIntroC   = types.PartIntroC
	PartIntroD   = types.PartIntroD
	PartMainA    = types.PartMainA
	PartMainB    = types.PartMainB
	PartMainC    = types.PartMainC
	PartMainD    = types.PartMainD
	PartFillInAA = types.PartFillInAA
	PartFillInBB = types.PartFillInBB
	PartFillInCC = types.PartFillInCC
	PartFillInDD = types.PartFillInDD
	PartFillInBA = types.PartFillInBA
	PartEndingA  = types.PartEndingA
	PartEndingB  = types.PartEndingB
	PartEndingC  = types.PartEndingC
	PartEndingD  = types.PartEndingD
)

// Re-export the transposition table enumerations.
const (
	RootTransposition   = types.RootTransposition
	RootFixed           = types.RootFixed
	GuitarTransposition = types.GuitarTransposition

	RuleBypass             = types.RuleBypass
	RuleMelody             = types.RuleMelody
	RuleChord              = types.RuleChord
	RuleMelodicMinor       = types.RuleMelodicMinor
	RuleHarmonicMinor      = types.RuleHarmonicMinor
	RuleMelodicMinorFifth  = types.RuleMelodicMinorFifth
	RuleHarmonicMinorFifth = types.RuleHarmonicMinorFifth
	RuleNaturalMinor       = types.RuleNaturalMinor
	RuleNaturalMinorFifth  = types.RuleNaturalMinorFifth
	RuleDorian             = types.RuleDorian
	RuleDorianFifth        = types.RuleDorianFifth
	RuleBass               = types.RuleBass
	RuleAllPurpose         = types.RuleAllPurpose
	RuleStroke             = types.RuleStroke
	RuleArpeggio           = types.RuleArpeggio

	RetriggerStop             = types.RetriggerStop
	RetriggerPitchShift       = types.RetriggerPitchShift
	RetriggerPitchShiftToRoot = types.RetriggerPitchShiftToRoot
	RetriggerRetrigger        = types.RetriggerRetrigger
	RetriggerToRoot           = types.RetriggerToRoot
	RetriggerNoteGenerator    = types.RetriggerNoteGenerator
)
