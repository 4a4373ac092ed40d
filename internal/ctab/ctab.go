// Package ctab decodes CTAB channel records, the densest structures in a
// style file: per-channel routing, two mute bitfields, a key/chord identity
// pair and the transposition tables, across two on-disk generations.
package ctab

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/simonhull/stylemeta/internal/types"
)

// Version distinguishes the two record generations. Field widths, byte
// counts and enum code meanings all depend on it, so every sub-decoder
// takes it as context; it is never stored on the record.
type Version int

const (
	// Version1 is the legacy layout ("Ctab" chunks): one transposition
	// table, optional sentinel-guarded special bytes, may be accompanied
	// by a Cntt chunk.
	Version1 Version = iota + 1

	// Version2 is the current layout ("Ctb2" chunks): explicit middle
	// range, three transposition tables, fixed special block.
	Version2
)

// Section sizes in bytes.
const (
	commonSize = 20 // shared prefix of both generations
	tableSize  = 6  // one transposition table
	v1Special  = 4  // legacy special block, after the sentinel byte
	v2Special  = 7  // current-generation special block
)

// Parse decodes one CTAB record payload. Warnings absorbed under the
// lenient policy are appended to file.Warnings.
//
// Structural damage (missing prefix bytes, missing tables) is an error
// under both policies: a record either decodes fully or not at all.
// Unrecognized enumeration codes error under strict and take the
// documented default under lenient.
func Parse(data []byte, ver Version, pol types.Policy, file *types.File) (types.Ctab, error) {
	var ct types.Ctab

	if len(data) < commonSize {
		return ct, &types.CorruptedSectionError{
			Section: "CTAB",
			Reason:  fmt.Sprintf("record is %d bytes, the common prefix needs %d", len(data), commonSize),
		}
	}

	src, err := nibble(data[0], "source channel", pol, file)
	if err != nil {
		return ct, err
	}
	ct.SourceChannel = src

	name, err := channelName(data[1:9], pol)
	if err != nil {
		return ct, err
	}
	ct.Name = name

	dest, err := nibble(data[9], "destination channel", pol, file)
	if err != nil {
		return ct, err
	}
	ct.DestChannel = dest

	ct.Editable = data[10] == 0

	ct.NoteMute, err = noteMute(data[11], data[12], pol)
	if err != nil {
		return ct, err
	}

	ct.ChordMute, err = chordMute(data[13:18], pol)
	if err != nil {
		return ct, err
	}

	ct.SourceKey, err = keyFromCode(data[18], pol, file)
	if err != nil {
		return ct, err
	}
	ct.SourceChordType, err = chordTypeFromCode(data[19], pol, file)
	if err != nil {
		return ct, err
	}

	rest := data[commonSize:]
	switch ver {
	case Version2:
		if len(rest) < 2+3*tableSize {
			return ct, &types.CorruptedSectionError{
				Section: "CTAB",
				Offset:  commonSize,
				Reason:  "cannot construct transposition tables",
			}
		}
		ct.MiddleRange = types.NoteRange{Low: rest[0] & 0x7F, High: rest[1] & 0x7F}
		ct.Tables = make([]types.Table, 0, 3)
		for i := 0; i < 3; i++ {
			tbl, err := parseTable(rest[2+i*tableSize:2+(i+1)*tableSize], ver, pol, file)
			if err != nil {
				return ct, err
			}
			ct.Tables = append(ct.Tables, tbl)
		}

		special := rest[2+3*tableSize:]
		if len(special) < v2Special {
			if pol == types.Strict {
				return ct, &types.CorruptedSectionError{
					Section: "CTAB",
					Offset:  commonSize + 2 + 3*tableSize,
					Reason:  "missing special bytes at the end of the record",
				}
			}
			file.Warnings = append(file.Warnings, types.Warning{
				Stage:   "CTAB",
				Message: "record is missing its trailing special bytes",
			})
		} else {
			ct.Special = special[:v2Special]
		}

	case Version1:
		// The middle-range boundary is not stored; the single table covers
		// the full note range.
		ct.MiddleRange = types.FullNoteRange
		if len(rest) < tableSize {
			return ct, &types.CorruptedSectionError{
				Section: "CTAB",
				Offset:  commonSize,
				Reason:  "cannot construct transposition table",
			}
		}
		tbl, err := parseTable(rest[:tableSize], ver, pol, file)
		if err != nil {
			return ct, err
		}
		ct.Tables = []types.Table{tbl}

		rest = rest[tableSize:]
		if len(rest) == 0 {
			return ct, &types.CorruptedSectionError{
				Section: "CTAB",
				Offset:  commonSize + tableSize,
				Reason:  "missing special-bytes sentinel",
			}
		}
		// A zero sentinel means no special block follows.
		if rest[0] != 0x00 {
			if len(rest) < 1+v1Special {
				if pol == types.Strict {
					return ct, &types.CorruptedSectionError{
						Section: "CTAB",
						Offset:  commonSize + tableSize,
						Reason:  "missing special bytes at the end of the record",
					}
				}
				file.Warnings = append(file.Warnings, types.Warning{
					Stage:   "CTAB",
					Message: "record is missing its trailing special bytes",
				})
			} else {
				ct.Special = rest[1 : 1+v1Special]
			}
		}

	default:
		return ct, &types.CorruptedSectionError{
			Section: "CTAB",
			Reason:  fmt.Sprintf("unknown record version %d", ver),
		}
	}

	return ct, nil
}

// nibble reads a 4-bit channel number stored in its own byte. Codes above
// 0x0F error under strict and are masked under lenient.
func nibble(b byte, what string, pol types.Policy, file *types.File) (uint8, error) {
	if b <= 0x0F {
		return b, nil
	}
	if pol == types.Strict {
		return 0, &types.UnknownCodeError{What: what, Code: b}
	}
	file.Warnings = append(file.Warnings, types.Warning{
		Stage:   "CTAB",
		Message: fmt.Sprintf("%s 0x%02X exceeds the channel range, masked", what, b),
	})
	return b & 0x0F, nil
}

// channelName decodes the space-padded 8-byte name field. Invalid text is
// an error under strict and an empty name under lenient.
func channelName(b []byte, pol types.Policy) (string, error) {
	if !utf8.Valid(b) {
		if pol == types.Strict {
			return "", &types.CorruptedSectionError{
				Section: "CTAB",
				Offset:  1,
				Reason:  "channel name is not valid text",
			}
		}
		return "", nil
	}
	return strings.TrimSpace(string(b)), nil
}

// noteMuteOrder lists the pitch classes in MSB-first bit order across the
// two note-mute bytes. The top four bits of the first byte are reserved.
var noteMuteOrder = [types.NumKeys]types.Key{
	types.KeyB, types.KeyBFlat, types.KeyA, types.KeyGSharp,
	types.KeyG, types.KeyFSharp, types.KeyF, types.KeyE,
	types.KeyEFlat, types.KeyD, types.KeyCSharp, types.KeyC,
}

// noteMute decodes the two-byte note-mute field into one flag per pitch
// class. The stored flag is the literal inversion of the raw bit: a cleared
// bit decodes to true. Reserved bits set in the first byte are rejected
// under strict and ignored under lenient.
func noteMute(b0, b1 byte, pol types.Policy) (map[types.Key]bool, error) {
	if b0 > 0x0F && pol == types.Strict {
		return nil, &types.CorruptedSectionError{
			Section: "CTAB",
			Offset:  11,
			Reason:  "reserved bits set in the note mute field",
		}
	}

	raw := uint16(b0)<<8 | uint16(b1)
	m := make(map[types.Key]bool, types.NumKeys)
	for i, key := range noteMuteOrder {
		mask := uint16(1) << (types.NumKeys - 1 - i)
		m[key] = raw&mask == 0
	}
	return m, nil
}

// chordMuteOrder lists the chord types in MSB-first bit order, starting at
// bit 4 of the first byte. ChordCancel has no mute bit, so only 36 of the
// 37 chord types appear.
var chordMuteOrder = [NumChordMuteBits]types.ChordType{
	// byte 0, low nibble
	types.ChordPercussion, types.ChordAutostart, types.ChordOnePlusTwoPlusFive, types.ChordSus4,
	// byte 1
	types.ChordOnePlusFive, types.ChordOnePlusEight, types.ChordSevenAug, types.ChordMaj7Aug,
	types.ChordSevenSharp9, types.ChordSevenFlat13, types.ChordSevenFlat9, types.ChordSeven13,
	// byte 2
	types.ChordSevenSharp11, types.ChordSeven9, types.ChordSevenFlat5, types.ChordSevenSus4,
	types.ChordSeven, types.ChordDim7, types.ChordDim, types.ChordMinMaj7_9,
	// byte 3
	types.ChordMinMaj7, types.ChordMin7_11, types.ChordMin7_9, types.ChordMin9,
	types.ChordMin7Flat5, types.ChordMin7, types.ChordMin6, types.ChordMin,
	// byte 4
	types.ChordAug, types.ChordMaj6_9, types.ChordMaj7_9, types.ChordMaj9,
	types.ChordMaj7Sharp11, types.ChordMaj7, types.ChordMaj6, types.ChordMaj,
}

// NumChordMuteBits is the number of usable bits in the chord-mute field.
const NumChordMuteBits = 36

// chordMute decodes the five-byte chord-mute field. A set bit decodes to
// true. The top nibble of the first byte is reserved-zero, rejected under
// strict and ignored under lenient.
func chordMute(b []byte, pol types.Policy) (map[types.ChordType]bool, error) {
	if b[0] > 0x0F && pol == types.Strict {
		return nil, &types.CorruptedSectionError{
			Section: "CTAB",
			Offset:  13,
			Reason:  "reserved bits set in the chord mute field",
		}
	}

	m := make(map[types.ChordType]bool, NumChordMuteBits)
	for i, chord := range chordMuteOrder {
		bit := i + 4 // skip the reserved nibble
		mask := byte(1) << (7 - bit%8)
		m[chord] = b[bit/8]&mask != 0
	}
	return m, nil
}

// keyFromCode maps an on-disk key code to its Key. Unknown codes error
// under strict and default to C under lenient.
func keyFromCode(b byte, pol types.Policy, file *types.File) (types.Key, error) {
	if int(b) < types.NumKeys {
		return types.Key(b), nil
	}
	if pol == types.Strict {
		return 0, &types.UnknownCodeError{What: "key", Code: b}
	}
	file.Warnings = append(file.Warnings, types.Warning{
		Stage:   "CTAB",
		Message: fmt.Sprintf("unknown key code 0x%02X, defaulting to C", b),
	})
	return types.KeyC, nil
}

// chordTypeFromCode maps an on-disk chord type code (0x00-0x22) to its
// ChordType. Unknown codes error under strict and default to Maj under
// lenient.
func chordTypeFromCode(b byte, pol types.Policy, file *types.File) (types.ChordType, error) {
	if b <= byte(types.ChordCancel) {
		return types.ChordType(b), nil
	}
	if pol == types.Strict {
		return 0, &types.UnknownCodeError{What: "chord type", Code: b}
	}
	file.Warnings = append(file.Warnings, types.Warning{
		Stage:   "CTAB",
		Message: fmt.Sprintf("unknown chord type code 0x%02X, defaulting to Maj", b),
	})
	return types.ChordMaj, nil
}
