package ctab

import (
	"bytes"
	"errors"
	"testing"

	"github.com/simonhull/stylemeta/internal/types"
)

// buildPrefix assembles the 20-byte prefix shared by both generations.
func buildPrefix(t *testing.T) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	buf.WriteByte(0x08)                                   // source channel 9
	buf.WriteString("BASS    ")                           // name, space padded
	buf.WriteByte(0x0A)                                   // dest channel 11
	buf.WriteByte(0x00)                                   // editable
	buf.Write([]byte{0x00, 0x00})                         // note mute, all bits clear
	buf.Write([]byte{0x0F, 0xFF, 0xFF, 0xFF, 0xFF})       // chord mute, all usable bits set
	buf.WriteByte(byte(types.KeyC))                       // source key
	buf.WriteByte(byte(types.ChordMin))                   // source chord type
	if buf.Len() != commonSize {
		t.Fatalf("prefix builder produced %d bytes, want %d", buf.Len(), commonSize)
	}
	return buf.Bytes()
}

// buildTable assembles one 6-byte transposition table.
func buildTable(ntr, ntt, highKey, low, high, retrig byte) []byte {
	return []byte{ntr, ntt, highKey, low, high, retrig}
}

// buildV1 assembles a legacy record: prefix, one table, sentinel, optional
// special bytes.
func buildV1(t *testing.T, table []byte, sentinel byte, special []byte) []byte {
	t.Helper()

	data := buildPrefix(t)
	data = append(data, table...)
	data = append(data, sentinel)
	data = append(data, special...)
	return data
}

// buildV2 assembles a current-generation record: prefix, middle range,
// three tables, seven special bytes.
func buildV2(t *testing.T, low, high byte, tables [][]byte, special []byte) []byte {
	t.Helper()

	data := buildPrefix(t)
	data = append(data, low, high)
	for _, tbl := range tables {
		data = append(data, tbl...)
	}
	data = append(data, special...)
	return data
}

func defaultTable() []byte {
	return buildTable(0x00, 0x01, byte(types.KeyG), 0, 127, 0x01)
}

func TestParse_Version1(t *testing.T) {
	file := &types.File{}
	data := buildV1(t, defaultTable(), 0x00, nil)

	ct, err := Parse(data, Version1, types.Lenient, file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ct.SourceChannel != 0x08 {
		t.Errorf("expected source channel 8, got %d", ct.SourceChannel)
	}
	if ct.Name != "BASS" {
		t.Errorf("expected name \"BASS\", got %q", ct.Name)
	}
	if ct.DestChannel != 0x0A {
		t.Errorf("expected dest channel 10, got %d", ct.DestChannel)
	}
	if !ct.Editable {
		t.Error("expected record to be editable")
	}
	if ct.SourceKey != types.KeyC {
		t.Errorf("expected source key C, got %s", ct.SourceKey)
	}
	if ct.SourceChordType != types.ChordMin {
		t.Errorf("expected source chord min, got %s", ct.SourceChordType)
	}
	if len(ct.Tables) != 1 {
		t.Fatalf("legacy record must have exactly one table, got %d", len(ct.Tables))
	}
	if ct.MiddleRange != types.FullNoteRange {
		t.Errorf("legacy middle range must default to the full note range, got %+v", ct.MiddleRange)
	}
	if ct.Special != nil {
		t.Errorf("zero sentinel must not produce special bytes, got %v", ct.Special)
	}
	if len(file.Warnings) != 0 {
		t.Errorf("clean record produced warnings: %v", file.Warnings)
	}
}

func TestParse_Version1_SentinelConsumesSpecial(t *testing.T) {
	file := &types.File{}
	special := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	data := buildV1(t, defaultTable(), 0x01, special)

	ct, err := Parse(data, Version1, types.Strict, file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(ct.Special, special) {
		t.Errorf("expected special bytes %v, got %v", special, ct.Special)
	}
}

func TestParse_Version1_MissingSpecial(t *testing.T) {
	// Non-zero sentinel but only two trailing bytes.
	data := buildV1(t, defaultTable(), 0x01, []byte{0x01, 0x02})

	if _, err := Parse(data, Version1, types.Strict, &types.File{}); err == nil {
		t.Error("strict decoding must reject a short special block")
	}

	file := &types.File{}
	ct, err := Parse(data, Version1, types.Lenient, file)
	if err != nil {
		t.Fatalf("lenient decoding must absorb a short special block, got %v", err)
	}
	if ct.Special != nil {
		t.Errorf("short special block must decode as absent, got %v", ct.Special)
	}
	if len(file.Warnings) == 0 {
		t.Error("absorbing the short special block must leave a warning")
	}
}

func TestParse_Version2(t *testing.T) {
	file := &types.File{}
	tables := [][]byte{
		buildTable(0x00, 0x01, byte(types.KeyG), 0, 59, 0x00),
		buildTable(0x00, 0x02, byte(types.KeyG), 60, 71, 0x01),
		buildTable(0x00, 0x03, byte(types.KeyG), 72, 127, 0x02),
	}
	special := []byte{1, 2, 3, 4, 5, 6, 7}
	data := buildV2(t, 60, 71, tables, special)

	ct, err := Parse(data, Version2, types.Strict, file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ct.Tables) != 3 {
		t.Fatalf("current-generation record must have exactly three tables, got %d", len(ct.Tables))
	}
	// Low/mid/high order is fixed; the distinct rules and ranges prove it.
	if ct.Tables[0].Rule != types.RuleMelody || ct.Tables[1].Rule != types.RuleChord || ct.Tables[2].Rule != types.RuleMelodicMinor {
		t.Errorf("tables decoded out of order: %s / %s / %s",
			ct.Tables[0].Rule, ct.Tables[1].Rule, ct.Tables[2].Rule)
	}
	if ct.Tables[1].Range != (types.NoteRange{Low: 60, High: 71}) {
		t.Errorf("unexpected middle table range %+v", ct.Tables[1].Range)
	}
	if ct.MiddleRange != (types.NoteRange{Low: 60, High: 71}) {
		t.Errorf("expected explicit middle range 60-71, got %+v", ct.MiddleRange)
	}
	if !bytes.Equal(ct.Special, special) {
		t.Errorf("expected special bytes %v, got %v", special, ct.Special)
	}
}

func TestParse_Version2_MissingSpecial(t *testing.T) {
	tables := [][]byte{defaultTable(), defaultTable(), defaultTable()}
	data := buildV2(t, 60, 71, tables, nil)

	if _, err := Parse(data, Version2, types.Strict, &types.File{}); err == nil {
		t.Error("strict decoding requires the seven trailing special bytes")
	}

	file := &types.File{}
	ct, err := Parse(data, Version2, types.Lenient, file)
	if err != nil {
		t.Fatalf("lenient decoding must absorb missing special bytes, got %v", err)
	}
	if ct.Special != nil {
		t.Errorf("missing special block must decode as absent, got %v", ct.Special)
	}
	if len(file.Warnings) == 0 {
		t.Error("absorbing missing special bytes must leave a warning")
	}
}

func TestParse_Version2_MissingTables(t *testing.T) {
	data := buildPrefix(t)
	data = append(data, 60, 71)
	data = append(data, defaultTable()...) // one table instead of three

	for _, pol := range []types.Policy{types.Strict, types.Lenient} {
		if _, err := Parse(data, Version2, pol, &types.File{}); err == nil {
			t.Errorf("%s: missing tables must fail the whole record", pol)
		}
	}
}

func TestParse_TruncatedPrefix(t *testing.T) {
	data := buildPrefix(t)[:12]

	for _, pol := range []types.Policy{types.Strict, types.Lenient} {
		_, err := Parse(data, Version1, pol, &types.File{})
		var ce *types.CorruptedSectionError
		if !errors.As(err, &ce) {
			t.Errorf("%s: expected CorruptedSectionError for a short prefix, got %v", pol, err)
		}
	}
}

func TestParse_InvalidName(t *testing.T) {
	data := buildV1(t, defaultTable(), 0x00, nil)
	copy(data[1:9], []byte{0xFF, 0xFE, 0xFF, 0xFE, 0xFF, 0xFE, 0xFF, 0xFE})

	if _, err := Parse(data, Version1, types.Strict, &types.File{}); err == nil {
		t.Error("strict decoding must reject an invalid channel name")
	}

	ct, err := Parse(data, Version1, types.Lenient, &types.File{})
	if err != nil {
		t.Fatalf("lenient decoding must absorb an invalid channel name, got %v", err)
	}
	if ct.Name != "" {
		t.Errorf("invalid channel name must decode as empty, got %q", ct.Name)
	}
}

func TestNoteMute_AllBitsClear(t *testing.T) {
	m, err := noteMute(0x00, 0x00, types.Strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m) != types.NumKeys {
		t.Fatalf("expected %d entries, got %d", types.NumKeys, len(m))
	}
	for key, stored := range m {
		if !stored {
			t.Errorf("cleared bit must decode to true, key %s is false", key)
		}
	}
}

func TestNoteMute_AllBitsSet(t *testing.T) {
	m, err := noteMute(0x0F, 0xFF, types.Strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for key, stored := range m {
		if stored {
			t.Errorf("set bit must decode to false, key %s is true", key)
		}
	}
}

func TestNoteMute_SingleBit(t *testing.T) {
	// Bit 0 of the second byte is C.
	m, err := noteMute(0x00, 0x01, types.Strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m[types.KeyC] {
		t.Error("expected C bit set to decode to false")
	}
	if !m[types.KeyCSharp] || !m[types.KeyB] {
		t.Error("unrelated keys must stay true")
	}
}

func TestNoteMute_ReservedBits(t *testing.T) {
	if _, err := noteMute(0x10, 0x00, types.Strict); err == nil {
		t.Error("strict decoding must reject reserved note-mute bits")
	}

	m, err := noteMute(0x10, 0x00, types.Lenient)
	if err != nil {
		t.Fatalf("lenient decoding must ignore reserved note-mute bits, got %v", err)
	}
	if len(m) != types.NumKeys {
		t.Errorf("expected %d entries, got %d", types.NumKeys, len(m))
	}
}

func TestChordMute_AllOnes(t *testing.T) {
	m, err := chordMute([]byte{0x0F, 0xFF, 0xFF, 0xFF, 0xFF}, types.Strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m) != NumChordMuteBits {
		t.Fatalf("expected %d entries, got %d", NumChordMuteBits, len(m))
	}
	for chord, notMuted := range m {
		if !notMuted {
			t.Errorf("all-ones pattern must decode every chord to true, %s is false", chord)
		}
	}
	if _, ok := m[types.ChordCancel]; ok {
		t.Error("cancel has no mute bit and must not appear")
	}
}

func TestChordMute_AllZeros(t *testing.T) {
	m, err := chordMute([]byte{0x00, 0x00, 0x00, 0x00, 0x00}, types.Strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for chord, notMuted := range m {
		if notMuted {
			t.Errorf("all-zeros pattern must decode every chord to false, %s is true", chord)
		}
	}
}

func TestChordMute_BitPositions(t *testing.T) {
	// Bit 0 of the usable field (bit 3 of byte 0) is the percussion entry;
	// the last bit (bit 0 of byte 4) is Maj.
	m, err := chordMute([]byte{0x08, 0x00, 0x00, 0x00, 0x01}, types.Strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m[types.ChordPercussion] {
		t.Error("expected percussion bit to decode to true")
	}
	if !m[types.ChordMaj] {
		t.Error("expected Maj bit to decode to true")
	}
	if m[types.ChordSus4] {
		t.Error("expected sus4 bit to decode to false")
	}
}

func TestChordMute_ReservedBits(t *testing.T) {
	if _, err := chordMute([]byte{0xF0, 0, 0, 0, 0}, types.Strict); err == nil {
		t.Error("strict decoding must reject reserved chord-mute bits")
	}
	if _, err := chordMute([]byte{0xF0, 0, 0, 0, 0}, types.Lenient); err != nil {
		t.Errorf("lenient decoding must ignore reserved chord-mute bits, got %v", err)
	}
}

func TestParse_UnknownSourceKey(t *testing.T) {
	data := buildV1(t, defaultTable(), 0x00, nil)
	data[18] = 0x0C // one past the last key code

	if _, err := Parse(data, Version1, types.Strict, &types.File{}); err == nil {
		t.Error("strict decoding must reject an unknown key code")
	}

	file := &types.File{}
	ct, err := Parse(data, Version1, types.Lenient, file)
	if err != nil {
		t.Fatalf("lenient decoding must default an unknown key code, got %v", err)
	}
	if ct.SourceKey != types.KeyC {
		t.Errorf("unknown key must default to C, got %s", ct.SourceKey)
	}
	if len(file.Warnings) == 0 {
		t.Error("defaulting an unknown key must leave a warning")
	}
}
