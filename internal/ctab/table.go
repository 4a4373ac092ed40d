package ctab

import (
	"fmt"

	"github.com/simonhull/stylemeta/internal/types"
)

// parseTable decodes one 6-byte transposition table.
//
// The NTT byte carries the bass-mode flag in its top bit; the remaining
// seven bits are the rule code. Rule codes are reused between variants:
// legacy and current generations read some codes differently, and a table
// whose NTR is guitar reads codes 0x00-0x02 as the guitar rules.
func parseTable(b []byte, ver Version, pol types.Policy, file *types.File) (types.Table, error) {
	var tbl types.Table

	if len(b) < tableSize {
		return tbl, &types.CorruptedSectionError{
			Section: "CTAB",
			Reason:  "transposition table field too small",
		}
	}

	ntr, err := transpositionFromCode(b[0], ver, pol, file)
	if err != nil {
		return tbl, err
	}
	tbl.Transposition = ntr

	guitar := ntr == types.GuitarTransposition && ver == Version2
	rule, err := ruleFromCode(b[1]&0x7F, ver, guitar, pol, file)
	if err != nil {
		return tbl, err
	}
	tbl.Rule = rule
	tbl.BassOn = b[1]&0x80 != 0 && ver == Version2

	tbl.HighKey, err = keyFromCode(b[2], pol, file)
	if err != nil {
		return tbl, err
	}
	tbl.Range = types.NoteRange{Low: b[3] & 0x7F, High: b[4] & 0x7F}

	tbl.Retrigger, err = retriggerFromCode(b[5], pol, file)
	if err != nil {
		return tbl, err
	}

	return tbl, nil
}

// transpositionFromCode maps an NTR code to its NoteTransposition. The
// guitar code is a current-generation construct: under strict it is
// rejected in a legacy record.
func transpositionFromCode(b byte, ver Version, pol types.Policy, file *types.File) (types.NoteTransposition, error) {
	switch b {
	case 0x00:
		return types.RootTransposition, nil
	case 0x01:
		return types.RootFixed, nil
	case 0x02:
		if ver == Version1 && pol == types.Strict {
			return 0, &types.CorruptedSectionError{
				Section: "CTAB",
				Reason:  "guitar transposition mode in a legacy record",
			}
		}
		return types.GuitarTransposition, nil
	default:
		if pol == types.Strict {
			return 0, &types.UnknownCodeError{What: "transposition mode", Code: b}
		}
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "CTAB",
			Message: fmt.Sprintf("unknown transposition mode 0x%02X, defaulting to root transposition", b),
		})
		return types.RootTransposition, nil
	}
}

// ruleFromCode maps an NTT code (bass flag already stripped) to its
// TranspositionRule for the given generation and guitar context.
func ruleFromCode(b byte, ver Version, guitar bool, pol types.Policy, file *types.File) (types.TranspositionRule, error) {
	switch {
	case b == 0x00 && guitar:
		return types.RuleAllPurpose, nil
	case b == 0x00:
		return types.RuleBypass, nil
	case b == 0x01 && guitar:
		return types.RuleStroke, nil
	case b == 0x01:
		return types.RuleMelody, nil
	case b == 0x02 && guitar:
		return types.RuleArpeggio, nil
	case b == 0x02:
		return types.RuleChord, nil
	case b == 0x03 && ver == Version1:
		return types.RuleBass, nil
	case b == 0x03:
		return types.RuleMelodicMinor, nil
	case b == 0x04 && ver == Version1:
		return types.RuleMelodicMinor, nil
	case b == 0x04:
		return types.RuleMelodicMinorFifth, nil
	case b == 0x05:
		return types.RuleHarmonicMinor, nil
	case ver == Version1 && pol == types.Strict:
		// Codes past 0x05 only exist in the current generation.
		return 0, &types.UnknownCodeError{What: "legacy transposition rule", Code: b}
	case b == 0x06:
		return types.RuleHarmonicMinorFifth, nil
	case b == 0x07:
		return types.RuleNaturalMinor, nil
	case b == 0x08:
		return types.RuleNaturalMinorFifth, nil
	case b == 0x09:
		return types.RuleDorian, nil
	case b == 0x0A:
		return types.RuleDorianFifth, nil
	default:
		if pol == types.Strict {
			return 0, &types.UnknownCodeError{What: "transposition rule", Code: b}
		}
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "CTAB",
			Message: fmt.Sprintf("unknown transposition rule 0x%02X, defaulting to bypass", b),
		})
		return types.RuleBypass, nil
	}
}

// retriggerFromCode maps a retrigger rule code to its RetriggerRule.
// Unknown codes error under strict and default to stop under lenient.
func retriggerFromCode(b byte, pol types.Policy, file *types.File) (types.RetriggerRule, error) {
	if b <= byte(types.RetriggerNoteGenerator) {
		return types.RetriggerRule(b), nil
	}
	if pol == types.Strict {
		return 0, &types.UnknownCodeError{What: "retrigger rule", Code: b}
	}
	file.Warnings = append(file.Warnings, types.Warning{
		Stage:   "CTAB",
		Message: fmt.Sprintf("unknown retrigger rule 0x%02X, defaulting to stop", b),
	})
	return types.RetriggerStop, nil
}
