// Package casm decodes the CASM arrangement section: a sequence of CSEG
// sub-sections, each carrying a style-part declaration and the channel
// records that apply to those parts.
package casm

import (
	"fmt"

	"github.com/simonhull/stylemeta/internal/chunk"
	"github.com/simonhull/stylemeta/internal/ctab"
	"github.com/simonhull/stylemeta/internal/types"
)

// Parse decodes a CASM section payload into file.CASM.
//
// Only CSEG chunks are legal at CASM scope. Under strict, a foreign chunk
// or a malformed CSEG is an error; under lenient, it drops the offending
// item and stops yielding further CSEGs from that position, leaving the
// ones already decoded in place.
func Parse(data []byte, pol types.Policy, file *types.File) error {
	section := &types.Casm{}

	s := chunk.NewScanner(data)
	for s.Scan() {
		c := s.Chunk()
		if c.Tag != chunk.TagCseg {
			if pol == types.Strict {
				return &types.CorruptedSectionError{
					Section: "CASM",
					Offset:  c.Offset,
					Reason:  fmt.Sprintf("chunk %q does not belong in a CASM section", c.Tag),
				}
			}
			file.Warnings = append(file.Warnings, types.Warning{
				Stage:   "CASM",
				Message: fmt.Sprintf("chunk %q does not belong in a CASM section, stopping", c.Tag),
				Offset:  c.Offset,
			})
			break
		}

		cseg, err := parseCseg(c.Data, pol, file)
		if err != nil {
			if pol == types.Strict {
				return fmt.Errorf("CSEG %d: %w", len(section.Csegs), err)
			}
			file.Warnings = append(file.Warnings, types.Warning{
				Stage:   "CASM",
				Message: fmt.Sprintf("dropping malformed CSEG %d: %v", len(section.Csegs), err),
				Offset:  c.Offset,
			})
			break
		}
		section.Csegs = append(section.Csegs, cseg)
	}
	if err := s.Err(); err != nil {
		// Truncation, fatal under both policies.
		return err
	}

	file.CASM = section
	return nil
}

// parseCseg decodes one CSEG payload. A CSEG holds Sdec style-part
// declarations, Ctab/Ctb2 channel records and opaque Cntt content tables;
// any other tag at this scope is a structural violation regardless of
// policy. A record either decodes fully or fails the whole CSEG — there is
// no half-decoded record.
func parseCseg(data []byte, pol types.Policy, file *types.File) (types.Cseg, error) {
	var cseg types.Cseg

	s := chunk.NewScanner(data)
	for s.Scan() {
		c := s.Chunk()
		switch c.Tag {
		case chunk.TagSdec:
			parts, err := ParseStyleParts(c.Data)
			if err != nil {
				return cseg, &types.CorruptedSectionError{
					Section: "CSEG",
					Offset:  c.Offset,
					Reason:  err.Error(),
				}
			}
			cseg.StyleParts = append(cseg.StyleParts, parts...)

		case chunk.TagCtab:
			record, err := ctab.Parse(c.Data, ctab.Version1, pol, file)
			if err != nil {
				return cseg, err
			}
			cseg.Ctabs = append(cseg.Ctabs, record)

		case chunk.TagCtb2:
			record, err := ctab.Parse(c.Data, ctab.Version2, pol, file)
			if err != nil {
				return cseg, err
			}
			cseg.Ctabs = append(cseg.Ctabs, record)

		case chunk.TagCntt:
			// Retained opaque; interpretation is out of scope.
			cseg.Cntt = append(cseg.Cntt, c.Data)

		default:
			return cseg, &types.CorruptedSectionError{
				Section: "CSEG",
				Offset:  c.Offset,
				Reason:  fmt.Sprintf("chunk %q does not belong in a CSEG section", c.Tag),
			}
		}
	}
	if err := s.Err(); err != nil {
		return cseg, err
	}

	return cseg, nil
}
