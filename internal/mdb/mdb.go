// Package mdb decodes the music database section (FNRc): tempo, time
// signature and search metadata for the tunes a style was built for.
package mdb

import (
	"fmt"
	"unicode/utf8"

	"github.com/simonhull/stylemeta/internal/chunk"
	"github.com/simonhull/stylemeta/internal/types"
)

// prefixSize is the fixed record prefix: 24-bit tempo plus the two
// signature bytes.
const prefixSize = 5

// Parse decodes an FNRc section payload into file.MDB.
//
// Only FNRP record chunks are decoded at this scope; under strict, a
// foreign chunk or a malformed record is an error, under lenient it drops
// the offending item and stops yielding further records.
func Parse(data []byte, pol types.Policy, file *types.File) error {
	section := &types.Mdb{}

	s := chunk.NewScanner(data)
	for s.Scan() {
		c := s.Chunk()
		if c.Tag != chunk.TagRecord {
			if pol == types.Strict {
				return &types.CorruptedSectionError{
					Section: "MDB",
					Offset:  c.Offset,
					Reason:  fmt.Sprintf("chunk %q does not belong in an MDB section", c.Tag),
				}
			}
			file.Warnings = append(file.Warnings, types.Warning{
				Stage:   "MDB",
				Message: fmt.Sprintf("chunk %q does not belong in an MDB section, stopping", c.Tag),
				Offset:  c.Offset,
			})
			break
		}

		record, err := parseRecord(c.Data)
		if err != nil {
			if pol == types.Strict {
				return fmt.Errorf("record %d: %w", len(section.Records), err)
			}
			file.Warnings = append(file.Warnings, types.Warning{
				Stage:   "MDB",
				Message: fmt.Sprintf("dropping malformed record %d: %v", len(section.Records), err),
				Offset:  c.Offset,
			})
			break
		}
		section.Records = append(section.Records, record)
	}
	if err := s.Err(); err != nil {
		return err
	}

	file.MDB = section
	return nil
}

// parseRecord decodes one FNRP record: a fixed prefix followed by string
// sub-chunks read in arrival order. The format does not promise well-ordered
// sub-chunks, so the first chunk of each string kind wins; unrecognized tags
// at this scope are ignored rather than rejected, and invalid text degrades
// to an empty value under both policies.
func parseRecord(data []byte) (types.Record, error) {
	var record types.Record

	if len(data) < prefixSize {
		return record, &types.CorruptedSectionError{
			Section: "MDB",
			Reason:  fmt.Sprintf("record is %d bytes, the prefix needs %d", len(data), prefixSize),
		}
	}

	record.Tempo = uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
	record.Signature = types.Signature{Upper: data[3], Lower: data[4]}

	seen := make(map[chunk.Tag]bool, 4)
	s := chunk.NewScanner(data[prefixSize:])
	for s.Scan() {
		c := s.Chunk()
		if seen[c.Tag] {
			continue
		}
		switch c.Tag {
		case chunk.TagTitle:
			record.Title = cleanText(c.Data)
		case chunk.TagGenre:
			record.Genre = cleanText(c.Data)
		case chunk.TagKeyword1:
			record.Keyword1 = cleanText(c.Data)
		case chunk.TagKeyword2:
			record.Keyword2 = cleanText(c.Data)
		default:
			continue
		}
		seen[c.Tag] = true
	}
	if err := s.Err(); err != nil {
		return record, err
	}

	return record, nil
}

// cleanText decodes a string field, degrading invalid text to empty. Never
// fatal under either policy.
func cleanText(b []byte) string {
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}
