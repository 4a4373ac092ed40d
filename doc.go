// Package stylemeta decodes keyboard style files.
//
// A style file is an SMF (Standard MIDI File) container carrying extra
// arranger sections alongside the musical content: CASM (channel and
// transposition configuration per style part), OTS (One Touch Settings),
// MDB (a music database of tunes the style suits) and MH. stylemeta
// tokenizes the container and decodes those sections into plain Go values.
// It is read-only: it never writes or re-encodes files, and it does not
// interpret the musical content.
//
// # Quick Start
//
// Decoding a style file:
//
//	file, err := stylemeta.Open("PopRock.sty")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if file.CASM != nil {
//		for _, cseg := range file.CASM.Csegs {
//			fmt.Println(cseg.StyleParts)
//			for _, ct := range cseg.Ctabs {
//				fmt.Printf("  %s: ch%d -> ch%d\n", ct.Name, ct.SourceChannel+1, ct.DestChannel+1)
//			}
//		}
//	}
//
// Decode works on an in-memory buffer when the caller already owns the
// bytes; Open is a convenience that reads the file first.
//
// # Structure
//
// Every level of a style file uses the same framing - a 4-byte tag, a
// big-endian length, and a payload that may itself contain chunks - so the
// decoder is a recursive descent over one buffer:
//
//	[File]            - SMF header, track, then arranger sections
//	  ├─ [MH]         - opaque
//	  ├─ [CASM]       - one Cseg per CSEG chunk
//	  │    └─ [CSEG]  - style parts, Ctab records, Cntt tables
//	  ├─ [OTS]        - opaque track records
//	  └─ [MDB]        - one Record per FNRP chunk
//
// Decoded values reference the input buffer rather than copying it; keep
// the buffer alive while the File is in use. Nothing is ever mutated, so
// any number of decodes may share a buffer concurrently.
//
// # Failure Policy
//
// stylemeta distinguishes two decoding policies, chosen per call:
//
//   - Lenient (default): structural damage inside a section drops the
//     damaged item, unrecognized codes take documented defaults, and every
//     absorbed issue is recorded in File.Warnings.
//   - Strict (WithStrictDecoding): the same violations abort decoding with
//     an error naming the failing section.
//
// Truncated chunks are fatal under both policies; there is no safe resume
// position after one. Invalid text in optional string fields never aborts
// decoding - the field decodes as empty.
//
// # Two Record Generations
//
// CTAB channel records exist in two on-disk layouts: the legacy "Ctab"
// chunk with a single transposition table, and the current "Ctb2" chunk
// with an explicit middle range and a low/mid/high table triple, plus a
// guitar variant that reuses rule codes with different meanings. The
// decoder handles version skew internally; both decode to the same Ctab
// type, distinguishable by len(Tables).
package stylemeta
