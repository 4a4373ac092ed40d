package stylemeta

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/stylemeta/internal/casm"
	"github.com/simonhull/stylemeta/internal/chunk"
	"github.com/simonhull/stylemeta/internal/mdb"
	"github.com/simonhull/stylemeta/internal/ots"
	"github.com/simonhull/stylemeta/internal/types"
)

// Decode decodes a style file from an in-memory buffer.
//
// The buffer must start with the SMF header every style file carries; the
// arranger sections (MH, CASM, OTS, MDB) are then extracted from the same
// top-level chunk stream, each section taking the first chunk with its tag
// and ignoring later duplicates. A file may contain any subset of the
// sections; absent ones leave their File field nil.
//
// The returned File borrows from data at every nesting depth — payload
// slices are views, not copies. Keep data alive and unmodified for as long
// as the File is in use. Decoding never mutates data, so any number of
// Decode calls may share one buffer concurrently.
//
// Under the default lenient policy, structural damage inside a section
// drops the damaged item and is recorded in File.Warnings; pass
// WithStrictDecoding to turn every violation into an error instead.
// Truncated chunks are an error under both policies.
//
// Example:
//
//	data, _ := os.ReadFile("PopRock.sty")
//	file, err := stylemeta.Decode(data)
//	if err != nil {
//		return err
//	}
//	for _, cseg := range file.CASM.Csegs {
//		fmt.Println(cseg.StyleParts)
//	}
func Decode(data []byte, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	pol := types.Lenient
	if options.strictDecoding {
		pol = types.Strict
	}

	if len(data) < chunk.HeaderSize || chunk.Tag(data[:4]) != chunk.TagMThd {
		return nil, &types.UnsupportedFormatError{
			Reason: "missing MThd header",
		}
	}

	file := &types.File{Size: len(data)}

	// Each section independently re-filters the same top-level stream for
	// its own tag and descends into the first match.
	mh, found, err := chunk.First(data, chunk.TagMH)
	if err != nil {
		return nil, fmt.Errorf("MH section: %w", err)
	}
	if found {
		file.MH = mh
	}

	payload, found, err := chunk.First(data, chunk.TagCasm)
	if err != nil {
		return nil, fmt.Errorf("CASM section: %w", err)
	}
	if found {
		if err := casm.Parse(payload, pol, file); err != nil {
			return nil, fmt.Errorf("CASM section: %w", err)
		}
	}

	payload, found, err = chunk.First(data, chunk.TagOts)
	if err != nil {
		return nil, fmt.Errorf("OTS section: %w", err)
	}
	if found {
		if err := ots.Parse(payload, file); err != nil {
			return nil, fmt.Errorf("OTS section: %w", err)
		}
	}

	payload, found, err = chunk.First(data, chunk.TagMdb)
	if err != nil {
		return nil, fmt.Errorf("MDB section: %w", err)
	}
	if found {
		if err := mdb.Parse(payload, pol, file); err != nil {
			return nil, fmt.Errorf("MDB section: %w", err)
		}
	}

	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// Open reads and decodes a style file from disk.
//
// Open reads the whole file into memory and hands the buffer to Decode;
// style files are small (tens of kilobytes), so there is nothing to stream.
//
// Example:
//
//	file, err := stylemeta.Open("PopRock.sty")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%d warnings\n", len(file.Warnings))
func Open(path string, opts ...Option) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	file, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	file.Path = path

	return file, nil
}

// OpenContext opens a file with context support for cancellation.
//
// Decoding a single style file is a bounded in-memory computation, so the
// context is checked once before starting rather than threaded through the
// decoders.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple style files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, the first error is returned and the partial results are discarded.
//
// Example:
//
//	files, err := stylemeta.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %d CSEGs\n", f.Path, len(f.CASM.Csegs))
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
