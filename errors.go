package stylemeta

import (
	"github.com/simonhull/stylemeta/internal/types"
)

// TruncatedChunkError is an alias to types.TruncatedChunkError.
// Re-exporting from internal/types to keep the public API at the root.
type TruncatedChunkError = types.TruncatedChunkError

// CorruptedSectionError is an alias to types.CorruptedSectionError.
// Re-exporting from internal/types to keep the public API at the root.
type CorruptedSectionError = types.CorruptedSectionError

// UnknownCodeError is an alias to types.UnknownCodeError.
// Re-exporting from internal/types to keep the public API at the root.
type UnknownCodeError = types.UnknownCodeError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to keep the public API at the root.
type UnsupportedFormatError = types.UnsupportedFormatError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to keep the public API at the root.
type Warning = types.Warning
