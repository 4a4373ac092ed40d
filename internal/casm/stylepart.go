package casm

import (
	"bytes"
	"fmt"

	"github.com/simonhull/stylemeta/internal/types"
)

// ParseStyleParts decodes an Sdec declaration: a comma-separated ASCII list
// of style-part names, matched case-sensitively against the closed
// seventeen-entry enumeration. Any unrecognized token is an error under
// both policies — a declaration naming an unknown section cannot be
// meaningfully repaired.
func ParseStyleParts(data []byte) ([]types.StylePart, error) {
	tokens := bytes.Split(data, []byte{','})
	parts := make([]types.StylePart, 0, len(tokens))
	for _, token := range tokens {
		part, ok := types.StylePartByName(string(token))
		if !ok {
			return nil, fmt.Errorf("unknown style part %q", token)
		}
		parts = append(parts, part)
	}
	return parts, nil
}
