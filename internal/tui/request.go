package tui

import (
	"strings"

	"codeberg.org/critique/client/internal/analyze"
	"codeberg.org/critique/client/internal/draft"
)

// converts a draft into the wire request. Optional fields that are
// empty (or whitespace) in the draft become absent fields, never empty
// strings on the wire.
func buildRequest(d draft.Draft) analyze.Request {
	return analyze.Request{
		Language:    d.Language,
		Mode:        analyze.Mode(d.Mode),
		Problem:     strings.TrimSpace(d.Problem),
		Constraints: strings.TrimSpace(d.Constraints),
		Solution:    d.Solution,
	}
}
