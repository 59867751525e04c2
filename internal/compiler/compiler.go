// Package compiler renders a transaction intent as Numscript.
//
// The output has one leading comment carrying the summary, one send statement
// per posting and one set_tx_meta statement per metadata entry, all in input
// order. Every function here is pure and safe for concurrent use.
package compiler

import (
	"fmt"
	"strings"

	"github.com/hance08/numscribe/internal/model"
)

// Result is a compiled script and the diagnostics raised while rendering it.
type Result struct {
	Script   string
	Warnings []Warning
}

// HasWarnings reports whether rendering raised any diagnostics.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// RenderMetadata renders one set_tx_meta statement per entry.
// Quotes inside keys or values are not escaped.
func RenderMetadata(entries []model.MetadataEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf(`set_tx_meta("%s", "%s")`, e.Key, e.Value))
	}
	return lines
}

// Compile renders the whole intent. A malformed posting aborts compilation and
// no partial script is returned.
func Compile(intent model.Intent) (*Result, error) {
	statements := make([]string, 0, len(intent.Postings))
	var warnings []Warning

	for i, p := range intent.Postings {
		stmt, w, err := RenderPosting(i, p)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		warnings = append(warnings, w...)
	}

	var sb strings.Builder
	sb.WriteString("// " + intent.Summary + "\n")
	if len(statements) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(statements, "\n\n"))
		sb.WriteString("\n")
	}

	if len(intent.Metadata) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(RenderMetadata(intent.Metadata), "\n"))
		sb.WriteString("\n")
	}

	return &Result{Script: sb.String(), Warnings: warnings}, nil
}
