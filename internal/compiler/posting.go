package compiler

import (
	"fmt"
	"strings"

	"github.com/hance08/numscribe/internal/model"
)

// RenderPosting renders one send statement. index is the posting's position in
// the intent and is carried by any error or warning it produces.
func RenderPosting(index int, p model.Posting) (string, []Warning, error) {
	destination, warnings, err := renderDestination(index, p)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "send %s (\n", monetary(p.Asset, p.Amount))
	fmt.Fprintf(&sb, "  source = %s\n", RenderSource(p))
	fmt.Fprintf(&sb, "  destination = %s\n", destination)
	sb.WriteString(")")

	return sb.String(), warnings, nil
}

func renderDestination(index int, p model.Posting) (string, []Warning, error) {
	switch p.DestinationType {
	case model.DestinationSimple:
		if p.SimpleDestination == "" {
			return "", nil, &MalformedPostingError{Index: index, Reason: "has simple destination type but no destination account"}
		}
		return FormatAccount(p.SimpleDestination), nil, nil

	case model.DestinationSplit:
		if len(p.SplitRules) == 0 {
			return "", nil, &MalformedPostingError{Index: index, Reason: "has split destination type but no split rules"}
		}
		block, conflict, err := RenderSplit(p.SplitRules, p.Asset)
		if err != nil {
			return "", nil, &MalformedPostingError{Index: index, Reason: err.Error()}
		}
		if !conflict {
			return block, nil, nil
		}
		return block, []Warning{{
			Code:    ConflictingSplitModes,
			Posting: index,
			Message: "split mixes fraction and max rules; all rules rendered as capped allocations",
		}}, nil

	default:
		return "", nil, &MalformedPostingError{Index: index, Reason: fmt.Sprintf("has unknown destination type %q", p.DestinationType)}
	}
}
