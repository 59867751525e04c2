package compiler

import (
	"fmt"
	"strings"

	"github.com/hance08/numscribe/internal/model"
)

const (
	percentSigil = "%"
	ruleIndent   = "    "
)

// orderRules returns the rules with every remaining rule moved to the end.
// Relative order inside each group is kept.
func orderRules(rules []model.SplitRule) []model.SplitRule {
	ordered := make([]model.SplitRule, 0, len(rules))
	var tail []model.SplitRule
	for _, r := range rules {
		if r.AmountMode == model.AmountRemaining {
			tail = append(tail, r)
			continue
		}
		ordered = append(ordered, r)
	}
	return append(ordered, tail...)
}

// hasConflict reports whether fraction and max rules are mixed in one block.
func hasConflict(rules []model.SplitRule) bool {
	var fraction, capped bool
	for _, r := range rules {
		switch r.AmountMode {
		case model.AmountFraction:
			fraction = true
		case model.AmountMax:
			capped = true
		}
	}
	return fraction && capped
}

// RenderSplit renders a destination block for the given rules. When fraction
// and max rules are mixed, every rule is rendered as a capped allocation and
// conflict is true.
func RenderSplit(rules []model.SplitRule, asset string) (block string, conflict bool, err error) {
	conflict = hasConflict(rules)

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, r := range orderRules(rules) {
		line, err := renderRule(r, asset, conflict)
		if err != nil {
			return "", conflict, err
		}
		sb.WriteString(ruleIndent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("  }")

	return sb.String(), conflict, nil
}

func renderRule(r model.SplitRule, asset string, capped bool) (string, error) {
	target := FormatAccount(r.Target)

	switch r.AmountMode {
	case model.AmountFraction:
		if capped {
			return fmt.Sprintf("max %s to %s", monetary(asset, strings.TrimSuffix(r.Value, percentSigil)), target), nil
		}
		return fmt.Sprintf("%s to %s", portion(r.Value), target), nil
	case model.AmountMax:
		return fmt.Sprintf("max %s to %s", monetary(asset, r.Value), target), nil
	case model.AmountRemaining:
		return "remaining to " + target, nil
	default:
		return "", fmt.Errorf("split rule to %s has unknown amount mode %q", target, r.AmountMode)
	}
}

// portion appends the percent sigil unless the value already has one or is a ratio like 1/3.
func portion(value string) string {
	if strings.HasSuffix(value, percentSigil) || strings.Contains(value, "/") {
		return value
	}
	return value + percentSigil
}
