package compiler

import (
	"strings"
	"testing"

	"github.com/hance08/numscribe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(target string, mode model.AmountMode, value string) model.SplitRule {
	return model.SplitRule{Target: target, AmountMode: mode, Value: value}
}

func blockLines(block string) []string {
	lines := strings.Split(block, "\n")
	// drop the opening and closing braces
	return lines[1 : len(lines)-1]
}

func TestRenderSplit_Fraction(t *testing.T) {
	block, conflict, err := RenderSplit([]model.SplitRule{
		rule("a", model.AmountFraction, "80"),
		rule("b", model.AmountRemaining, ""),
	}, "EUR/2")
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.Equal(t, "{\n    80% to @a\n    remaining to @b\n  }", block)
}

func TestRenderSplit_PercentSigil(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"80", "80% to @a"},
		{"12.5%", "12.5% to @a"},
		{"1/3", "1/3 to @a"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			block, _, err := RenderSplit([]model.SplitRule{rule("a", model.AmountFraction, tt.value)}, "EUR/2")
			require.NoError(t, err)
			assert.Equal(t, []string{"    " + tt.expected}, blockLines(block))
		})
	}
}

func TestRenderSplit_Max(t *testing.T) {
	block, conflict, err := RenderSplit([]model.SplitRule{
		rule("fees", model.AmountMax, "1000"),
		rule("@merchant", model.AmountRemaining, ""),
	}, "USD/2")
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.Equal(t, []string{
		"    max [USD/2 1000] to @fees",
		"    remaining to @merchant",
	}, blockLines(block))
}

func TestRenderSplit_RemainingAlwaysLast(t *testing.T) {
	tests := []struct {
		name  string
		rules []model.SplitRule
	}{
		{"remaining first", []model.SplitRule{
			rule("r", model.AmountRemaining, ""),
			rule("a", model.AmountFraction, "10"),
			rule("b", model.AmountFraction, "20"),
		}},
		{"remaining middle", []model.SplitRule{
			rule("a", model.AmountMax, "10"),
			rule("r", model.AmountRemaining, ""),
			rule("b", model.AmountMax, "20"),
		}},
		{"remaining middle mixed", []model.SplitRule{
			rule("a", model.AmountMax, "10"),
			rule("r", model.AmountRemaining, ""),
			rule("b", model.AmountFraction, "20"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, _, err := RenderSplit(tt.rules, "EUR/2")
			require.NoError(t, err)

			lines := blockLines(block)
			require.Len(t, lines, 3)
			assert.Equal(t, "    remaining to @r", lines[2])
			// stable: a before b
			assert.True(t, strings.HasSuffix(lines[0], "to @a"))
			assert.True(t, strings.HasSuffix(lines[1], "to @b"))
		})
	}
}

func TestRenderSplit_ConflictDetected(t *testing.T) {
	tests := []struct {
		name  string
		rules []model.SplitRule
	}{
		{"max then fraction", []model.SplitRule{
			rule("a", model.AmountMax, "1000"),
			rule("b", model.AmountFraction, "10%"),
		}},
		{"fraction then max", []model.SplitRule{
			rule("b", model.AmountFraction, "10"),
			rule("a", model.AmountMax, "1000"),
		}},
		{"with remaining", []model.SplitRule{
			rule("r", model.AmountRemaining, ""),
			rule("b", model.AmountFraction, "10"),
			rule("c", model.AmountFraction, "15"),
			rule("a", model.AmountMax, "1000"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, conflict, err := RenderSplit(tt.rules, "EUR/2")
			require.NoError(t, err)
			assert.True(t, conflict)
			assert.NotContains(t, block, "%")
			for _, line := range blockLines(block) {
				if strings.Contains(line, "remaining") {
					continue
				}
				assert.True(t, strings.HasPrefix(line, "    max [EUR/2 "), line)
			}
		})
	}
}

func TestRenderPosting_ConflictFallback(t *testing.T) {
	p := model.Posting{
		Source:          "a",
		SourceOverdraft: model.OverdraftNone,
		DestinationType: model.DestinationSplit,
		SplitRules: []model.SplitRule{
			rule("a", model.AmountMax, "1000"),
			rule("b", model.AmountFraction, "10%"),
		},
		Asset:  "EUR/2",
		Amount: "5000",
	}

	got, warnings, err := RenderPosting(0, p)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, ConflictingSplitModes, warnings[0].Code)
	assert.Contains(t, got, "    max [EUR/2 1000] to @a\n    max [EUR/2 10] to @b\n")
}

func TestOrderRules_DoesNotMutateInput(t *testing.T) {
	rules := []model.SplitRule{
		rule("r", model.AmountRemaining, ""),
		rule("a", model.AmountFraction, "50"),
	}

	ordered := orderRules(rules)
	assert.Equal(t, "a", ordered[0].Target)
	assert.Equal(t, "r", rules[0].Target)
}
