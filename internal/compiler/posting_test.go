package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/hance08/numscribe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAccount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"world", "world", "@world"},
		{"formatted world", "@world", "@world"},
		{"plain path", "clients:u1:main", "@clients:u1:main"},
		{"already formatted", "@clients:u1:main", "@clients:u1:main"},
		{"empty", "", "@"},
		{"variable like", "$dest", "@$dest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAccount(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, FormatAccount(got), "formatting must be idempotent")
		})
	}
}

func TestRenderSource(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		overdraft model.OverdraftPolicy
		limit     string
		expected  string
	}{
		{"none", "users:1", model.OverdraftNone, "", "@users:1"},
		{"empty policy", "users:1", "", "", "@users:1"},
		{"unbounded", "users:1", model.OverdraftUnbounded, "", "@users:1 allowing unbounded overdraft"},
		{"limited", "users:1", model.OverdraftLimited, "1000", "@users:1 allowing overdraft up to [EUR/2 1000]"},
		{"limited without limit", "users:1", model.OverdraftLimited, "", "@users:1"},
		{"none ignores limit", "users:1", model.OverdraftNone, "500", "@users:1"},
		{"world unbounded", "world", model.OverdraftUnbounded, "", "@world"},
		{"world limited", "world", model.OverdraftLimited, "1000", "@world"},
		{"formatted world limited", "@world", model.OverdraftLimited, "1", "@world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.Posting{
				Source:          tt.source,
				SourceOverdraft: tt.overdraft,
				OverdraftLimit:  tt.limit,
				Asset:           "EUR/2",
			}
			got := RenderSource(p)
			assert.Equal(t, tt.expected, got)
			if strings.HasPrefix(got, "@world") {
				assert.NotContains(t, got, "allowing")
			}
		})
	}
}

func TestRenderPosting_Simple(t *testing.T) {
	p := simplePosting("clients:u1:main", "acquirers:a1:main")

	got, warnings, err := RenderPosting(0, p)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "send [EUR/2 5000] (\n  source = @clients:u1:main\n  destination = @acquirers:a1:main\n)", got)
}

func TestRenderPosting_Wildcard(t *testing.T) {
	p := simplePosting("users:1", "users:2")
	p.Amount = model.WildcardAmount

	got, _, err := RenderPosting(0, p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "send [EUR/2 *] ("))
}

func TestRenderPosting_Split(t *testing.T) {
	p := model.Posting{
		Source:          "orders:42",
		SourceOverdraft: model.OverdraftUnbounded,
		DestinationType: model.DestinationSplit,
		SplitRules: []model.SplitRule{
			{Target: "b", AmountMode: model.AmountRemaining},
			{Target: "a", AmountMode: model.AmountFraction, Value: "80"},
		},
		Asset:  "USD/2",
		Amount: "1000",
	}

	got, warnings, err := RenderPosting(3, p)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	want := `send [USD/2 1000] (
  source = @orders:42 allowing unbounded overdraft
  destination = {
    80% to @a
    remaining to @b
  }
)`
	assert.Equal(t, want, got)
}

func TestRenderPosting_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *model.Posting)
		reason string
	}{
		{
			name: "simple without destination",
			mutate: func(p *model.Posting) {
				p.SimpleDestination = ""
			},
			reason: "has simple destination type but no destination account",
		},
		{
			name: "split without rules",
			mutate: func(p *model.Posting) {
				p.DestinationType = model.DestinationSplit
				p.SplitRules = []model.SplitRule{}
			},
			reason: "has split destination type but no split rules",
		},
		{
			name: "unknown destination type",
			mutate: func(p *model.Posting) {
				p.DestinationType = "broadcast"
			},
			reason: `has unknown destination type "broadcast"`,
		},
		{
			name: "unknown amount mode",
			mutate: func(p *model.Posting) {
				p.DestinationType = model.DestinationSplit
				p.SplitRules = []model.SplitRule{{Target: "a", AmountMode: "half"}}
			},
			reason: `split rule to @a has unknown amount mode "half"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := simplePosting("a", "b")
			tt.mutate(&p)

			got, warnings, err := RenderPosting(4, p)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.Nil(t, warnings)
			assert.ErrorIs(t, err, ErrMalformedPosting)

			var mpe *MalformedPostingError
			require.True(t, errors.As(err, &mpe))
			assert.Equal(t, 4, mpe.Index)
			assert.Equal(t, tt.reason, mpe.Reason)
		})
	}
}
