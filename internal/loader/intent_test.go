package loader

import (
	"path/filepath"
	"testing"

	"github.com/hance08/numscribe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("intent.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("INTENT.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("intent.json"))
	assert.Equal(t, FormatJSON, FormatForPath("-"))
}

func TestLoadIntent_JSON(t *testing.T) {
	intent, err := LoadIntent(filepath.Join("testdata", "refund.json"))
	require.NoError(t, err)

	assert.Equal(t, "Refund", intent.Summary)
	require.Len(t, intent.Postings, 1)
	p := intent.Postings[0]
	assert.Equal(t, model.OverdraftNone, p.SourceOverdraft)
	assert.Equal(t, model.DestinationSimple, p.DestinationType)
	assert.Equal(t, "acquirers:a1:main", p.SimpleDestination)
	assert.Equal(t, []model.MetadataEntry{{Key: "type", Value: "refund"}}, intent.Metadata)
}

func TestLoadIntent_YAML(t *testing.T) {
	intent, err := LoadIntent(filepath.Join("testdata", "payout.yaml"))
	require.NoError(t, err)

	require.Len(t, intent.Postings, 1)
	p := intent.Postings[0]
	assert.Equal(t, model.OverdraftLimited, p.SourceOverdraft)
	assert.Equal(t, "500", p.OverdraftLimit)
	assert.Equal(t, "12000", p.Amount)
	require.Len(t, p.SplitRules, 2)
	assert.Equal(t, model.AmountFraction, p.SplitRules[0].AmountMode)
	assert.Equal(t, model.AmountRemaining, p.SplitRules[1].AmountMode)
}

func TestLoadIntent_MissingFile(t *testing.T) {
	_, err := LoadIntent(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read intent file")
}

func TestParseIntent_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"empty", "  ", FormatJSON},
		{"unknown field", `{"summary":"x","postings":[],"extra":1}`, FormatJSON},
		{"unknown overdraft", `{"summary":"x","postings":[{"source_overdraft":"sometimes"}]}`, FormatJSON},
		{"unknown destination", "summary: x\npostings:\n  - destination_type: broadcast\n", FormatYAML},
		{"unknown amount mode", "summary: x\npostings:\n  - split_rules:\n      - amount_mode: half\n", FormatYAML},
		{"unknown yaml field", "summary: x\nnote: y\n", FormatYAML},
		{"unsupported format", "{}", Format("toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIntent([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestParseIntent_EmptyOverdraftMeansNone(t *testing.T) {
	intent, err := ParseIntent([]byte(`{"summary":"x","postings":[{"source_overdraft":""}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, model.OverdraftNone, intent.Postings[0].SourceOverdraft)
}

func TestMarshalIntent_RoundTrip(t *testing.T) {
	original, err := LoadIntent(filepath.Join("testdata", "payout.yaml"))
	require.NoError(t, err)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		data, err := MarshalIntent(original, format)
		require.NoError(t, err)

		decoded, err := ParseIntent(data, format)
		require.NoError(t, err)
		assert.Equal(t, original, decoded, string(format))
	}
}
