// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/study-triage/internal/categorize"
	"github.com/pdiddy/study-triage/pkg/types"
)

func sampleResult() *types.ExtractionResult {
	return &types.ExtractionResult{Categories: []types.CategoryMatches{
		{Category: "Study Design", Lines: []string{
			"A randomized controlled trial",
			"Cross-sectional follow-up",
		}},
		{Category: "Population", Lines: []string{}},
		{Category: "Key Findings", Lines: []string{"Summary of results"}},
	}}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, sampleResult()))

	want := `=== Study Design ===
1. A randomized controlled trial
2. Cross-sectional follow-up

=== Population ===
No mention found.

=== Key Findings ===
1. Summary of results

`
	assert.Equal(t, want, buf.String())
}

func TestRenderTextEmptyDocument(t *testing.T) {
	result := categorize.Match("", categorize.DefaultTable())

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, result, types.FormatText))

	out := buf.String()
	assert.Equal(t, 16, strings.Count(out, "No mention found.\n"))
	assert.Equal(t, 16, strings.Count(out, "=== "))
	assert.True(t, strings.HasPrefix(out, "=== Study Design ===\nNo mention found.\n\n"))
	assert.True(t, strings.HasSuffix(out, "=== Key Findings ===\nNo mention found.\n\n"))
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), types.FormatJSON))

	assert.Contains(t, buf.String(), `"matches": []`, "empty categories should encode as []")

	var got []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Study Design", got[0].Category)
	assert.Equal(t, []string{"A randomized controlled trial", "Cross-sectional follow-up"}, got[0].Matches)
	assert.Equal(t, "Population", got[1].Category)
	assert.Empty(t, got[1].Matches)
	assert.Equal(t, "Key Findings", got[2].Category)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), types.FormatYAML))

	assert.Contains(t, buf.String(), "matches: []")

	var got []Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Study Design", "Population", "Key Findings"},
		[]string{got[0].Category, got[1].Category, got[2].Category})
	assert.Equal(t, []string{"Summary of results"}, got[2].Matches)
}

func TestRenderNilLines(t *testing.T) {
	result := &types.ExtractionResult{Categories: []types.CategoryMatches{{Category: "Duration"}}}

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, result))
	assert.NotContains(t, buf.String(), "null")

	buf.Reset()
	require.NoError(t, RenderText(&buf, result))
	assert.Equal(t, "=== Duration ===\nNo mention found.\n\n", buf.String())
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleResult(), types.OutputFormat("csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Zero(t, buf.Len())
}

func TestRenderTable(t *testing.T) {
	table := types.CategoryTable{
		{Name: "Sleep", Keywords: []string{"insomnia", "sleep"}},
		{Name: "Diet", Keywords: []string{"nutrition"}},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, table))
	assert.Equal(t, "Sleep: insomnia, sleep\nDiet: nutrition\n", buf.String())
}
