package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/clitools/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkdown = "# Title\n\n| File | Count |\n|------|------:|\n| `go.mod` | 1 |\n"

func TestRenderMarkdown_Text(t *testing.T) {
	out, err := ui.RenderMarkdown(sampleMarkdown, ui.FormatText)
	require.NoError(t, err)
	assert.Equal(t, sampleMarkdown, out)
}

func TestRenderMarkdown_Terminal(t *testing.T) {
	out, err := ui.RenderMarkdown(sampleMarkdown, ui.FormatTerminal)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "go.mod")
}

func TestPrintMarkdown_PlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.PrintMarkdown(&buf, sampleMarkdown))
	assert.Equal(t, sampleMarkdown, buf.String())
}
