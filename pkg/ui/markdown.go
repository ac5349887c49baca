package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// DefaultWordWrap is the column glamour wraps rendered markdown at.
const DefaultWordWrap = 80

// RenderMarkdown renders markdown with glamour for FormatTerminal and
// returns it unchanged for FormatText.
func RenderMarkdown(markdown string, format Format) (string, error) {
	if format != FormatTerminal {
		return markdown, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(DefaultWordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}

// PrintMarkdown writes markdown to w, styled when w is a color terminal.
// Rendering failures fall back to the raw markdown.
func PrintMarkdown(w io.Writer, markdown string) error {
	out, err := RenderMarkdown(markdown, DetectFormat(w))
	if err != nil {
		out = markdown
	}
	_, err = fmt.Fprint(w, out)
	return err
}
