package topics

import (
	"io"

	"github.com/arthur-debert/clitools/pkg/ui"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render formats content for w. ext is the topic file's extension.
	Render(w io.Writer, content string, ext string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(w io.Writer, content string, ext string) string {
	return content
}

// MarkdownRenderer renders .md topics with glamour when w is a color terminal.
type MarkdownRenderer struct{}

// Render implements Renderer. Other extensions and rendering failures are
// returned unchanged.
func (r *MarkdownRenderer) Render(w io.Writer, content string, ext string) string {
	if ext != ".md" {
		return content
	}
	rendered, err := ui.RenderMarkdown(content, ui.DetectFormat(w))
	if err != nil {
		return content
	}
	return rendered
}
