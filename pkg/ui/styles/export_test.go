package styles

import "testing"

// EmbeddedStyles exposes the compiled-in styles.yaml to external tests.
func EmbeddedStyles(t *testing.T) []byte {
	t.Helper()
	return embeddedStyles
}
