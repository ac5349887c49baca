package ui_test

import (
	"testing"

	"github.com/arthur-debert/clitools/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticPrompter(t *testing.T) {
	var p ui.Prompter = &ui.StaticPrompter{
		Answers:   map[string]string{"Project name": "mytool"},
		Confirmed: true,
	}

	name, err := p.Text("Project name", "")
	require.NoError(t, err)
	assert.Equal(t, "mytool", name)

	display, err := p.Text("Display name", "mytool")
	require.NoError(t, err)
	assert.Equal(t, "mytool", display, "unanswered prompts take the default")

	ok, err := p.Confirm("Apply?", false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPtermPrompterImplementsPrompter(t *testing.T) {
	var _ ui.Prompter = ui.NewPtermPrompter()
}
