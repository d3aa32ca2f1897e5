package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ruleflow/pkg/ui/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry_EmbeddedStyles(t *testing.T) {
	expected := []string{
		"Header", "Category", "Code", "Name", "Arity", "Description",
		"Example", "Success", "Error", "Warning", "Muted", "Bold", "Indent",
	}

	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestGetStyle(t *testing.T) {
	assert.True(t, styles.GetStyle("Error").GetBold())
	assert.Equal(t, 10, styles.GetStyle("Code").GetWidth())

	unknown := styles.GetStyle("DoesNotExist")
	assert.Equal(t, lipgloss.NewStyle().Render("x"), unknown.Render("x"))
}

func TestLoadStyles(t *testing.T) {
	original := styles.StyleRegistry
	t.Cleanup(func() { styles.StyleRegistry = original })

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  red:
    light: "#ff0000"
    dark: "#ff0000"
styles:
  Error:
    italic: true
    foreground: red
`), 0644))

	require.NoError(t, styles.LoadStyles(path))
	assert.True(t, styles.GetStyle("Error").GetItalic())
	assert.False(t, styles.GetStyle("Error").GetBold())
}

func TestLoadStyles_Errors(t *testing.T) {
	original := styles.StyleRegistry
	t.Cleanup(func() { styles.StyleRegistry = original })

	assert.Error(t, styles.LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [unclosed")))
	assert.Len(t, styles.StyleRegistry, len(original), "failed loads keep the registry")
	assert.True(t, styles.GetStyle("Error").GetBold())
}
