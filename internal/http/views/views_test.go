package views

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefinesPages(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{"index.tmpl", "results.tmpl", "header", "footer"} {
		assert.NotNil(t, tmpl.Lookup(name), "template %q not defined", name)
	}
}

func TestResultsEmbedsPlanHTML(t *testing.T) {
	var buf bytes.Buffer
	err := MustLoad().ExecuteTemplate(&buf, "results.tmpl", map[string]any{
		"Title": "Your trip",
		"Plan":  template.HTML("<h2>Overview</h2>"),
		"Model": "gemini-2.0-flash",
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "<h2>Overview</h2>")
	assert.Contains(t, buf.String(), "gemini-2.0-flash")
}
