package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewCmdRender()
	// Persistent flags normally inherited from the root command.
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("no-color", false, "")
	cmd.Flags().Bool("verbose", false, "")

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunRender_Stdin(t *testing.T) {
	out, err := execute(t, "# Hello\n\nSome **bold** text")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Hello</h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRunRender_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.md")
	require.NoError(t, os.WriteFile(path, []byte("&br; and @toc()"), 0644))

	out, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Contains(t, out, `class="plugin-br"`)
	assert.Contains(t, out, `class="plugin-toc"`)
}

func TestRunRender_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "page.html")

	stdout, err := execute(t, "# Hi", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Hi</h1>")
}

func TestRunRender_EscapesHTML(t *testing.T) {
	out, err := execute(t, "<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRunRender_Frontmatter(t *testing.T) {
	out, err := execute(t, "---\ntitle: Test\n---\n# Body",
		"--frontmatter", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Test"`)
	assert.Contains(t, out, "<h1>Body</h1>")
}

func TestRunRender_MissingFile(t *testing.T) {
	_, err := execute(t, "", filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}
