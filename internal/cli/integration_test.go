package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/pairlex/internal/cli"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
	cmd := cli.NewRootCommand(info)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))

	err := cmd.Execute()
	return stdout.String() + stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_ScanUnmatched(t *testing.T) {
	path := writeFile(t, "broken.c", "int main() {\n    foo((bar);\n}\n")

	output, err := execute(t, "scan", path)

	assert.ErrorIs(t, err, cli.ErrUnmatchedFound)
	assert.Contains(t, output, path)
	assert.Contains(t, output, "unmatched opening delimiter (")
	assert.Contains(t, output, ":2:8") // 1-based line:col of the stranded (
	assert.Contains(t, output, "1 unmatched delimiter(s)")
}

func TestIntegration_ScanClean(t *testing.T) {
	path := writeFile(t, "ok.c", "int main() {\n    return (0);\n}\n")

	output, err := execute(t, "scan", path)

	require.NoError(t, err)
	assert.Contains(t, output, "all delimiters matched")
}

func TestIntegration_ScanShowsContext(t *testing.T) {
	path := writeFile(t, "broken.c", "int x = (1;\n")

	output, err := execute(t, "scan", path)
	assert.ErrorIs(t, err, cli.ErrUnmatchedFound)
	assert.Contains(t, output, "int x = (1;")
	assert.Contains(t, output, "^")

	output, err = execute(t, "scan", "--no-context", path)
	assert.ErrorIs(t, err, cli.ErrUnmatchedFound)
	assert.NotContains(t, output, "^")
}

func TestIntegration_ScanLangOverride(t *testing.T) {
	// A .txt file is undetectable, but --lang forces the C tables.
	path := writeFile(t, "snippet.txt", "call(\n")

	output, err := execute(t, "scan", "--lang", "c", path)

	assert.ErrorIs(t, err, cli.ErrUnmatchedFound)
	assert.Contains(t, output, "unmatched opening delimiter (")
}

func TestIntegration_ScanSkipsUnknownLanguage(t *testing.T) {
	path := writeFile(t, "snippet.txt", "just some prose ( with a paren\n")

	output, err := execute(t, "scan", path)

	require.NoError(t, err)
	assert.Contains(t, output, "0 file(s) scanned")
}

func TestIntegration_ScanConfigExtensionOverride(t *testing.T) {
	path := writeFile(t, "snippet.txt", "call(\n")
	cfg := writeFile(t, "pairlex.yml", "languages:\n  \".txt\": c\n")

	_, err := execute(t, "scan", "--config", cfg, path)

	assert.ErrorIs(t, err, cli.ErrUnmatchedFound)
}

func TestIntegration_ScanCommentsDoNotCount(t *testing.T) {
	path := writeFile(t, "commented.c", "/* ( [ { */\nint x; // (((\n")

	_, err := execute(t, "scan", path)

	require.NoError(t, err)
}

func TestIntegration_ScanMissingFile(t *testing.T) {
	_, err := execute(t, "scan", filepath.Join(t.TempDir(), "absent.c"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, cli.ErrUnmatchedFound)
}

func TestIntegration_Languages(t *testing.T) {
	output, err := execute(t, "languages")

	require.NoError(t, err)
	for _, id := range []string{"c", "go", "markdown", "python", "rust"} {
		assert.Contains(t, output, id)
	}
}
