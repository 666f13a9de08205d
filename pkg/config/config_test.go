package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairlex.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 4, cfg.TabWidth)
	assert.Empty(t, cfg.DefaultLanguage)
	assert.Empty(t, cfg.Languages)
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
tab_width: 8
default_language: go
languages:
  ".inc": c
  ".snippet": python
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.TabWidth)
	assert.Equal(t, "go", cfg.DefaultLanguage)
	assert.Equal(t, "c", cfg.LanguageForExtension(".inc"))
	assert.Equal(t, "python", cfg.LanguageForExtension(".snippet"))
}

func TestLoad_OmittedFieldsKeepDefaults(t *testing.T) {
	path := writeConfig(t, `default_language: lua`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.TabWidth)
	assert.Equal(t, "lua", cfg.DefaultLanguage)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `tab_wdith: 2`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"tab width too small", `tab_width: 0`},
		{"tab width too large", `tab_width: 300`},
		{"unknown default language", `default_language: cobol`},
		{"unknown override language", "languages:\n  \".x\": cobol"},
		{"override key without dot", "languages:\n  \"inc\": c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadOrDefault_FallsBack(t *testing.T) {
	// Run from a directory with no default config file.
	t.Chdir(t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault_PicksUpDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("tab_width: 2"), 0o600))
	t.Chdir(dir)

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.TabWidth)
}

func TestLanguageForExtension_CaseInsensitive(t *testing.T) {
	cfg := &Config{Languages: map[string]string{".inc": "c"}}

	assert.Equal(t, "c", cfg.LanguageForExtension(".INC"))
	assert.Empty(t, cfg.LanguageForExtension(".other"))
}
