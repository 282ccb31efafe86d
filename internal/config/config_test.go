package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scrypster/unilook/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"UNILOOK_DATA_DIR", "UNILOOK_UNICODE_DATA", "UNILOOK_BLOCKS",
		"UNILOOK_NAMES_LIST", "UNILOOK_ALIASES", "UNILOOK_MNEMONICS",
		"UNILOOK_COMPOSE", "UNILOOK_ENTITIES", "UNILOOK_SCAN_LIMIT",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetAll(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/usr/share/unicode", cfg.Data.Dir)
	assert.Equal(t, "/usr/share/unicode/UnicodeData.txt", cfg.Data.UnicodeData)
	assert.Equal(t, "/usr/share/unicode/NamesList.txt", cfg.Data.NamesList)
	assert.Equal(t, "/usr/share/X11/locale/en_US.UTF-8/Compose", cfg.Data.Compose)
	assert.Equal(t, 0xF0000, cfg.Search.ScanLimit)
}

func TestLoadConfig_EnvOverridesDataDir(t *testing.T) {
	unsetAll(t)
	t.Setenv("UNILOOK_DATA_DIR", "/opt/ucd")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/opt/ucd/UnicodeData.txt", cfg.Data.UnicodeData,
		"relative data files must follow the overridden directory")
}

func TestLoadConfig_ScanLimitAcceptsHex(t *testing.T) {
	unsetAll(t)
	t.Setenv("UNILOOK_SCAN_LIMIT", "0x20000")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0x20000, cfg.Search.ScanLimit)
}

func TestLoadConfig_BadScanLimitFallsBack(t *testing.T) {
	unsetAll(t)
	t.Setenv("UNILOOK_SCAN_LIMIT", "not-a-number")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0xF0000, cfg.Search.ScanLimit)
}

func TestLoadConfigFile_YAMLThenEnv(t *testing.T) {
	unsetAll(t)

	path := filepath.Join(t.TempDir(), "unilook.yaml")
	content := "data:\n  dir: /srv/ucd\n  mnemonics: /srv/misc/rfc1345\nsearch:\n  scan_limit: 1024\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("UNILOOK_SCAN_LIMIT", "2048")

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/ucd/Blocks.txt", cfg.Data.Blocks, "YAML dir applies to unset files")
	assert.Equal(t, "/srv/misc/rfc1345", cfg.Data.Mnemonics, "absolute YAML paths stay as-is")
	assert.Equal(t, 2048, cfg.Search.ScanLimit, "environment wins over the YAML file")
}

func TestLoadConfigFile_MissingFileIsError(t *testing.T) {
	_, err := config.LoadConfigFile("/does/not/exist.yaml")
	require.Error(t, err)
}

func TestLoadConfigFile_MalformedYAMLIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [unclosed"), 0o644))

	_, err := config.LoadConfigFile(path)
	require.Error(t, err)
}
