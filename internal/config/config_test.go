package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_GetOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "json report",
			config:   &Config{ProjectPath: "/project", OutputDir: "storage", OutputFile: "report", OutputFormat: "json"},
			expected: "/project/storage/report.json",
		},
		{
			name:     "yaml report",
			config:   &Config{ProjectPath: "/project", OutputDir: "out", OutputFile: "last", OutputFormat: "yaml"},
			expected: "/project/out/last.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetOutputPath())
		})
	}
}

func TestConfig_GetHistoryDSN(t *testing.T) {
	t.Run("explicit dsn wins", func(t *testing.T) {
		cfg := New()
		cfg.HistoryDSN = "file:custom.db"
		assert.Equal(t, "file:custom.db", cfg.GetHistoryDSN())
	})

	t.Run("sqlite defaults next to the report", func(t *testing.T) {
		cfg := New()
		assert.Equal(t, filepath.Join(".", "storage", "history.db"), cfg.GetHistoryDSN())
	})

	t.Run("mysql built from environment", func(t *testing.T) {
		t.Setenv("DB_USERNAME", "ci")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_PORT", "3307")
		t.Setenv("DB_DATABASE", "catalogue")
		cfg := New()
		cfg.HistoryDriver = "mysql"
		assert.Equal(t, "ci:secret@tcp(db:3307)/catalogue?parseTime=true", cfg.GetHistoryDSN())
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultProjectPath, cfg.ProjectPath)
	assert.Equal(t, DefaultProcessors, cfg.Processors)
	assert.Equal(t, DefaultOutputFormat, cfg.OutputFormat)
	assert.Len(t, cfg.SkipGroups, len(DefaultSkipGroups))
	assert.NoError(t, cfg.Validate())
}

func TestLoad_AppliesFlags(t *testing.T) {
	cfg := Load(Flags{Processors: 8, Format: "YAML", History: true})

	assert.Equal(t, 8, cfg.Processors)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.True(t, cfg.HistoryEnabled)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(dir, "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultProcessors, cfg.Processors)
	})

	t.Run("yaml values and env overrides", func(t *testing.T) {
		path := filepath.Join(dir, "algocat.yaml")
		content := "project_path: " + dir + "\nprocessors: 2\nskip_groups: [shuffle]\noutput_format: yaml\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		t.Setenv("ALGOCAT_LOG_LEVEL", "debug")

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Processors)
		assert.Equal(t, []string{"shuffle"}, cfg.SkipGroups)
		assert.Equal(t, "yaml", cfg.OutputFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("invalid format is rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("project_path: "+dir+"\noutput_format: xml\n"), 0644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("dotenv file is read from the project path", func(t *testing.T) {
		envDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte("ALGOCAT_PROCESSORS=3\n"), 0644))
		path := filepath.Join(envDir, "algocat.yaml")
		require.NoError(t, os.WriteFile(path, []byte("project_path: "+envDir+"\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("ALGOCAT_PROCESSORS") })

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Processors)
	})
}
