package config_test

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/render"
)

// envOf returns a lookup over a fixed map.
func envOf(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// writeEnvFile writes a dotenv file into a temp dir and returns its path.
func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoad_Defaults: no file, no env, no flags.
func TestLoad_Defaults(t *testing.T) {
	l := config.Loader{Lookup: envOf(nil)}
	cfg, err := l.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, generator.AlgoRecursiveBacktracker, cfg.Algorithm)
	assert.Equal(t, render.StyleASCII, cfg.Style)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

// TestLoad_Precedence: flags beat the environment, which beats the dotenv file.
func TestLoad_Precedence(t *testing.T) {
	file := writeEnvFile(t, "MAZE_ROWS=3\nMAZE_COLS=4\nMAZE_ALGORITHM=prim\nMAZE_STYLE=box\n")
	l := config.Loader{
		EnvFile: file,
		Lookup:  envOf(map[string]string{"MAZE_COLS": "7", "MAZE_SEED": "42", "MAZE_LOG_LEVEL": "debug"}),
	}

	cfg, err := l.Load([]string{"-algorithm", "wilson", "-braid", "0.25", "-distances"})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Rows, "from file")
	assert.Equal(t, 7, cfg.Cols, "env over file")
	assert.Equal(t, "wilson", cfg.Algorithm, "flag over file")
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0.25, cfg.Braid)
	assert.Equal(t, render.StyleBox, cfg.Style)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.Distances)
	assert.False(t, cfg.Path)
}

// TestLoad_MissingEnvFile is not an error.
func TestLoad_MissingEnvFile(t *testing.T) {
	l := config.Loader{EnvFile: filepath.Join(t.TempDir(), "absent.env"), Lookup: envOf(nil)}
	_, err := l.Load(nil)
	assert.NoError(t, err)
}

// TestLoad_FlagsAll covers the remaining flags.
func TestLoad_FlagsAll(t *testing.T) {
	l := config.Loader{Lookup: envOf(nil)}
	cfg, err := l.Load([]string{
		"-rows", "5", "-cols", "6", "-seed", "-9",
		"-root-row", "4", "-root-col", "5",
		"-path", "-longest", "-heat", "-style", "box", "-log-level", "warn",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Rows)
	assert.Equal(t, 6, cfg.Cols)
	assert.Equal(t, int64(-9), cfg.Seed)
	assert.Equal(t, grid.Cell{Row: 4, Col: 5}, cfg.Root)
	assert.True(t, cfg.Path)
	assert.True(t, cfg.Longest)
	assert.True(t, cfg.Heat)
	assert.Equal(t, render.StyleBox, cfg.Style)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
}

// TestLoad_Invalid rejects bad values from every source.
func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"zero rows", nil, []string{"-rows", "0"}},
		{"negative cols", nil, []string{"-cols", "-2"}},
		{"unknown algorithm", nil, []string{"-algorithm", "eller"}},
		{"braid too large", nil, []string{"-braid", "1.5"}},
		{"braid NaN", map[string]string{"MAZE_BRAID": "NaN"}, nil},
		{"bad style", nil, []string{"-style", "fancy"}},
		{"bad level", nil, []string{"-log-level", "loud"}},
		{"root outside", nil, []string{"-rows", "2", "-root-row", "2"}},
		{"unknown flag", nil, []string{"-colour"}},
		{"stray argument", nil, []string{"extra"}},
		{"env rows", map[string]string{"MAZE_ROWS": "many"}, nil},
		{"env seed", map[string]string{"MAZE_SEED": "1.5"}, nil},
		{"env braid", map[string]string{"MAZE_BRAID": "half"}, nil},
		{"env style", map[string]string{"MAZE_STYLE": "round"}, nil},
		{"env level", map[string]string{"MAZE_LOG_LEVEL": "chatty"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := config.Loader{Lookup: envOf(tc.env)}
			_, err := l.Load(tc.args)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

// TestLoad_Help surfaces flag.ErrHelp unwrapped.
func TestLoad_Help(t *testing.T) {
	l := config.Loader{Lookup: envOf(nil)}
	_, err := l.Load([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.False(t, errors.Is(err, config.ErrInvalidConfig))
}

// TestUsage lists the flags.
func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	config.Usage(&buf)
	for _, name := range []string{"-rows", "-cols", "-algorithm", "-seed", "-braid", "-style", "-heat", "-longest"} {
		assert.Contains(t, buf.String(), name)
	}
}

// TestGeneratorOptions maps fields one to one.
func TestGeneratorOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = generator.AlgoKruskal
	cfg.Seed = 5
	cfg.Braid = 0.5

	opts := cfg.GeneratorOptions()
	assert.Equal(t, generator.Options{Algorithm: generator.AlgoKruskal, Seed: 5, Braid: 0.5}, opts)
}
