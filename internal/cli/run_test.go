package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/nextup/internal/config"
	"github.com/aretw0/nextup/internal/roster"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func printOptions(namesPath string) Options {
	return Options{
		Flags: config.Flags{Names: namesPath, NamesSet: true},
		// Point the default-config lookup somewhere empty so a developer's
		// own .nextup.yaml never leaks into tests.
		ConfigPath: filepath.Join(os.TempDir(), "nextup-test-no-config.yaml"),
		Print:      true,
	}
}

func TestRun_PrintModeEmitsShuffledOrder(t *testing.T) {
	dir := t.TempDir()
	namesPath := writeFile(t, dir, "team.txt", "Alice\nBob\nCarol\n")

	var out strings.Builder
	opts := printOptions(namesPath)
	opts.Stdout = &out
	require.NoError(t, Run(opts))

	got := strings.Fields(out.String())
	sort.Strings(got)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, got)
}

func TestRun_MissingNamesFile(t *testing.T) {
	opts := printOptions(filepath.Join(t.TempDir(), "absent.txt"))
	opts.Stdout = &strings.Builder{}

	err := Run(opts)
	assert.ErrorIs(t, err, roster.ErrNotFound)
}

func TestRun_EmptyNamesFile(t *testing.T) {
	dir := t.TempDir()
	namesPath := writeFile(t, dir, "team.txt", "\n \n")

	opts := printOptions(namesPath)
	opts.Stdout = &strings.Builder{}

	err := Run(opts)
	assert.ErrorIs(t, err, roster.ErrEmpty)
}

func TestRun_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	namesPath := writeFile(t, dir, "team.txt", "Alice\n")

	opts := printOptions(namesPath)
	opts.Flags.DurationMinutes = 0
	opts.Flags.DurationSet = true
	opts.Stdout = &strings.Builder{}

	err := Run(opts)
	assert.ErrorIs(t, err, config.ErrInvalidDuration)
}

func TestRun_ConfigFileSuppliesNamesPath(t *testing.T) {
	dir := t.TempDir()
	namesPath := writeFile(t, dir, "platform.txt", "Dave\nErin\n")
	cfgPath := writeFile(t, dir, "nextup.yaml", "names: "+namesPath+"\n")

	var out strings.Builder
	opts := Options{
		ConfigPath:    cfgPath,
		ConfigPathSet: true,
		Print:         true,
		Stdout:        &out,
	}
	require.NoError(t, Run(opts))

	got := strings.Fields(out.String())
	sort.Strings(got)
	assert.Equal(t, []string{"Dave", "Erin"}, got)
}

func TestRun_ExplicitConfigMustExist(t *testing.T) {
	opts := Options{
		ConfigPath:    filepath.Join(t.TempDir(), "absent.yaml"),
		ConfigPathSet: true,
		Print:         true,
		Stdout:        &strings.Builder{},
	}
	assert.Error(t, Run(opts))
}
