package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortviz/app"
	"sortviz/hal"
	"sortviz/sorting"
)

func execute(t *testing.T, window hal.WindowRunner, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand(window)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(nil)
	require.NotNil(t, cmd)
	assert.Equal(t, "sortviz", cmd.Name())
	assert.Contains(t, cmd.Long, "quick sort")
}

func TestFlags(t *testing.T) {
	cmd := NewRootCommand(nil)
	tests := []struct {
		name, shorthand, def string
	}{
		{"width", "w", "200"},
		{"height", "h", "150"},
		{"scale", "s", "5"},
		{"delay", "d", "0"},
		{"verbose", "v", "false"},
		{"headless", "", "false"},
		{"seed", "", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.shorthand, f.Shorthand)
			assert.Equal(t, tt.def, f.DefValue)
		})
	}
}

func TestHelpArgument(t *testing.T) {
	out, _, err := execute(t, nil, "help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: sortviz [-w WIDTH] [-h HEIGHT] [-s SCALE] [-d DELAY] [ALGORITHM]")
	assert.Contains(t, out, "  WIDTH -- 200")
	assert.Contains(t, out, "  Bubble sort (default) -- bs")
	assert.Contains(t, out, "  Quick sort -- qs")
}

func TestHelpFlag(t *testing.T) {
	out, _, err := execute(t, nil, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--height")
}

func TestTooManyArgs(t *testing.T) {
	_, _, err := execute(t, nil, "bs", "qs")
	assert.ErrorIs(t, err, ErrTooManyArgs)
}

func TestUnknownAlgorithm(t *testing.T) {
	_, _, err := execute(t, nil, "--headless", "heap")
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"--headless", "-w", "0"}, app.ErrInvalidWidth},
		{[]string{"--headless", "-h", "-3"}, app.ErrInvalidHeight},
		{[]string{"--headless", "-s", "0"}, app.ErrInvalidScale},
		{[]string{"--headless", "-d", "-1"}, app.ErrInvalidDelay},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, _, err := execute(t, nil, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHeadlessRun(t *testing.T) {
	out, logs, err := execute(t, nil, "--headless", "-w", "12", "-h", "30", "--seed", "5", "--hz", "1000", "--batch", "500", "qs")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 12, strings.Count(lines[0], ",")+1)
	assert.Contains(t, lines[1], "Elapsed time:")
	assert.Contains(t, logs, "run started")
	assert.Contains(t, logs, "quick sort")
	assert.Contains(t, logs, "sort finished")
}

func TestWindowRunnerUsed(t *testing.T) {
	var called bool
	window := func(cfg hal.WindowConfig, newApp func(hal.HAL) func() error) error {
		called = true
		assert.Equal(t, 8, cfg.Width)
		assert.Equal(t, 2.5, cfg.Scale)
		return nil
	}
	_, _, err := execute(t, window, "-w", "8", "-s", "2.5")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestWindowUnavailable(t *testing.T) {
	_, _, err := execute(t, nil)
	assert.ErrorIs(t, err, app.ErrNoWindow)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 9\nheight: 40\nalgorithm: qs\ndelay: 3\nseed: 11\n"), 0o644))

	cmd := NewRootCommand(nil)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "-d", "0"}))
	opts := &RootOptions{ConfigFile: path}

	cfg, err := resolveConfig(cmd, opts, flagValues(t, cmd))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
	assert.Equal(t, sorting.PartitionSort, cfg.Algorithm)
	assert.Equal(t, 0, cfg.Delay, "flag overrides file")
	assert.Equal(t, uint64(11), cfg.Seed)
	assert.Equal(t, 5.0, cfg.Scale, "default kept")
}

func TestConfigFileErrors(t *testing.T) {
	_, _, err := execute(t, nil, "--headless", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: heap\n"), 0o644))
	_, _, err = execute(t, nil, "--headless", "--config", path)
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func flagValues(t *testing.T, cmd *cobra.Command) app.Config {
	t.Helper()
	f := cmd.Flags()
	var cfg app.Config
	var err error
	cfg.Width, err = f.GetInt("width")
	require.NoError(t, err)
	cfg.Height, _ = f.GetInt("height")
	cfg.Scale, _ = f.GetFloat64("scale")
	cfg.Delay, _ = f.GetInt("delay")
	cfg.Hz, _ = f.GetInt("hz")
	cfg.Batch, _ = f.GetInt("batch")
	cfg.Seed, _ = f.GetUint64("seed")
	return cfg
}
