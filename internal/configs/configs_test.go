package configs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sergeizaitcev/metricsender/internal/configs"
	"github.com/sergeizaitcev/metricsender/pkg/commands"
	"github.com/sergeizaitcev/metricsender/pkg/logging"
	"github.com/sergeizaitcev/metricsender/pkg/testutil"
)

func parseSender(t *testing.T, args ...string) (*configs.Sender, error) {
	var got *configs.Sender
	cmd := commands.NewArgs("sender", args, func(_ context.Context, c *configs.Sender) error {
		got = c
		return nil
	})
	cmd.SetOutput(testWriter{t})
	return got, cmd.Execute(testutil.Context(t))
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestSender(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := parseSender(t, "cpu.usage", "42.5")
		require.NoError(t, err)
		require.Equal(t, "cpu.usage", c.Name)
		require.Equal(t, "42.5", c.Value)
		require.Empty(t, c.Endpoint)
		require.Equal(t, logging.LevelInfo, c.Level)
		require.False(t, c.Strict)
	})

	t.Run("flags", func(t *testing.T) {
		c, err := parseSender(t, "-v", "debug", "-strict", "name", "")
		require.NoError(t, err)
		require.Equal(t, logging.LevelDebug, c.Level)
		require.True(t, c.Strict)
		require.Equal(t, "name", c.Name)
		require.Empty(t, c.Value)
	})

	t.Run("dash name", func(t *testing.T) {
		c, err := parseSender(t, "-strict", "--", "-n", "1")
		require.NoError(t, err)
		require.True(t, c.Strict)
		require.Equal(t, "-n", c.Name)
		require.Equal(t, "1", c.Value)

		_, err = parseSender(t, "-n", "1")
		require.Error(t, err)
	})

	t.Run("file after flags", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sender.json")
		err := os.WriteFile(path, []byte(`{"strict":true}`), 0o600)
		require.NoError(t, err)

		c, err := parseSender(t, "-v", "debug", "-c", path, "a", "b")
		require.NoError(t, err)
		require.True(t, c.Strict)
		require.Equal(t, logging.LevelDebug, c.Level)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("STRICT", "true")
		t.Setenv("LEVEL", "error")

		c, err := parseSender(t, "a", "b")
		require.NoError(t, err)
		require.True(t, c.Strict)
		require.Equal(t, logging.LevelError, c.Level)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sender.json")
		err := os.WriteFile(path, []byte(`{"level":"debug","strict":true}`), 0o600)
		require.NoError(t, err)

		c, err := parseSender(t, "-c", path, "a", "b")
		require.NoError(t, err)
		require.True(t, c.Strict)
	})

	t.Run("usage", func(t *testing.T) {
		for _, args := range [][]string{
			nil,
			{"cpu.usage"},
			{"a", "b", "c"},
		} {
			_, err := parseSender(t, args...)
			require.ErrorIs(t, err, commands.ErrUsage)
		}
	})
}

func TestListener(t *testing.T) {
	parse := func(t *testing.T, args ...string) (*configs.Listener, error) {
		var got *configs.Listener
		cmd := commands.NewArgs("listener", args, func(_ context.Context, c *configs.Listener) error {
			got = c
			return nil
		})
		cmd.SetOutput(testWriter{t})
		return got, cmd.Execute(testutil.Context(t))
	}

	t.Run("defaults", func(t *testing.T) {
		c, err := parse(t)
		require.NoError(t, err)
		require.Equal(t, configs.DefaultListener.Address, c.Address)
		require.Equal(t, configs.DefaultListener.Reply, c.Reply)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("ADDRESS", "127.0.0.1:9000")
		t.Setenv("REPLY", "accepted")

		c, err := parse(t, "-a", "localhost:1")
		require.NoError(t, err)
		require.Equal(t, "127.0.0.1:9000", c.Address)
		require.Equal(t, "accepted", c.Reply)
	})

	t.Run("invalid address", func(t *testing.T) {
		_, err := parse(t, "-a", "localhost")
		require.Error(t, err)
	})
}
