package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/linked-lal/internal/config"
	"github.com/iburimskiy/linked-lal/internal/game"
)

func execute(t *testing.T, args ...string) (game.Options, bool, string, error) {
	t.Helper()
	var (
		got    game.Options
		called bool
		stderr bytes.Buffer
	)
	cmd := newRootCmd(func(ctx context.Context, opts game.Options) error {
		called = true
		got = opts
		opts.Logger.Debug("debug probe")
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return got, called, stderr.String(), err
}

func TestRootDefaults(t *testing.T) {
	opts, called, out, err := execute(t)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !called {
		t.Fatal("run not called")
	}
	if opts.Width != config.WindowWidth || opts.Height != config.WindowHeight || opts.Mute {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Theme != config.DefaultTheme() {
		t.Errorf("theme = %+v, want default", opts.Theme)
	}
	if strings.Contains(out, "debug probe") {
		t.Error("debug output without --verbose")
	}
}

func TestRootFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`easing = "out-bounce"`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, _, out, err := execute(t, "--theme", path, "--width", "300", "--height", "200", "--mute", "-v")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if opts.Width != 300 || opts.Height != 200 || !opts.Mute {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Theme.Easing != "out-bounce" {
		t.Errorf("easing = %q, want out-bounce", opts.Theme.Easing)
	}
	if !strings.Contains(out, "debug probe") {
		t.Errorf("verbose output missing debug line: %q", out)
	}
}

func TestRootBadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`stroke = "red"`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, called, _, err := execute(t, "--theme", path)
	if !errors.Is(err, config.ErrInvalidTheme) {
		t.Errorf("error = %v, want ErrInvalidTheme", err)
	}
	if called {
		t.Error("run called with an invalid theme")
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if _, _, _, err := execute(t, "extra"); err == nil {
		t.Error("positional argument accepted")
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), l)
	if loggerFromContext(ctx) != l {
		t.Error("logger not returned from context")
	}
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("missing logger should fall back to log.Default()")
	}
	l.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output = %q", buf.String())
	}
}
