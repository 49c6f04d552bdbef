package suite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type Option func(s *Suite)

type Suite struct {
	T       *testing.T
	Logger  *slog.Logger
	BaseDir string
	Loc     *time.Location
	Now     time.Time
}

func New(t *testing.T, opts ...Option) (context.Context, *Suite) {
	ctx := context.Background()

	baseDir, err := findProjectRoot()
	if err != nil {
		t.Fatalf("could not get current working directory: %v", err)
	}

	loc := time.FixedZone("Asia/Bahrain", 3*3600)
	s := &Suite{T: t, BaseDir: baseDir, Loc: loc, Now: time.Date(2024, 10, 1, 10, 0, 0, 0, loc)}
	s.Logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	for _, opt := range opts {
		opt(s)
	}
	return ctx, s
}

// WithNow fixes the time returned by Clock.
func WithNow(now time.Time) Option {
	return func(s *Suite) {
		s.Now = now
	}
}

// Clock returns a clock frozen at s.Now.
func (s *Suite) Clock() func() time.Time {
	return func() time.Time { return s.Now }
}

// findProjectRoot walks up from the working directory to the directory holding go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root (go.mod)")
		}
		dir = parent
	}
}
