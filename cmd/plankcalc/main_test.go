package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PlankLayout/internal/cli"
	"github.com/piwi3910/PlankLayout/internal/engine"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Layout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pdf := filepath.Join(dir, "plan.pdf")
	args := []string{
		"-config", filepath.Join(dir, "config.json"),
		"-room", "200x100", "-plank", "130x25", "-staggered=false", "-seed", "1",
		"-pdf", pdf,
		"-log-level", "debug", "-log-format", "json",
	}
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), out, logs, args)

	require.NoError(t, err)
	require.Contains(t, out.String(), "Planks needed:")
	require.Contains(t, logs.String(), `"msg":"Layout calculated."`)
	_, err = os.Stat(pdf)
	require.NoError(t, err)
}

func TestRun_CalculationError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	args := []string{"-config", filepath.Join(dir, "config.json"), "-room", "40x100", "-plank", "130x25", "-staggered"}

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args)

	require.ErrorIs(t, err, engine.ErrConfigurationOverflow)
	var exitErr *cli.ExitError
	require.False(t, errors.As(err, &exitErr), "calculation failures exit with code 1")
}
