package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/piwi3910/PlankLayout/internal/app"
	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy path with all flags",
			args: []string{
				"-room", "560x400",
				"-plank=130x25",
				"-staggered",
				"-randomize=false",
				"-seed", "42",
				"-config", "/tmp/config.json",
				"-pdf", "out.pdf",
				"-png", "out.png",
				"-png-scale", "4",
				"--log-level=debug",
				"--log-format=json",
			},
			expectedConfig: &app.Config{
				ConfigPath: "/tmp/config.json",
				Room:       &model.Dimensions{Width: 560, Height: 400},
				Plank:      &model.Dimensions{Width: 130, Height: 25},
				Staggered:  ptr(true),
				Randomize:  ptr(false),
				Seed:       ptr(int64(42)),
				Exports:    app.Exports{PDF: "out.pdf", PNG: "out.png", PNGScale: 4},
				LogLevel:   "debug",
				LogFormat:  "json",
			},
		},
		{
			name: "Defaults leave overrides unset",
			args: []string{},
			expectedConfig: &app.Config{
				Exports:   app.Exports{PNGScale: 2},
				LogLevel:  "info",
				LogFormat: "text",
			},
		},
		{
			name: "Positional argument for layout path",
			args: []string{"-compare", "/layouts"},
			expectedConfig: &app.Config{
				LayoutPath: "/layouts",
				Compare:    true,
				Exports:    app.Exports{PNGScale: 2},
				LogLevel:   "info",
				LogFormat:  "text",
			},
		},
		{
			name: "Layout flag wins over positional argument",
			args: []string{"-layout", "a.hcl", "b.hcl"},
			expectedConfig: &app.Config{
				LayoutPath: "a.hcl",
				Exports:    app.Exports{PNGScale: 2},
				LogLevel:   "info",
				LogFormat:  "text",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:      "Invalid room size returns an error",
			args:      []string{"-room", "560"},
			expectErr: true,
		},
		{
			name:      "Zero plank size returns an error",
			args:      []string{"-plank", "0x25"},
			expectErr: true,
		},
		{
			name:      "Layout and room list cannot be combined",
			args:      []string{"-rooms", "rooms.csv", "layout.hcl"},
			expectErr: true,
		},
		{
			name:      "Compare with exports returns an error",
			args:      []string{"-compare", "-pdf", "out.pdf"},
			expectErr: true,
		},
		{
			name:      "Negative png scale returns an error",
			args:      []string{"-png-scale", "-1"},
			expectErr: true,
		},
		{
			name:      "Extra arguments return an error",
			args:      []string{"a.hcl", "b.hcl"},
			expectErr: true,
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"--log-level=foo"},
			expectErr: true,
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"--log-format=yaml"},
			expectErr: true,
		},
		{
			name:      "Unknown flag returns an error",
			args:      []string{"--nope"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}

			config, shouldExit, err := Parse(tc.args, out)

			if tc.expectErr {
				require.Error(t, err)
				exitErr, isExitError := err.(*ExitError)
				require.True(t, isExitError, "Expected error to be of type ExitError")
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)

			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, config); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}
