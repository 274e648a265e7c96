package main

// Notes:
// - printUsage/printGenerateUsage/printDoctorUsage: we test that required
//   content strings are present in the output. We don't test exact
//   formatting as that's an implementation detail.
// - runHelp: we test routing to the correct help topic.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage output
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	requiredStrings := []string{
		"Usage: cookbook",
		"Commands:",
		"generate",
		"doctor",
		"version",
		"help",
	}

	for _, s := range requiredStrings {
		if !strings.Contains(output, s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintGenerateUsage - Generate command usage output
// ---------------------------------------------------------------------------

func TestPrintGenerateUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printGenerateUsage(&buf)
	output := buf.String()

	// Check for flag group headers
	flagGroups := []string{
		"Arguments:",
		"Book:",
		"Converter:",
		"Output Control:",
	}

	for _, group := range flagGroups {
		if !strings.Contains(output, group) {
			t.Errorf("printGenerateUsage output should contain group header %q", group)
		}
	}

	// Check for book flags
	bookFlagNames := []string{
		"--title",
		"--author",
		"--date",
		"--no-index",
		"--no-toc",
	}

	for _, name := range bookFlagNames {
		if !strings.Contains(output, name) {
			t.Errorf("printGenerateUsage output should contain %q", name)
		}
	}

	// Check for converter flags
	converterFlagNames := []string{
		"--converter",
		"-t, --timeout",
		"--no-cargo-fallback",
	}

	for _, name := range converterFlagNames {
		if !strings.Contains(output, name) {
			t.Errorf("printGenerateUsage output should contain %q", name)
		}
	}

	// Date help documents tokens and presets
	dateHelp := []string{
		"YYYY",
		"iso, european, us, long",
	}

	for _, s := range dateHelp {
		if !strings.Contains(output, s) {
			t.Errorf("printGenerateUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintDoctorUsage - Doctor command usage output
// ---------------------------------------------------------------------------

func TestPrintDoctorUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printDoctorUsage(&buf)
	output := buf.String()

	for _, s := range []string{"Usage: cookbook doctor", "--json"} {
		if !strings.Contains(output, s) {
			t.Errorf("printDoctorUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - Help command routing
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows main usage",
			args:         []string{},
			wantInStdout: []string{"Usage: cookbook", "Commands:"},
		},
		{
			name:         "generate shows generate help",
			args:         []string{"generate"},
			wantInStdout: []string{"Usage: cookbook generate", "Book:", "Converter:"},
		},
		{
			name:         "doctor shows doctor help",
			args:         []string{"doctor"},
			wantInStdout: []string{"Usage: cookbook doctor"},
		},
		{
			name:         "version shows version help",
			args:         []string{"version"},
			wantInStdout: []string{"Usage: cookbook version"},
		},
		{
			name:         "help shows help help",
			args:         []string{"help"},
			wantInStdout: []string{"Usage: cookbook help"},
		},
		{
			name:         "unknown command shows error",
			args:         []string{"unknown"},
			wantInStderr: []string{"Unknown command: unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()

			runHelp(tt.args, env)

			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}

			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}
