//go:build integration

package cookbook

// Notes:
// - Integration test setup: a stub cook executable placed on PATH
// - TestMain writes the stub script once and prepends its directory to
//   PATH, so the real ExecRunner, process groups and timeouts are
//   exercised end to end without a CookCLI installation
// - Recipes named fail_* make the stub exit non-zero; slow_* make it
//   sleep past any test timeout
// - The stub is a POSIX shell script; tests skip on Windows

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Configuration
// ---------------------------------------------------------------------------

// testTimeout is the standard timeout for integration test operations.
const testTimeout = 30 * time.Second

// stubCookScript mimics `cook recipe -f latex <path>`: metadata
// comments followed by a marker-delimited body naming the recipe.
const stubCookScript = `#!/bin/sh
if [ "$1" != "recipe" ]; then
  echo "unknown subcommand: $1" >&2
  exit 2
fi
path="$4"
name=$(basename "$path" .cook)
case "$name" in
  fail_*)
    echo "could not parse recipe: $name" >&2
    exit 1
    ;;
  slow_*)
    sleep 5
    ;;
esac
cat <<EOF
% Cooklang recipe: $name
% DESCRIPTION: stub description for $name
% TAGS: integration, stub
% BEGIN_RECIPE_CONTENT
% BEGIN_TITLE
\section{$name}
% END_TITLE
\subsection{Ingredients}
one onion for $name
% END_RECIPE_CONTENT
EOF
`

// ---------------------------------------------------------------------------
// TestMain - Integration Test Setup and Teardown
// ---------------------------------------------------------------------------

func TestMain(m *testing.M) {
	bin, err := os.MkdirTemp("", "cookbook-itest-bin")
	if err != nil {
		fmt.Fprintln(os.Stderr, "itest setup:", err)
		os.Exit(1)
	}

	if runtime.GOOS != "windows" {
		script := filepath.Join(bin, "cook")
		if err := os.WriteFile(script, []byte(stubCookScript), 0755); err != nil {
			fmt.Fprintln(os.Stderr, "itest setup:", err)
			os.Exit(1)
		}
		os.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	}

	code := m.Run()

	os.RemoveAll(bin)
	os.Exit(code)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// requireStubConverter skips tests that rely on the stub shell script.
func requireStubConverter(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub converter requires a POSIX shell")
	}
}
