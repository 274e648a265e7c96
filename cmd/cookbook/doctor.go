package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/alnah/go-cookbook/internal/fileutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Converter converterInfo `json:"converter"`
	TeX       texInfo       `json:"tex"`
	System    systemInfo    `json:"system"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// converterInfo holds CookCLI detection results.
type converterInfo struct {
	Command string `json:"command"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Cargo   bool   `json:"cargo_fallback"`
}

// texInfo holds TeX toolchain detection results.
type texInfo struct {
	XeLaTeX   string `json:"xelatex,omitempty"`
	MakeIndex string `json:"makeindex,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkConverter(result)
	checkTeX(result)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConverter detects the CookCLI binary and the cargo fallback.
func checkConverter(result *doctorResult) {
	command := os.Getenv("COOKBOOK_CONVERTER")
	if command == "" {
		command = "cook"
	}
	result.Converter.Command = command

	if path, err := exec.LookPath(command); err == nil {
		result.Converter.Found = true
		result.Converter.Path = path

		// Get version by running the converter with --version
		out, err := exec.Command(path, "--version").Output()
		if err == nil {
			result.Converter.Version = strings.TrimSpace(string(out))
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not get converter version: %v", err))
		}
	}

	if _, err := exec.LookPath("cargo"); err == nil {
		result.Converter.Cargo = true
	}

	if !result.Converter.Found {
		if result.Converter.Cargo {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s not found; recipes will convert through cargo run", command))
		} else {
			result.Errors = append(result.Errors,
				"CookCLI not found. Install it or set COOKBOOK_CONVERTER")
		}
	}
}

// checkTeX locates the LaTeX tools used to compile the generated book.
// Missing tools are warnings: generation itself only needs the converter.
func checkTeX(result *doctorResult) {
	if path, err := exec.LookPath("xelatex"); err == nil {
		result.TeX.XeLaTeX = path
	} else {
		result.Warnings = append(result.Warnings,
			"xelatex not found; the generated .tex cannot be compiled to PDF")
	}

	if path, err := exec.LookPath("makeindex"); err == nil {
		result.TeX.MakeIndex = path
	} else {
		result.Warnings = append(result.Warnings,
			"makeindex not found; the recipe index cannot be built")
	}
}

// checkSystem verifies the temp directory is writable.
func checkSystem(result *doctorResult) {
	_, cleanup, err := fileutil.WriteTempFile("doctor", "tmp")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", os.TempDir()))
		return
	}
	cleanup()
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "cookbook doctor")
	fmt.Fprintln(w)

	// Converter section
	fmt.Fprintln(w, "Converter")
	if r.Converter.Found {
		fmt.Fprintf(w, "  [OK] %s found at %s\n", r.Converter.Command, r.Converter.Path)
		if r.Converter.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Converter.Version)
		}
	} else if r.Converter.Cargo {
		fmt.Fprintf(w, "  [WARN] %s not found (using cargo fallback)\n", r.Converter.Command)
	} else {
		fmt.Fprintf(w, "  [ERROR] %s not found\n", r.Converter.Command)
	}
	if r.Converter.Cargo {
		fmt.Fprintln(w, "  [OK] Cargo fallback: available")
	}
	fmt.Fprintln(w)

	// TeX section
	fmt.Fprintln(w, "TeX toolchain")
	if r.TeX.XeLaTeX != "" {
		fmt.Fprintf(w, "  [OK] xelatex found at %s\n", r.TeX.XeLaTeX)
	} else {
		fmt.Fprintln(w, "  [WARN] xelatex not found")
	}
	if r.TeX.MakeIndex != "" {
		fmt.Fprintf(w, "  [OK] makeindex found at %s\n", r.TeX.MakeIndex)
	} else {
		fmt.Fprintln(w, "  [WARN] makeindex not found")
	}
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
