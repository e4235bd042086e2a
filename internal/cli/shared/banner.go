package shared

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jonathan-vella/rebel-ops/internal/diag"
)

// RuleWidth is the width of the separator printed before the summary.
const RuleWidth = 60

// Colors provides reusable color functions for CLI output.
type Colors struct {
	Cyan   func(a ...interface{}) string
	Green  func(a ...interface{}) string
	Yellow func(a ...interface{}) string
	Red    func(a ...interface{}) string
	Dim    func(a ...interface{}) string
}

// NewColors creates a new Colors instance with standard terminal colors.
func NewColors() *Colors {
	return &Colors{
		Cyan:   color.New(color.FgCyan, color.Bold).SprintFunc(),
		Green:  color.New(color.FgGreen, color.Bold).SprintFunc(),
		Yellow: color.New(color.FgYellow, color.Bold).SprintFunc(),
		Red:    color.New(color.FgRed, color.Bold).SprintFunc(),
		Dim:    color.New(color.Faint).SprintFunc(),
	}
}

// StrictnessMode describes the strictness in effect for a run.
func StrictnessMode(override string) string {
	if override == "" {
		return "per-artifact"
	}
	return "global: " + override
}

// PrintHeader prints the run banner.
func PrintHeader(out io.Writer, override string) {
	c := NewColors()
	fmt.Fprintf(out, "%s %s\n\n",
		c.Cyan("🔍 Artifact Template Validator"),
		c.Dim(fmt.Sprintf("(strictness: %s)", StrictnessMode(override))))
}

// PrintSummary prints the separator and the final verdict for outcome.
func PrintSummary(out io.Writer, outcome diag.Outcome) {
	c := NewColors()
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", RuleWidth))
	switch outcome {
	case diag.OutcomeFailed:
		fmt.Fprintln(out, c.Red("❌ Validation FAILED - hard failures detected"))
	case diag.OutcomeWarnings:
		fmt.Fprintln(out, c.Yellow("⚠️  Validation passed with warnings"))
	default:
		fmt.Fprintln(out, c.Green("✅ Validation passed - no issues detected"))
	}
}
