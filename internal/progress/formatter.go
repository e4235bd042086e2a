package progress

import (
	"fmt"
	"strings"
)

// formatStepCounter returns the [N/Total] step counter string
func formatStepCounter(number, total int) string {
	return fmt.Sprintf("[%d/%d]", number, total)
}

// buildStepMessage constructs the spinner text for a running step
func buildStepMessage(step StepInfo) string {
	return fmt.Sprintf("%s %s...", formatStepCounter(step.Number, step.TotalSteps), step.Name)
}

// formatCounts renders "2 errors, 1 warning" style summaries.
func formatCounts(c StepCounts) string {
	var parts []string
	if c.Errors > 0 {
		parts = append(parts, plural(c.Errors, "error"))
	}
	if c.Warnings > 0 {
		parts = append(parts, plural(c.Warnings, "warning"))
	}
	if len(parts) == 0 {
		return "no issues"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// statusMark picks the symbol for a finished step
func statusMark(symbols ProgressSymbols, supportsColor bool, c StepCounts) string {
	switch {
	case c.Errors > 0:
		return colorize(symbols.Failure, "\033[31m", supportsColor && symbols.Failure == "✗") // Red
	case c.Warnings > 0:
		return colorize(symbols.Warning, "\033[33m", supportsColor && symbols.Warning == "⚠") // Yellow
	default:
		return colorize(symbols.Checkmark, "\033[32m", supportsColor && symbols.Checkmark == "✓") // Green
	}
}

func colorize(mark, code string, enabled bool) string {
	if !enabled {
		return mark
	}
	return code + mark + "\033[0m"
}
