package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err for a terminal. CLIErrors get their category,
// usage and remediation; other errors are printed as-is.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var cliErr *CLIError
	if !As(err, &cliErr) {
		return fmt.Sprintf("%s %s\n", color.RedString("Error:"), err.Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", color.New(color.FgRed, color.Bold).Sprint(cliErr.Category.String()+":"), cliErr.Message))
	if cliErr.Cause != nil {
		sb.WriteString(fmt.Sprintf("  Cause: %v\n", cliErr.Cause))
	}
	if cliErr.Usage != "" {
		sb.WriteString(fmt.Sprintf("\n%s %s\n", color.CyanString("Usage:"), cliErr.Usage))
	}
	if len(cliErr.Remediation) > 0 {
		sb.WriteString(fmt.Sprintf("\n%s\n", color.YellowString("To fix this:")))
		for _, step := range cliErr.Remediation {
			sb.WriteString(fmt.Sprintf("  • %s\n", step))
		}
	}
	return sb.String()
}

// PrintError writes FormatError(err) to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprint(w, FormatError(err))
}
