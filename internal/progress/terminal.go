package progress

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Environment variables consulted by DetectCapabilities.
const (
	EnvNoColor       = "NO_COLOR"
	EnvASCII         = "ARTIFACTCHECK_ASCII"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvTerm          = "TERM"
)

var (
	unicodeSymbols = ProgressSymbols{
		Checkmark:  "✓",
		Warning:    "⚠",
		Failure:    "✗",
		SpinnerSet: 14, // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
	}
	asciiSymbols = ProgressSymbols{
		Checkmark:  "[OK]",
		Warning:    "[WARN]",
		Failure:    "[FAIL]",
		SpinnerSet: 9, // | / - \
	}
)

// DetectCapabilities reports what the annotation stream out can render.
// Only an *os.File attached to a terminal counts as interactive. A workflow
// run under GitHub Actions, or a dumb terminal, always gets plain step lines
// so the runner sees one annotation per line.
func DetectCapabilities(out io.Writer, getenv func(string) string) TerminalCapabilities {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return TerminalCapabilities{}
	}
	if getenv(EnvGitHubActions) == "true" || getenv(EnvTerm) == "dumb" {
		return TerminalCapabilities{}
	}

	caps := TerminalCapabilities{
		IsTTY:           true,
		SupportsColor:   getenv(EnvNoColor) == "",
		SupportsUnicode: getenv(EnvASCII) != "1",
	}
	if w, _, err := term.GetSize(int(f.Fd())); err == nil {
		caps.Width = w
	}
	return caps
}

// SelectSymbols picks the step marks for caps.
func SelectSymbols(caps TerminalCapabilities) ProgressSymbols {
	if caps.SupportsUnicode {
		return unicodeSymbols
	}
	return asciiSymbols
}
