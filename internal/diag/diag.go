// Package diag holds the diagnostics produced by artifact checks and renders
// them as GitHub Actions workflow commands.
package diag

import (
	"fmt"
	"io"
	"strings"
)

// Level is the severity of a diagnostic.
type Level string

const (
	// LevelWarning marks cosmetic drift. Warnings never fail a run.
	LevelWarning Level = "warning"
	// LevelError marks a contract violation. Any error fails the run.
	LevelError Level = "error"
)

// Diagnostic is a single finding. Values are never mutated after creation.
type Diagnostic struct {
	Level   Level
	Title   string
	File    string
	Line    int
	Message string
}

// Format renders d as one workflow-command line, without the trailing newline:
//
//	::error file=path,line=1,title=Drift::message
//
// The property block is omitted when no property is set.
func (d Diagnostic) Format() string {
	var parts []string
	if d.File != "" {
		parts = append(parts, "file="+d.File)
	}
	if d.Line > 0 {
		parts = append(parts, fmt.Sprintf("line=%d", d.Line))
	}
	if d.Title != "" {
		parts = append(parts, "title="+Escape(d.Title))
	}

	props := ""
	if len(parts) > 0 {
		props = " " + strings.Join(parts, ",")
	}

	return fmt.Sprintf("::%s%s::%s", d.Level, props, Escape(d.Message))
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	return d.Format()
}

var commandEscaper = strings.NewReplacer(
	"%", "%25",
	"\r", "%0D",
	"\n", "%0A",
)

// Escape encodes the characters that would break a single-line workflow
// command: '%', CR and LF.
func Escape(value string) string {
	return commandEscaper.Replace(value)
}

// Emitter writes diagnostics to an annotation channel, one per line.
type Emitter struct {
	w io.Writer
}

// NewEmitter creates an emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes each diagnostic on its own line.
func (e *Emitter) Emit(diags ...Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintln(e.w, d.Format()); err != nil {
			return fmt.Errorf("writing diagnostic: %w", err)
		}
	}
	return nil
}
