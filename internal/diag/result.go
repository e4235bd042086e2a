package diag

// Result accumulates the diagnostics of one or more checks. Validators return
// a Result instead of touching shared state; callers merge them.
type Result struct {
	diagnostics []Diagnostic
	hasError    bool
	hasWarning  bool
}

// Location identifies where a diagnostic points and how it is labelled.
type Location struct {
	Title string
	File  string
	Line  int
}

// Add appends d and updates the failure flags.
func (r *Result) Add(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
	switch d.Level {
	case LevelError:
		r.hasError = true
	case LevelWarning:
		r.hasWarning = true
	}
}

// Report records a diagnostic of the given level.
func (r *Result) Report(level Level, message string, loc Location) {
	r.Add(Diagnostic{
		Level:   level,
		Title:   loc.Title,
		File:    loc.File,
		Line:    loc.Line,
		Message: message,
	})
}

// Warn records a warning.
func (r *Result) Warn(message string, loc Location) {
	r.Report(LevelWarning, message, loc)
}

// Error records an error.
func (r *Result) Error(message string, loc Location) {
	r.Report(LevelError, message, loc)
}

// Merge appends every diagnostic of other, in order.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	for _, d := range other.diagnostics {
		r.Add(d)
	}
}

// Diagnostics returns a copy of the accumulated diagnostics, or nil when
// there are none.
func (r *Result) Diagnostics() []Diagnostic {
	if len(r.diagnostics) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// Len returns the number of diagnostics.
func (r *Result) Len() int {
	return len(r.diagnostics)
}

// HasError reports whether any error was recorded.
func (r *Result) HasError() bool {
	return r.hasError
}

// HasWarning reports whether any warning was recorded.
func (r *Result) HasWarning() bool {
	return r.hasWarning
}

// Count returns the number of diagnostics at level.
func (r *Result) Count(level Level) int {
	n := 0
	for _, d := range r.diagnostics {
		if d.Level == level {
			n++
		}
	}
	return n
}

// Outcome is the pass/fail verdict of a run.
type Outcome int

const (
	// OutcomeClean means no diagnostics were recorded.
	OutcomeClean Outcome = iota
	// OutcomeWarnings means only warnings were recorded.
	OutcomeWarnings
	// OutcomeFailed means at least one error was recorded.
	OutcomeFailed
)

// String returns the string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeWarnings:
		return "warnings"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExitCode maps the outcome to a process exit code: 1 on failure, 0
// otherwise.
func (o Outcome) ExitCode() int {
	if o == OutcomeFailed {
		return 1
	}
	return 0
}

// Outcome derives the verdict from the failure flags.
func (r *Result) Outcome() Outcome {
	switch {
	case r.hasError:
		return OutcomeFailed
	case r.hasWarning:
		return OutcomeWarnings
	default:
		return OutcomeClean
	}
}
