// Package diag_test tests workflow-command formatting, escaping and result accumulation.
// Related: internal/diag/diag.go, internal/diag/result.go
// Tags: diagnostics, annotations, escaping, outcome, exit-code
package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":            {in: "plain text", want: "plain text"},
		"percent":          {in: "100%", want: "100%25"},
		"already escaped":  {in: "%0A", want: "%250A"},
		"newline":          {in: "a\nb", want: "a%0Ab"},
		"carriage return":  {in: "a\r\nb", want: "a%0D%0Ab"},
		"colons untouched": {in: "a::b,c=d", want: "a::b,c=d"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Escape(tc.in))
		})
	}
}

func TestDiagnostic_Format(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		d    Diagnostic
		want string
	}{
		"all properties": {
			d: Diagnostic{
				Level:   LevelError,
				Title:   "Artifact Template Drift",
				File:    ".github/templates/01-requirements.template.md",
				Line:    1,
				Message: "Missing template file: x",
			},
			want: "::error file=.github/templates/01-requirements.template.md,line=1,title=Artifact Template Drift::Missing template file: x",
		},
		"no properties": {
			d:    Diagnostic{Level: LevelWarning, Message: "nothing found"},
			want: "::warning::nothing found",
		},
		"title only": {
			d:    Diagnostic{Level: LevelWarning, Title: "Missing As-Built Examples", Message: "m"},
			want: "::warning title=Missing As-Built Examples::m",
		},
		"title and message escaped independently": {
			d:    Diagnostic{Level: LevelError, Title: "50%\nDrift", File: "a.md", Line: 1, Message: "line1\r\nline2 100%"},
			want: "::error file=a.md,line=1,title=50%25%0ADrift::line1%0D%0Aline2 100%25",
		},
		"file path is not escaped": {
			d:    Diagnostic{Level: LevelWarning, File: "dir/100%.md", Message: "m"},
			want: "::warning file=dir/100%.md::m",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.d.Format())
			assert.Equal(t, tc.want, tc.d.String())
		})
	}
}

func TestEmitter_Emit(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := NewEmitter(&buf)

	err := e.Emit(
		Diagnostic{Level: LevelWarning, Message: "first"},
		Diagnostic{Level: LevelError, File: "f.md", Line: 1, Message: "second"},
	)
	require.NoError(t, err)
	assert.Equal(t, "::warning::first\n::error file=f.md,line=1::second\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestEmitter_EmitWriteError(t *testing.T) {
	t.Parallel()

	err := NewEmitter(failingWriter{}).Emit(Diagnostic{Level: LevelWarning, Message: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing diagnostic")
}

func TestResult_Flags(t *testing.T) {
	t.Parallel()

	var r Result
	assert.False(t, r.HasError())
	assert.False(t, r.HasWarning())
	assert.Equal(t, OutcomeClean, r.Outcome())

	r.Warn("w", Location{File: "a.md", Line: 1})
	assert.False(t, r.HasError())
	assert.True(t, r.HasWarning())
	assert.Equal(t, OutcomeWarnings, r.Outcome())
	assert.Equal(t, 0, r.Outcome().ExitCode())

	r.Error("e", Location{Title: "T", File: "b.md", Line: 1})
	assert.True(t, r.HasError())
	assert.True(t, r.HasWarning())
	assert.Equal(t, OutcomeFailed, r.Outcome())
	assert.Equal(t, 1, r.Outcome().ExitCode())

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 1, r.Count(LevelError))
	assert.Equal(t, 1, r.Count(LevelWarning))

	diags := r.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, Diagnostic{Level: LevelError, Title: "T", File: "b.md", Line: 1, Message: "e"}, diags[1])
}

func TestResult_Merge(t *testing.T) {
	t.Parallel()

	var a, b Result
	a.Warn("a1", Location{})
	b.Error("b1", Location{})
	b.Warn("b2", Location{})

	a.Merge(&b)
	a.Merge(nil)

	msgs := make([]string, 0, a.Len())
	for _, d := range a.Diagnostics() {
		msgs = append(msgs, d.Message)
	}
	assert.Equal(t, []string{"a1", "b1", "b2"}, msgs)
	assert.True(t, a.HasError())
	assert.Equal(t, OutcomeFailed, a.Outcome())
}

func TestResult_DiagnosticsIsACopy(t *testing.T) {
	t.Parallel()

	var r Result
	r.Warn("original", Location{})

	diags := r.Diagnostics()
	diags[0].Message = "changed"

	assert.Equal(t, "original", r.Diagnostics()[0].Message)
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "clean", OutcomeClean.String())
	assert.Equal(t, "warnings", OutcomeWarnings.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
