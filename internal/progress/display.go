package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display orchestrates the display of step progress. Plain "Step N: ..."
// lines are written to out; the spinner, when enabled, goes to stderr so it
// never mixes with annotation lines on stdout.
type Display struct {
	out          io.Writer
	capabilities TerminalCapabilities
	spinner      *spinner.Spinner
	symbols      ProgressSymbols
	current      *StepInfo
}

// NewDisplay creates a new progress display with the given terminal capabilities
func NewDisplay(out io.Writer, caps TerminalCapabilities) *Display {
	return &Display{
		out:          out,
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// StartStep begins displaying progress for a step
func (d *Display) StartStep(step StepInfo) error {
	if err := step.Validate(); err != nil {
		return err
	}

	step.Status = StepInProgress
	d.current = &step

	if d.capabilities.IsTTY {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(os.Stderr),
		)
		d.spinner.Suffix = " " + buildStepMessage(step)
		d.spinner.Start()
		return nil
	}

	fmt.Fprintf(d.out, "Step %d: %s...\n", step.Number, step.Name)
	return nil
}

// StopSpinner stops the spinner without printing anything. Call it before
// writing diagnostics for the running step.
func (d *Display) StopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

// CompleteStep stops the spinner and, on a TTY, prints a completion line
// with the step's diagnostic counts.
func (d *Display) CompleteStep(counts StepCounts) {
	d.StopSpinner()
	if d.current == nil {
		return
	}

	if counts.Errors > 0 {
		d.current.Status = StepFailed
	} else {
		d.current.Status = StepCompleted
	}

	if d.capabilities.IsTTY {
		mark := statusMark(d.symbols, d.capabilities.SupportsColor, counts)
		counter := formatStepCounter(d.current.Number, d.current.TotalSteps)
		fmt.Fprintf(d.out, "%s %s %s (%s)\n", mark, counter, d.current.Name, formatCounts(counts))
	}

	d.current = nil
}

// Note prints an informational line, such as the number of discovered files.
func (d *Display) Note(format string, args ...any) {
	d.StopSpinner()
	fmt.Fprintf(d.out, "   "+format+"\n", args...)
}

// Current returns the running step, if any.
func (d *Display) Current() (StepInfo, bool) {
	if d.current == nil {
		return StepInfo{}, false
	}
	return *d.current, true
}
