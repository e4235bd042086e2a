package cli

import (
	"io"
	"os"

	"github.com/jonathan-vella/rebel-ops/internal/cli/shared"
	"github.com/jonathan-vella/rebel-ops/internal/diag"
	"github.com/jonathan-vella/rebel-ops/internal/progress"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Aliases: []string{"v"},
		Short:   "Validate templates, agents, standards and artifacts (default)",
		Long: `Run every check against the repository:

  1. templates carry their required H2 headings exactly once and in order
  2. agents link their templates by relative path
  3. agents do not embed template skeletons in fenced blocks
  4. standards documents reference the templates
  5. artifacts under the output directory follow their schema`,
		Example: `  artifactcheck validate
  artifactcheck validate --strictness standard
  artifactcheck validate --root ../other-repo --exclude "agent-output/archive/**"`,
		GroupID: GroupChecks,
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd)
		},
	}
}

func runValidate(cmd *cobra.Command) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	checker, log, err := newChecker(cmd, cfg)
	defer func() { _ = log.Sync() }()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	shared.PrintHeader(out, cfg.Strictness)

	caps := progress.DetectCapabilities(out, os.Getenv)
	if cfg.NoProgress {
		caps.IsTTY = false
	}
	rep := newReporter(out, caps)

	res, err := checker.Run(rep)
	if err != nil {
		rep.display.StopSpinner()
		return err
	}

	return finish(out, res)
}

// finish prints the summary and converts a failed outcome into an exit
// status.
func finish(out io.Writer, res *diag.Result) error {
	outcome := res.Outcome()
	shared.PrintSummary(out, outcome)
	if code := outcome.ExitCode(); code != shared.ExitSuccess {
		return shared.NewExitError(code)
	}
	return nil
}

// reporter renders run progress on the step display and writes each step's
// diagnostics as soon as the step completes.
type reporter struct {
	display *progress.Display
	emitter *diag.Emitter
}

func newReporter(out io.Writer, caps progress.TerminalCapabilities) *reporter {
	return &reporter{
		display: progress.NewDisplay(out, caps),
		emitter: diag.NewEmitter(out),
	}
}

func (r *reporter) StepStarted(number, total int, name string) error {
	return r.display.StartStep(progress.StepInfo{
		Name:       name,
		Number:     number,
		TotalSteps: total,
		Status:     progress.StepPending,
	})
}

func (r *reporter) StepFinished(res *diag.Result) error {
	r.display.CompleteStep(progress.StepCounts{
		Errors:   res.Count(diag.LevelError),
		Warnings: res.Count(diag.LevelWarning),
	})
	return r.emitter.Emit(res.Diagnostics()...)
}

func (r *reporter) Note(format string, args ...any) {
	r.display.Note(format, args...)
}
