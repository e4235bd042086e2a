package cli

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan-vella/rebel-ops/internal/cli/shared"
	apperrors "github.com/jonathan-vella/rebel-ops/internal/errors"
	"github.com/jonathan-vella/rebel-ops/internal/schema"
	"github.com/jonathan-vella/rebel-ops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// isolateEnv clears every variable the config loader reads.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	unset := []string{"STRICTNESS"}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "ARTIFACTCHECK_") {
			unset = append(unset, strings.SplitN(kv, "=", 2)[0])
		}
	}
	for _, key := range unset {
		// Setenv registers the restore; Unsetenv makes the key truly absent.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// run executes the command tree against root and returns stdout, stderr and
// the command error.
func run(t *testing.T, root string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--root", root,
		"--config", filepath.Join(root, "missing.json"),
		"--no-progress",
	}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func conformingRepo(t *testing.T, instances ...string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteTree(t, dir, testutil.ConformingTree(schema.Default(), testutil.WithInstances(instances...)))
	return dir
}

func TestValidate_Clean(t *testing.T) {
	isolateEnv(t)

	root := conformingRepo(t, schema.Default().Names()...)
	stdout, _, err := run(t, root)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Artifact Template Validator (strictness: per-artifact)")
	for _, step := range []string{
		"Step 1: Validating templates...",
		"Step 2: Validating agent links...",
		"Step 3: Checking for embedded skeletons...",
		"Step 4: Validating standards documentation...",
		"Step 5: Validating artifacts in agent-output/...",
		"   Found 14 artifacts to validate",
		strings.Repeat("=", 60),
		"✅ Validation passed - no issues detected",
	} {
		assert.Contains(t, stdout, step)
	}
	assert.NotContains(t, stdout, "::error")
	assert.NotContains(t, stdout, "::warning")
}

func TestValidate_WarningsOnly(t *testing.T) {
	isolateEnv(t)

	root := conformingRepo(t)
	stdout, _, err := run(t, root, "validate")

	require.NoError(t, err)
	assert.Contains(t, stdout, "::warning title=Artifact Template Drift::No artifacts found in agent-output/ (expected for new workflow).")
	assert.Contains(t, stdout, "::warning title=Missing As-Built Examples::No agent-output/**/07-ab-cost-estimate.md examples found yet (warning-only).")
	assert.Contains(t, stdout, "⚠️  Validation passed with warnings")
}

func TestValidate_Failure(t *testing.T) {
	isolateEnv(t)

	root := conformingRepo(t, "01-requirements.md")
	require.NoError(t, os.Remove(filepath.Join(root, filepath.FromSlash(schema.AgentDeploy))))

	stdout, _, err := run(t, root)

	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
	assert.True(t, shared.IsExitError(err))
	assert.Contains(t, stdout, "::error file=.github/agents/deploy.agent.md,line=1,title=Missing Template or Agent::Missing agent file: .github/agents/deploy.agent.md")
	assert.Contains(t, stdout, "❌ Validation FAILED - hard failures detected")
}

func TestValidate_StrictnessPrecedence(t *testing.T) {
	tests := map[string]struct {
		env       string
		flag      string
		wantMode  string
		wantLevel string
	}{
		"per-artifact default": {
			wantMode:  "per-artifact",
			wantLevel: "::error",
		},
		"env relaxes": {
			env:       "relaxed",
			wantMode:  "global: relaxed",
			wantLevel: "::warning",
		},
		"flag beats env": {
			env:       "relaxed",
			flag:      "standard",
			wantMode:  "global: standard",
			wantLevel: "::error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv("STRICTNESS", tt.env)

			root := conformingRepo(t, "01-requirements.md")
			instance := filepath.Join(root, "agent-output", "demo", "01-requirements.md")
			require.NoError(t, os.WriteFile(instance, []byte(testutil.Doc("## Project Overview")), 0o644))

			var args []string
			if tt.flag != "" {
				args = append(args, "--strictness", tt.flag)
			}
			stdout, _, _ := run(t, root, args...)

			assert.Contains(t, stdout, "(strictness: "+tt.wantMode+")")
			assert.Contains(t, stdout, tt.wantLevel+" file=agent-output/demo/01-requirements.md")
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	isolateEnv(t)

	root := conformingRepo(t, "01-requirements.md")
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "agent-output", "demo", "01-requirements.md"),
		[]byte(testutil.Doc("## Extra")), 0o644))

	first, _, firstErr := run(t, root)
	second, _, secondErr := run(t, root)

	assert.Equal(t, first, second)
	assert.Equal(t, ExitCode(firstErr), ExitCode(secondErr))
}

func TestValidate_MissingRoot(t *testing.T) {
	isolateEnv(t)

	_, _, err := run(t, filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.Equal(t, ExitMissingPrerequisite, ExitCode(err))
}

func TestValidate_InvalidRegistry(t *testing.T) {
	isolateEnv(t)

	root := conformingRepo(t)
	registry := filepath.Join(root, "registry.yaml")
	require.NoError(t, os.WriteFile(registry, []byte("schemas: []\n"), 0o644))

	_, _, err := run(t, root, "--registry", registry)

	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	var cliErr *apperrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, apperrors.Configuration, cliErr.Category)
}

func TestValidate_Exclude(t *testing.T) {
	isolateEnv(t)

	root := conformingRepo(t, "01-requirements.md")
	stdout, _, err := run(t, root, "--exclude", "agent-output/demo/**")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No artifacts found in agent-output/")
}

func TestUsageErrors(t *testing.T) {
	isolateEnv(t)

	root := conformingRepo(t)

	tests := map[string]struct {
		args        []string
		wantMessage string
	}{
		"extra argument to validate": {
			args:        []string{"validate", "extra-arg"},
			wantMessage: `unexpected argument "extra-arg" for "artifactcheck validate"`,
		},
		"extra argument to root": {
			args:        []string{"extra-arg"},
			wantMessage: `unexpected argument "extra-arg" for "artifactcheck"`,
		},
		"argument to schemas": {
			args:        []string{"schemas", "01-requirements.md"},
			wantMessage: `unexpected argument "01-requirements.md" for "artifactcheck schemas"`,
		},
		"unknown flag": {
			args:        []string{"--bogus"},
			wantMessage: "unknown flag: --bogus",
		},
		"unknown flag on subcommand": {
			args:        []string{"check", "--bogus", "x.md"},
			wantMessage: "unknown flag: --bogus",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := run(t, root, tt.args...)

			require.Error(t, err)
			assert.Equal(t, ExitInvalidArguments, ExitCode(err))
			var cliErr *apperrors.CLIError
			require.ErrorAs(t, err, &cliErr)
			assert.Equal(t, apperrors.Argument, cliErr.Category)
			assert.Equal(t, tt.wantMessage, cliErr.Message)
			assert.NotContains(t, stdout, "Step 1:")
		})
	}
}

func TestCheck(t *testing.T) {
	isolateEnv(t)

	root := conformingRepo(t, "01-requirements.md", "02-architecture-assessment.md")
	broken := filepath.Join(root, "agent-output", "demo", "02-architecture-assessment.md")
	require.NoError(t, os.WriteFile(broken, []byte(testutil.Doc("## Extra")), 0o644))

	tests := map[string]struct {
		args         []string
		wantCode     int
		wantContains []string
		wantMissing  []string
	}{
		"conforming file": {
			args:         []string{"check", "agent-output/demo/01-requirements.md"},
			wantCode:     ExitSuccess,
			wantContains: []string{"✅ Validation passed - no issues detected"},
			wantMissing:  []string{"Step 1:"},
		},
		"broken file": {
			args:         []string{"check", "agent-output/demo/02-architecture-assessment.md"},
			wantCode:     ExitValidationFailed,
			wantContains: []string{"::error file=agent-output/demo/02-architecture-assessment.md,line=1,title=Artifact Template Drift::"},
		},
		"absolute path": {
			args:     []string{"check", broken},
			wantCode: ExitValidationFailed,
		},
		"unregistered file is skipped": {
			args:         []string{"check", schema.MarkdownStandardsDoc},
			wantCode:     ExitSuccess,
			wantContains: []string{"no issues detected"},
		},
		"no files": {
			args:     []string{"check"},
			wantCode: ExitInvalidArguments,
		},
		"missing file": {
			args:     []string{"check", "agent-output/demo/nope-01-requirements.md"},
			wantCode: ExitInvalidArguments,
		},
		"outside root": {
			args:     []string{"check", "../escape.md"},
			wantCode: ExitInvalidArguments,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := run(t, root, tt.args...)

			assert.Equal(t, tt.wantCode, ExitCode(err), "err = %v", err)
			for _, want := range tt.wantContains {
				assert.Contains(t, stdout, want)
			}
			for _, unwanted := range tt.wantMissing {
				assert.NotContains(t, stdout, unwanted)
			}
		})
	}
}

func TestSchemas(t *testing.T) {
	isolateEnv(t)
	root := t.TempDir()

	t.Run("text", func(t *testing.T) {
		stdout, _, err := run(t, root, "schemas")
		require.NoError(t, err)
		assert.Contains(t, stdout, "14 artifact schemas (strictness: per-artifact)")
		assert.Contains(t, stdout, "01-requirements.md [standard]")
		assert.Contains(t, stdout, "03-des-cost-estimate.md [relaxed]")
		assert.Contains(t, stdout, "template: .github/templates/01-requirements.template.md")
		assert.Contains(t, stdout, schema.CostStandardsDoc)
	})

	t.Run("override shows in listing", func(t *testing.T) {
		stdout, _, err := run(t, root, "schemas", "--strictness", "relaxed")
		require.NoError(t, err)
		assert.Contains(t, stdout, "01-requirements.md [relaxed]")
	})

	t.Run("yaml round trips", func(t *testing.T) {
		stdout, _, err := run(t, root, "schemas", "--format", "yaml")
		require.NoError(t, err)

		reg, err := schema.Load(strings.NewReader(stdout))
		require.NoError(t, err)
		assert.Equal(t, schema.Default().Names(), reg.Names())
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := run(t, root, "schemas", "--format", "xml")
		assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	})
}

func TestVersion(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := run(t, t.TempDir(), "version", "--plain")
	require.NoError(t, err)
	assert.Contains(t, stdout, "artifactcheck dev")
	assert.Contains(t, stdout, "commit: unknown")

	stdout, _, err = run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Version:")
}

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":           {err: nil, want: ExitSuccess},
		"exit error":    {err: shared.NewExitError(ExitValidationFailed), want: ExitValidationFailed},
		"argument":      {err: apperrors.NoFilesGiven(), want: ExitInvalidArguments},
		"configuration": {err: apperrors.InvalidConfig(assert.AnError), want: ExitInvalidArguments},
		"prerequisite":  {err: apperrors.MissingRoot("x"), want: ExitMissingPrerequisite},
		"runtime":       {err: apperrors.UnreadableFile("x", assert.AnError), want: ExitRuntimeFault},
		"wrapped":       {err: apperrors.Wrap(apperrors.MissingRoot("x"), "context"), want: ExitMissingPrerequisite},
		"unreadable directory": {
			err:  apperrors.NewRuntimeError("failed to read directory agent-output/sub", fs.ErrPermission),
			want: ExitRuntimeFault,
		},
		"unexpected argument": {
			err:  apperrors.UnexpectedArgs("artifactcheck validate", "artifactcheck validate [flags]", []string{"x"}),
			want: ExitInvalidArguments,
		},
		"invalid flag": {
			err:  apperrors.InvalidFlag("artifactcheck", "artifactcheck [flags]", assert.AnError),
			want: ExitInvalidArguments,
		},
		"plain error":   {err: assert.AnError, want: ExitValidationFailed},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
