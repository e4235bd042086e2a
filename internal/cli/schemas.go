package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan-vella/rebel-ops/internal/cli/shared"
	apperrors "github.com/jonathan-vella/rebel-ops/internal/errors"
	"github.com/jonathan-vella/rebel-ops/internal/schema"
	"github.com/spf13/cobra"
)

func newSchemasCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List the artifact schemas in effect",
		Long: `List every artifact schema of the registry in effect: the built-in one, or
the file given with --registry. The yaml format can be fed back through
--registry.`,
		Example: `  artifactcheck schemas
  artifactcheck schemas --format yaml > registry.yaml`,
		GroupID: GroupConfiguration,
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			reg, err := loadRegistry(cfg.Registry)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				printSchemas(out, reg, cfg.Strictness)
				return nil
			case "yaml":
				return reg.WriteYAML(out)
			default:
				return apperrors.NewArgumentErrorWithUsage(
					fmt.Sprintf("unknown format %q", format),
					"artifactcheck schemas --format text|yaml",
				)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text|yaml)")
	return cmd
}

func printSchemas(out io.Writer, reg *schema.Registry, override string) {
	c := shared.NewColors()
	fmt.Fprintf(out, "%d artifact schemas (strictness: %s)\n", reg.Len(), shared.StrictnessMode(override))

	for _, s := range reg.Schemas() {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s %s\n", c.Cyan(s.Name), c.Dim("["+string(schema.ResolveStrictness(schema.Strictness(override), s))+"]"))
		fmt.Fprintf(out, "  template: %s\n", s.TemplatePath)
		if s.AgentPath != "" {
			fmt.Fprintf(out, "  agent:    %s\n", s.AgentPath)
		}
		fmt.Fprintf(out, "  required: %s\n", strings.Join(s.RequiredHeadings, " | "))
		if len(s.OptionalHeadings) > 0 {
			fmt.Fprintf(out, "  optional: %s\n", strings.Join(s.OptionalHeadings, " | "))
		}
	}

	if docs := reg.Standards(); len(docs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "standards documents:")
		for _, d := range docs {
			fmt.Fprintf(out, "  %s\n", d.Path)
		}
	}
}
