package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hance08/tally/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	Format string
	Out    string
}

func NewExportCmd(svc *service.Service) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all accounts, categories, transactions and settings",
		Long:  `Write the whole book as YAML (default) or JSON to stdout or a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = cmd.OutOrStdout()
			if flags.Out != "" {
				f, err := os.Create(flags.Out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", flags.Out, err)
				}
				defer f.Close()
				w = f
			}

			if err := svc.Export(cmd.Context(), w, flags.Format); err != nil {
				return err
			}

			if flags.Out != "" {
				pterm.Success.Printf("Exported to %s\n", flags.Out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", service.FormatYAML, "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.Out, "out", "o", "", "Write to this file instead of stdout")

	return cmd
}
