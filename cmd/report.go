package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReportCmd(root *rootOptions) *cobra.Command {
	var (
		n        int
		xlsxPath string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the items you get wrong most often",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a := newApp(root.configPath)
			defer a.close()

			if err := a.services.Prepare(ctx); err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			if xlsxPath == "" {
				report, err := a.services.Report(ctx, n)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), report)
				return nil
			}

			f, err := os.Create(xlsxPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", xlsxPath, err)
			}
			defer f.Close()

			if err := a.services.Export(f, n); err != nil {
				return err
			}
			a.log.Info("report exported", zap.String("file", xlsxPath), zap.Int("size", n))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "number", "n", defaultReportSize, "number of items")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the report to this spreadsheet instead")

	return cmd
}
