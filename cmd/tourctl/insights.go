package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
)

var insightsCmd = &cobra.Command{
	Use:   "insights <destination>",
	Short: "Print the comparison report for one destination",
	Long: `Compare every package offered for a destination and print the report
as indented JSON. The destination is matched case-insensitively.

Examples:
  tourctl insights "Hội An"
  tourctl insights "da lat"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openInsights(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		report, err := svc.DestinationReport(cmd.Context(), args[0])
		switch {
		case errors.Is(err, domain.ErrValidation):
			return errors.New("destination must not be blank")
		case errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("no packages found for destination %q", args[0])
		case err != nil:
			return err
		}
		return writeJSON(cmd.OutOrStdout(), report)
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
