package main

import (
	"github.com/spf13/cobra"

	"github.com/bao-nguyen-khac/tour-website-sub000/internal/domain"
)

var (
	destinationsPage  int
	destinationsLimit int
)

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List destinations with their package counts",
	Long: `List destinations, most packages first, as JSON.

Examples:
  tourctl destinations
  tourctl destinations --page=2 --limit=50`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, closeFn, err := openInsights(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		p := domain.NewPaginationParams(&destinationsPage, &destinationsLimit)
		data, total, err := svc.ListDestinations(cmd.Context(), p)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"data":       data,
			"page":       p.Page,
			"limit":      p.Limit,
			"total":      total,
			"totalPages": p.TotalPages(total),
		})
	},
}

func init() {
	destinationsCmd.Flags().IntVar(&destinationsPage, "page", 1, "Page number, starting at 1")
	destinationsCmd.Flags().IntVar(&destinationsLimit, "limit", 20, "Destinations per page (max 100)")
	rootCmd.AddCommand(destinationsCmd)
}
