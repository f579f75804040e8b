package main

import (
	"errors"

	"github.com/spf13/cobra"

	"readingsoundtrack/internal/soundtrack"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommends music for a book",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		title, _ := cmd.Flags().GetString("title")

		var (
			rec *soundtrack.Recommendation
			err error
		)
		switch {
		case id != "":
			rec, err = application.Orchestrator.Recommend(cmd.Context(), id)
		case title != "":
			rec, err = application.Orchestrator.RecommendByTitle(cmd.Context(), title)
		default:
			return errors.New("either --id or --title is required")
		}
		if err != nil {
			return err
		}
		return renderRecommendation(cmd.OutOrStdout(), rec)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Checks that the model answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderHealth(cmd.OutOrStdout(), application.Orchestrator.Healthy(cmd.Context()))
	},
}

func init() {
	recommendCmd.Flags().String("id", "", "book id")
	recommendCmd.Flags().String("title", "", "exact book title")
	recommendCmd.MarkFlagsMutuallyExclusive("id", "title")
	rootCmd.AddCommand(recommendCmd)

	rootCmd.AddCommand(healthCmd)
}
