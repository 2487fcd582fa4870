package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/naka-gawa/github-profile-explorer/internal/config"
	"github.com/naka-gawa/github-profile-explorer/internal/domain"
	"github.com/naka-gawa/github-profile-explorer/internal/usecase"
)

func newPageCmd(settings *viper.Viper) *cobra.Command {
	pageCmd := &cobra.Command{
		Use:   "page <org|user> <name>",
		Short: "Browses a single page of an organization's or user's repositories",
		Long: `Fetches exactly one page of the repository listing of an organization or user
and shows it in an interactive table (or as JSON with --format json).`,
		Example: `  github-profile-explorer page org golang --page 2 --per-page 50`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, settings, args, (*config.Config).ValidatePage, func(ctx context.Context, agg *usecase.Aggregator, q domain.Query, cfg *config.Config) ([]domain.Repository, error) {
				return agg.FetchPage(ctx, q, cfg.Page)
			})
		},
	}

	pageCmd.Flags().IntP("page", "p", config.Default().Page, "Number of the page to fetch")
	bindFlags(settings, pageCmd.Flags(), map[string]string{"page": "page"})
	return pageCmd
}
