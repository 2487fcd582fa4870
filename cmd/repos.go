package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/naka-gawa/github-profile-explorer/internal/config"
	"github.com/naka-gawa/github-profile-explorer/internal/domain"
	"github.com/naka-gawa/github-profile-explorer/internal/usecase"
)

func newReposCmd(settings *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "repos <org|user> <name>",
		Short: "Browses every repository of an organization or user",
		Long: `Fetches every page of the repository listing of an organization or user,
starting at page 1 and stopping at the first empty page, then shows the
result in an interactive table (or as JSON with --format json).`,
		Example: `  github-profile-explorer repos org golang
  github-profile-explorer repos user octocat --sort updated --direction asc`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, settings, args, nil, func(ctx context.Context, agg *usecase.Aggregator, q domain.Query, _ *config.Config) ([]domain.Repository, error) {
				return agg.FetchAll(ctx, q)
			})
		},
	}
}
