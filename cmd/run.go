package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/naka-gawa/github-profile-explorer/internal/config"
	"github.com/naka-gawa/github-profile-explorer/internal/domain"
	"github.com/naka-gawa/github-profile-explorer/internal/gateway"
	"github.com/naka-gawa/github-profile-explorer/internal/ui"
	"github.com/naka-gawa/github-profile-explorer/internal/usecase"
)

// ErrNotTerminal is returned when the interactive table is requested without a terminal.
var ErrNotTerminal = errors.New("the interactive table needs a terminal, use --format json")

// fetchFunc retrieves the repositories a subcommand is about.
type fetchFunc func(ctx context.Context, agg *usecase.Aggregator, q domain.Query, cfg *config.Config) ([]domain.Repository, error)

// run is shared by the repos and page subcommands: it resolves the settings,
// wires the gateway into the aggregator, fetches and presents the result.
// validate, when non-nil, adds the subcommand's own checks on the settings.
func run(cmd *cobra.Command, settings *viper.Viper, args []string, validate func(*config.Config) error, fetch fetchFunc) error {
	ctx := cmd.Context()

	scope, err := domain.ParseScope(args[0])
	if err != nil {
		return err
	}
	cfg, err := config.Load(settings)
	if err != nil {
		return fmt.Errorf("problem parsing arguments: %w", err)
	}
	if validate != nil {
		if err := validate(cfg); err != nil {
			return fmt.Errorf("problem parsing arguments: %w", err)
		}
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, verbose)

	// Inject dependencies.
	githubGateway, err := gateway.NewGitHubGateway(gateway.Options{
		BaseURL:   cfg.APIURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.HTTPTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	aggregator := usecase.NewAggregator(githubGateway, logger)

	out := cmd.OutOrStdout()
	interactive := isTerminal(out)
	if cfg.Format == config.FormatTUI && !interactive {
		return ErrNotTerminal
	}

	q := domain.Query{
		Scope:     scope,
		Identity:  args[1],
		Sort:      cfg.Sort,
		Direction: cfg.Direction,
		PerPage:   cfg.PerPage,
	}
	logger.Debug("resolved query", "scope", q.Scope, "identity", q.Identity, "sort", q.Sort, "direction", q.Direction, "per_page", q.PerPage)

	var repos []domain.Repository
	action := func(ctx context.Context) error {
		var err error
		repos, err = fetch(ctx, aggregator, q, cfg)
		return err
	}
	// Verbose runs log to stderr, which the spinner would draw over.
	if interactive && !verbose && isTerminal(cmd.ErrOrStderr()) {
		err = ui.RunWithSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Fetching repositories of %s...", q.Identity), action)
	} else {
		err = action(ctx)
	}
	if err != nil {
		return err
	}
	logger.Info("fetched repositories", "count", len(repos))

	if cfg.Format == config.FormatJSON {
		return writeJSON(out, repos)
	}
	return ui.Run(ui.NewModel(fmt.Sprintf("%s (%s)", q.Identity, q.Scope), repos))
}

func newLogger(w io.Writer, level string, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          config.AppName,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// writeJSON marshals the results into a pretty-printed JSON document.
func writeJSON(w io.Writer, repos []domain.Repository) error {
	jsonData, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
