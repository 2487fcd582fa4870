// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/naka-gawa/github-profile-explorer/internal/config"
	"github.com/naka-gawa/github-profile-explorer/internal/domain"
	"github.com/naka-gawa/github-profile-explorer/internal/gateway"
)

// NewRootCmd builds the command tree with its own settings store.
func NewRootCmd() *cobra.Command {
	settings := viper.New()

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A CLI tool to browse the repositories of a GitHub organization or user.",
		Long: `github-profile-explorer lists the public repositories of a GitHub organization
or user and shows them in an interactive, scrollable table.
Results can also be written as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			cfgFile, _ := cmd.Flags().GetString("config")
			return config.Init(settings, cfgFile)
		},
	}

	defaults := config.Default()
	flags := rootCmd.PersistentFlags()
	// Add a persistent flag for verbose output, available to all commands.
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.String("config", "", "config file (default is $XDG_CONFIG_HOME/github-profile-explorer/config.yaml)")
	flags.StringP("sort", "s", defaults.Sort, "The property to sort the results by (created/updated/pushed/full_name)")
	flags.StringP("direction", "d", defaults.Direction, "The order to sort by (asc/desc)")
	flags.IntP("per-page", "c", defaults.PerPage, fmt.Sprintf("Number of results per page, max: %d", domain.MaxPerPage))
	flags.StringP("format", "o", defaults.Format, "Output format (tui/json)")
	flags.String("api-url", gateway.DefaultBaseURL, "GitHub REST API base URL")
	bindFlags(settings, flags, map[string]string{
		"sort":      "sort",
		"direction": "direction",
		"per_page":  "per-page",
		"format":    "format",
		"api_url":   "api-url",
	})

	rootCmd.AddCommand(newReposCmd(settings), newPageCmd(settings))
	return rootCmd
}

// Execute builds the root command and runs it. A failure is reported as a
// single line on stderr and exits with status 1.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, domain.Describe(err))
		os.Exit(1)
	}
}

// bindFlags binds each settings key to the named flag. A missing flag is a
// programming error and panics.
func bindFlags(settings *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := settings.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %q to %q: %v", name, key, err))
		}
	}
}
