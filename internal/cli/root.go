// Package cli implements reputationctl, the operator tool for the reputation
// service.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/config"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/observability"
)

var version = "dev"

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
)

// Execute builds the root command tree and runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	cfg      *config.Config
	logger   *slog.Logger
	logLevel string
	output   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "reputationctl",
		Short:         "Operate the PhishGuard reputation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	rootCmd.SetVersionTemplate("reputationctl version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "Output format (text, json)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if opts.output != outputText && opts.output != outputJSON {
			return fmt.Errorf("unknown output format %q", opts.output)
		}
		opts.cfg = config.Load()
		opts.logger = observability.InitLogger(observability.LogConfig{
			Output:  cmd.ErrOrStderr(),
			Level:   opts.logLevel,
			Format:  "text",
			Service: "reputationctl",
		})
		return nil
	}

	rootCmd.AddCommand(
		newCheckCmd(opts),
		newBlacklistCmd(opts),
		newTokenCmd(opts),
		newMigrateCmd(opts),
		newCertsCmd(opts),
	)

	return rootCmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
