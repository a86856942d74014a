package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kassabook-dev/kassabook/internal/buildinfo"
	"github.com/kassabook-dev/kassabook/internal/config"
	"github.com/kassabook-dev/kassabook/internal/logging"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	ledgerPath string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "kassabook",
		Short:   "Personal bookkeeping on a single JSON ledger file",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to kassabook.yaml")
	rootCmd.PersistentFlags().StringVar(&opts.ledgerPath, "ledger", "", "path to the ledger file (overrides config)")

	rootCmd.AddCommand(
		newInitCommand(),
		newAccountCommand(opts),
		newOperationCommand(opts),
		newReceiptCommand(opts),
		newShowCommand(opts),
	)

	return rootCmd
}

// session is the resolved runtime environment of one command run.
type session struct {
	log        *slog.Logger
	ledgerPath string
}

// session resolves config file, environment and flags into a session.
// Precedence for the ledger path: --ledger flag, then KASSABOOK_LEDGER,
// then the config file, then the built-in default.
func (o *globalOptions) session() (*session, error) {
	cfg := config.Default()

	path := o.configPath
	if path == "" {
		path = os.Getenv("KASSABOOK_CONFIG")
	}
	explicit := path != ""
	if path == "" {
		path = config.DefaultFileName
	}

	loaded, err := config.Load(path)
	switch {
	case err == nil:
		cfg = loaded
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	ledgerPath := cfg.Ledger.Path
	if env := os.Getenv("KASSABOOK_LEDGER"); env != "" {
		ledgerPath = env
	}
	if o.ledgerPath != "" {
		ledgerPath = o.ledgerPath
	}

	return &session{
		log:        logging.New(cfg.Logging.Level),
		ledgerPath: ledgerPath,
	}, nil
}
