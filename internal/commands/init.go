package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kassabook-dev/kassabook/internal/config"
	"github.com/kassabook-dev/kassabook/internal/ledger"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}
}

func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default()
	ledgerPath := filepath.Join(dir, cfg.Ledger.Path)
	if _, err := os.Stat(ledgerPath); err == nil {
		return fmt.Errorf("ledger file already exists at %s", ledgerPath)
	}

	if err := config.Save(filepath.Join(dir, config.DefaultFileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := ledger.New().Save(ledgerPath); err != nil {
		return fmt.Errorf("writing empty ledger: %w", err)
	}

	fmt.Printf("Initialized empty ledger at %s\n", ledgerPath)
	return nil
}
