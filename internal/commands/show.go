package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kassabook-dev/kassabook/internal/ledger"
)

func newShowCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Summarize the ledger file",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			svc, err := ledger.Load(sess.ledgerPath)
			if err != nil {
				return err
			}

			fmt.Printf("Ledger %s (schema %s)\n", sess.ledgerPath, svc.Version())
			fmt.Printf("  accounts:   %d\n", len(svc.Accounts()))
			fmt.Printf("  operations: %d\n", len(svc.Operations()))
			fmt.Printf("  receipts:   %d\n", len(svc.Receipts()))
			for _, a := range svc.Accounts() {
				fmt.Printf("  %-15s %-16s %s\n", a.Name, a.Type, formatMinor(a.Balance))
			}
			return nil
		},
	}
}
