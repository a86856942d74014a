package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kassabook-dev/kassabook/internal/forms"
	"github.com/kassabook-dev/kassabook/internal/ledger"
	"github.com/kassabook-dev/kassabook/internal/model"
)

func newAccountCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}
	cmd.AddCommand(
		newAccountAddCommand(opts),
		newAccountListCommand(opts),
		newAccountSetBalanceCommand(opts),
	)
	return cmd
}

func newAccountAddCommand(opts *globalOptions) *cobra.Command {
	var (
		id   string
		form forms.AccountForm
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account, or edit one by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountAdd(opts, id, form)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "existing account id to edit")
	cmd.Flags().StringVar(&form.Name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&form.Type, "type", string(model.AccountTypeGeneric), "account type")
	cmd.Flags().StringVar(&form.Number, "number", "", "account or card number")
	cmd.Flags().StringVar(&form.BankCode, "bik", "", "bank routing code (up to 9 digits)")

	return cmd
}

func runAccountAdd(opts *globalOptions, id string, form forms.AccountForm) error {
	sess, err := opts.session()
	if err != nil {
		return err
	}

	svc, err := ledger.Load(sess.ledgerPath)
	if err != nil {
		return err
	}

	var acct model.Account
	if id != "" {
		parsed, err := model.ParseID(id)
		if err != nil {
			return fmt.Errorf("parsing account id: %w", err)
		}
		if existing, ok := svc.Account(parsed); ok {
			acct = existing
		} else {
			acct.ID = parsed
		}
	}

	if err := form.Apply(&acct); err != nil {
		return err
	}

	committed := svc.PutAccount(acct)
	if err := svc.Save(sess.ledgerPath); err != nil {
		return err
	}

	sess.log.Info("account committed", "id", committed, "name", acct.Name)
	fmt.Printf("Account %s committed\n", committed)
	return nil
}

func newAccountListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			svc, err := ledger.Load(sess.ledgerPath)
			if err != nil {
				return err
			}
			for _, a := range svc.Accounts() {
				fmt.Printf("%s  %-16s %-15s %-30s %09d  %s\n",
					a.ID, a.Type, a.Name, a.Number, a.BankCode, formatMinor(a.Balance))
			}
			return nil
		},
	}
}

func newAccountSetBalanceCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-balance <id> <amount>",
		Short: "Overwrite an account's stored balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountSetBalance(opts, args[0], args[1])
		},
	}
}

func runAccountSetBalance(opts *globalOptions, id, amount string) error {
	sess, err := opts.session()
	if err != nil {
		return err
	}

	accountID, err := model.ParseID(id)
	if err != nil {
		return fmt.Errorf("parsing account id: %w", err)
	}

	value, err := forms.Amount("Balance", amount)
	if err != nil {
		return err
	}
	minor, err := ledger.MinorUnits(value)
	if err != nil {
		return err
	}

	svc, err := ledger.Load(sess.ledgerPath)
	if err != nil {
		return err
	}
	if err := svc.SetBalance(accountID, minor); err != nil {
		return err
	}
	if err := svc.Save(sess.ledgerPath); err != nil {
		return err
	}

	sess.log.Info("balance set", "account", accountID, "balance", minor)
	fmt.Printf("Balance of %s set to %s\n", accountID, value.StringFixed(2))
	return nil
}

// formatMinor renders a minor-unit amount as a major-unit decimal.
func formatMinor(minor uint64) string {
	return decimal.New(int64(minor), -2).StringFixed(2)
}
