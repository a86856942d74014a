package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kassabook-dev/kassabook/internal/forms"
	"github.com/kassabook-dev/kassabook/internal/ledger"
	"github.com/kassabook-dev/kassabook/internal/model"
)

func newOperationCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operation",
		Short: "Manage ledger operations",
	}
	cmd.AddCommand(
		newOperationAddCommand(opts),
		newOperationListCommand(opts),
	)
	return cmd
}

func newOperationAddCommand(opts *globalOptions) *cobra.Command {
	var (
		id   string
		form forms.OperationForm
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an operation, or edit one by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperationAdd(opts, id, form)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "existing operation id to edit")
	cmd.Flags().StringVar(&form.AccountID, "account", "", "account id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&form.Type, "type", string(model.OperationInitial), "operation type")
	cmd.Flags().StringVar(&form.Direction, "direction", string(model.DirectionCredit), "debit or credit")
	cmd.Flags().StringVar(&form.Summary, "summary", "", "amount in minor units (required)")
	_ = cmd.MarkFlagRequired("summary")
	cmd.Flags().StringVar(&form.DateTime, "date", "", "date or date-time, defaults to now")
	cmd.Flags().StringVar(&form.ReceiptID, "receipt", "", "receipt id to attach")

	return cmd
}

func runOperationAdd(opts *globalOptions, id string, form forms.OperationForm) error {
	sess, err := opts.session()
	if err != nil {
		return err
	}

	op, err := form.Parse()
	if err != nil {
		return err
	}
	if id != "" {
		parsed, err := model.ParseID(id)
		if err != nil {
			return fmt.Errorf("parsing operation id: %w", err)
		}
		op.ID = parsed
	}

	svc, err := ledger.Load(sess.ledgerPath)
	if err != nil {
		return err
	}
	committed, err := svc.PutOperation(op)
	if err != nil {
		return err
	}
	if err := svc.Save(sess.ledgerPath); err != nil {
		return err
	}

	sess.log.Info("operation committed",
		"id", committed, "account", op.AccountID, "type", op.Type,
		"direction", op.Direction, "summary", op.Summary)
	fmt.Printf("Operation %s committed\n", committed)
	return nil
}

func newOperationListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			svc, err := ledger.Load(sess.ledgerPath)
			if err != nil {
				return err
			}
			for _, op := range svc.Operations() {
				receipt := "-"
				if op.ReceiptID != nil {
					receipt = op.ReceiptID.String()
				}
				fmt.Printf("%s  %s  %-18s %s%s on %s receipt=%s\n",
					op.ID, op.DateTime, op.Type, op.Direction.Sign(),
					formatMinor(op.Summary), op.AccountID, receipt)
			}
			return nil
		},
	}
}
