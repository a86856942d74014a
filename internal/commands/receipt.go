package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kassabook-dev/kassabook/internal/forms"
	"github.com/kassabook-dev/kassabook/internal/ledger"
	"github.com/kassabook-dev/kassabook/internal/model"
)

func newReceiptCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Manage receipts",
	}
	cmd.AddCommand(
		newReceiptAddCommand(opts),
		newReceiptListCommand(opts),
	)
	return cmd
}

func newReceiptAddCommand(opts *globalOptions) *cobra.Command {
	var (
		id            string
		withOperation bool
		accountID     string
		subjects      []string
		form          forms.ReceiptForm
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a receipt, or edit one by id",
		Long: `Create a receipt, or edit one by id.

With --with-operation the companion ledger operation is committed in the
same step: its direction and type follow the receipt's calculation type,
its date and amount are copied from the receipt, and it points back at
the receipt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range subjects {
				sf, err := parseSubjectFlag(raw)
				if err != nil {
					return err
				}
				form.Subjects = append(form.Subjects, sf)
			}
			return runReceiptAdd(opts, id, form, withOperation, accountID)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "existing receipt id to edit")
	cmd.Flags().StringVar(&form.CalculationType, "calculation", string(model.CalculationInbound), "calculation type")
	cmd.Flags().StringVar(&form.DateTime, "date", "", "date or date-time, defaults to now")
	cmd.Flags().StringVar(&form.Address, "address", "", "address")
	cmd.Flags().StringVar(&form.Place, "place", "", "point-of-sale name")
	cmd.Flags().StringVar(&form.Summary, "summary", "", "receipt total (required)")
	_ = cmd.MarkFlagRequired("summary")
	cmd.Flags().StringVar(&form.Cash, "cash", "", "cash sub-total")
	cmd.Flags().StringVar(&form.Cashless, "cashless", "", "cashless sub-total")
	cmd.Flags().StringVar(&form.Prepayment, "prepayment", "", "prepayment sub-total")
	cmd.Flags().StringVar(&form.Postpayment, "postpayment", "", "postpayment sub-total")
	cmd.Flags().StringVar(&form.InKind, "in-kind", "", "in-kind sub-total")
	cmd.Flags().StringVar(&form.Vat, "vat", "", "VAT total")
	cmd.Flags().StringVar(&form.URL, "url", "", "link to a hosted receipt copy")
	cmd.Flags().StringArrayVar(&subjects, "subject", nil,
		"line item as name|unit|count|price|summary|vat_type|vat (repeatable)")
	cmd.Flags().BoolVar(&withOperation, "with-operation", false, "also commit the companion operation")
	cmd.Flags().StringVar(&accountID, "account", "", "account for the companion operation")

	return cmd
}

// parseSubjectFlag splits a --subject value into its form fields.
func parseSubjectFlag(raw string) (forms.SubjectForm, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 7 {
		return forms.SubjectForm{}, fmt.Errorf("subject %q: want 7 |-separated fields, got %d", raw, len(parts))
	}
	return forms.SubjectForm{
		Name:     parts[0],
		UnitType: parts[1],
		Count:    parts[2],
		Price:    parts[3],
		Summary:  parts[4],
		VatType:  parts[5],
		Vat:      parts[6],
	}, nil
}

func runReceiptAdd(opts *globalOptions, id string, form forms.ReceiptForm, withOperation bool, accountID string) error {
	sess, err := opts.session()
	if err != nil {
		return err
	}

	if withOperation && accountID == "" {
		return fmt.Errorf("--with-operation requires --account")
	}

	r, err := form.Parse()
	if err != nil {
		return err
	}
	if id != "" {
		parsed, err := model.ParseID(id)
		if err != nil {
			return fmt.Errorf("parsing receipt id: %w", err)
		}
		r.ID = parsed
	}

	svc, err := ledger.Load(sess.ledgerPath)
	if err != nil {
		return err
	}

	if withOperation {
		account, err := model.ParseID(accountID)
		if err != nil {
			return fmt.Errorf("parsing account id: %w", err)
		}
		if r.ID == (model.ID{}) {
			r.ID = model.NewID()
		}
		op, err := ledger.DeriveOperation(r, account)
		if err != nil {
			return err
		}
		if _, err := svc.PutOperation(op); err != nil {
			return err
		}
		sess.log.Info("operation derived from receipt",
			"operation", op.ID, "receipt", r.ID, "type", op.Type, "direction", op.Direction)
	}

	committed := svc.PutReceipt(r)
	if err := svc.Save(sess.ledgerPath); err != nil {
		return err
	}

	sess.log.Info("receipt committed", "id", committed, "calculation", r.CalculationType)
	fmt.Printf("Receipt %s committed\n", committed)
	return nil
}

func newReceiptListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List receipts",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			svc, err := ledger.Load(sess.ledgerPath)
			if err != nil {
				return err
			}
			for _, r := range svc.Receipts() {
				place := "-"
				if r.Place != nil {
					place = *r.Place
				}
				fmt.Printf("%s  %s  %-16s %s  %d item(s)  %s\n",
					r.ID, r.DateTime, r.CalculationType, r.Summary.StringFixed(2),
					len(r.Subjects), place)
			}
			return nil
		},
	}
}
