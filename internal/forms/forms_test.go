package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassabook-dev/kassabook/internal/model"
)

func TestAccountFormApply(t *testing.T) {
	acct := model.Account{ID: model.NewID(), Balance: 500}

	form := AccountForm{
		Name:     "Salary card",
		Type:     "debit_card",
		Number:   "4276 1234 5678 0000",
		BankCode: "45342768",
	}
	require.NoError(t, form.Apply(&acct))
	assert.Equal(t, "Salary card", acct.Name)
	assert.Equal(t, model.AccountTypeDebitCard, acct.Type)
	assert.Equal(t, uint32(45342768), acct.BankCode)
	assert.Equal(t, uint64(500), acct.Balance, "apply never touches the balance")
}

func TestAccountFormRejections(t *testing.T) {
	cases := []struct {
		name  string
		form  AccountForm
		field string
	}{
		{"missing name", AccountForm{Type: "cash"}, "Name"},
		{"number too long", AccountForm{Name: "X", Type: "cash", Number: strings.Repeat("4", 31)}, "Number"},
		{"bank code too long", AccountForm{Name: "X", Type: "cash", BankCode: "1234567890"}, "BankCode"},
		{"bank code not numeric", AccountForm{Name: "X", Type: "cash", BankCode: "abc"}, "BankCode"},
		{"unknown type", AccountForm{Name: "X", Type: "checking"}, "Type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acct := model.Account{ID: model.NewID(), Name: "before"}
			err := tc.form.Apply(&acct)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, "before", acct.Name, "rejected form must not mutate the account")
		})
	}
}

func TestAccountFormBoundaries(t *testing.T) {
	acct := model.Account{}
	form := AccountForm{
		Name:     "X",
		Type:     "cash",
		Number:   strings.Repeat("4", 30),
		BankCode: "123456789",
	}
	require.NoError(t, form.Apply(&acct))
	assert.Len(t, acct.Number, 30)
	assert.Equal(t, uint32(123456789), acct.BankCode)

	// Empty bank code means zero.
	acct = model.Account{}
	require.NoError(t, AccountForm{Name: "X", Type: "cash"}.Apply(&acct))
	assert.Zero(t, acct.BankCode)
}

func TestOperationFormParse(t *testing.T) {
	account := model.NewID()
	receipt := model.NewID()

	op, err := OperationForm{
		DateTime:  "2025-06-01T10:00:00",
		AccountID: account.String(),
		Type:      "buy",
		Summary:   "12050",
		Direction: "credit",
		ReceiptID: receipt.String(),
	}.Parse()
	require.NoError(t, err)
	assert.Equal(t, account, op.AccountID)
	assert.Equal(t, model.OperationBuy, op.Type)
	assert.Equal(t, uint64(12050), op.Summary)
	assert.Equal(t, model.DirectionCredit, op.Direction)
	require.NotNil(t, op.ReceiptID)
	assert.Equal(t, receipt, *op.ReceiptID)
	assert.Equal(t, "2025-06-01T10:00:00", op.DateTime.String())
}

func TestOperationFormDefaults(t *testing.T) {
	op, err := OperationForm{
		AccountID: model.NewID().String(),
		Type:      "initial",
		Summary:   "0",
		Direction: "debit",
	}.Parse()
	require.NoError(t, err)
	assert.False(t, op.DateTime.IsZero(), "empty date defaults to now")
	assert.Nil(t, op.ReceiptID, "empty receipt id stays absent")
}

func TestOperationFormRejections(t *testing.T) {
	valid := OperationForm{
		AccountID: model.NewID().String(),
		Type:      "initial",
		Summary:   "100",
		Direction: "debit",
	}

	cases := []struct {
		name   string
		mutate func(*OperationForm)
		field  string
	}{
		{"bad account id", func(f *OperationForm) { f.AccountID = "not-a-uuid" }, "AccountID"},
		{"negative summary", func(f *OperationForm) { f.Summary = "-5" }, "Summary"},
		{"summary not a number", func(f *OperationForm) { f.Summary = "ten" }, "Summary"},
		{"unknown type", func(f *OperationForm) { f.Type = "transfer" }, "Type"},
		{"unknown direction", func(f *OperationForm) { f.Direction = "sideways" }, "Direction"},
		{"bad receipt id", func(f *OperationForm) { f.ReceiptID = "zzz" }, "ReceiptID"},
		{"bad date", func(f *OperationForm) { f.DateTime = "tomorrow" }, "DateTime"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := valid
			tc.mutate(&form)
			_, err := form.Parse()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestOptionalAmountNormalization(t *testing.T) {
	for _, in := range []string{"", "0", "  ", " 0 "} {
		got, err := OptionalAmount("Cash", in)
		require.NoError(t, err)
		assert.Nil(t, got, "input %q must normalize to absent", in)
	}

	got, err := OptionalAmount("Cash", "0.00")
	require.NoError(t, err)
	require.NotNil(t, got, `"0.00" is not the literal zero and stays a value`)
	assert.True(t, got.IsZero())

	got, err = OptionalAmount("Cash", "120.50")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "120.50", got.StringFixed(2))

	_, err = OptionalAmount("Cash", "12,50")
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Cash", verr.Field)

	_, err = OptionalAmount("Cash", "-1")
	assert.Error(t, err)
}

func TestOptionalTextNormalization(t *testing.T) {
	assert.Nil(t, OptionalText(""))
	assert.Nil(t, OptionalText("0"))
	assert.Nil(t, OptionalText("   "))

	got := OptionalText("Grocery #4")
	require.NotNil(t, got)
	assert.Equal(t, "Grocery #4", *got)
}

func TestReceiptFormParse(t *testing.T) {
	r, err := ReceiptForm{
		DateTime:        "2025-04-02T18:45:09",
		CalculationType: "inbound",
		Address:         "Lenina st. 1",
		Place:           "",
		Summary:         "120.50",
		Cash:            "120.50",
		Cashless:        "0",
		Vat:             "20.08",
		URL:             "",
		Subjects: []SubjectForm{
			{Name: "Milk", UnitType: "pieces", Count: "2", Price: "55.10", Summary: "110.20", VatType: "vat10", Vat: "10.02"},
		},
	}.Parse()
	require.NoError(t, err)

	assert.Equal(t, model.CalculationInbound, r.CalculationType)
	require.NotNil(t, r.Address)
	assert.Nil(t, r.Place)
	assert.Nil(t, r.Cashless, `literal "0" means absent`)
	assert.Nil(t, r.URL)
	require.NotNil(t, r.Cash)
	assert.Equal(t, "120.50", r.Cash.StringFixed(2))
	require.Len(t, r.Subjects, 1)
	assert.Equal(t, model.UnitPieces, r.Subjects[0].UnitType)
	assert.Equal(t, uint64(2), r.Subjects[0].Count)
	assert.Equal(t, model.Vat10, r.Subjects[0].VatType)
	assert.Equal(t, model.ID{}, r.ID, "parse assigns no id")
}

func TestReceiptFormRejections(t *testing.T) {
	_, err := ReceiptForm{CalculationType: "inbound"}.Parse()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Summary", verr.Field)

	_, err = ReceiptForm{CalculationType: "refund", Summary: "1"}.Parse()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "CalculationType", verr.Field)

	_, err = ReceiptForm{
		CalculationType: "inbound",
		Summary:         "1",
		Subjects:        []SubjectForm{{Name: "X", UnitType: "pieces", VatType: "vat0", Price: "abc"}},
	}.Parse()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Price", verr.Field)
}

func TestSubjectFormParse(t *testing.T) {
	s, err := SubjectForm{
		Name:     "Apples",
		UnitType: "kilograms",
		Count:    "",
		Price:    "10.30",
		Summary:  "10.30",
		VatType:  "vat20",
		Vat:      "1.72",
	}.Parse()
	require.NoError(t, err)
	assert.Zero(t, s.Count)
	assert.Equal(t, "10.30", s.Price.StringFixed(2))

	_, err = SubjectForm{UnitType: "pieces", VatType: "vat0"}.Parse()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name", verr.Field)

	_, err = SubjectForm{Name: "X", UnitType: "litres", VatType: "vat0"}.Parse()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "UnitType", verr.Field)

	_, err = SubjectForm{Name: "X", UnitType: "pieces", VatType: "vat0", Count: "-1"}.Parse()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Count", verr.Field)
}

func TestDateTimeParsing(t *testing.T) {
	dt, err := DateTime("DateTime", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T00:00:00", dt.String())

	dt, err = DateTime("DateTime", "")
	require.NoError(t, err)
	assert.False(t, dt.IsZero())

	_, err = DateTime("DateTime", "01.06.2025")
	require.Error(t, err)
}
