// Package forms converts free-text field values, as a user typed them
// into an edit dialog, into typed model values. Nothing here mutates an
// entity until every field of the form has parsed.
package forms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/kassabook-dev/kassabook/internal/model"
)

// ValidationError reports a user-entered field that failed to parse.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s: %s (got %q)", e.Field, e.Reason, e.Value)
}

var validate = validator.New()

// check runs the struct-tag rules on a form and maps the first failure
// to a ValidationError naming the offending field.
func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{
			Field:  fe.Field(),
			Value:  fmt.Sprint(fe.Value()),
			Reason: fmt.Sprintf("failed %q constraint", fe.Tag()),
		}
	}
	return err
}

// AccountForm mirrors the account edit dialog: every field as text.
type AccountForm struct {
	Name     string `validate:"required"`
	Type     string
	Number   string `validate:"max=30"`
	BankCode string `validate:"omitempty,number,max=9"`
}

// Apply validates the form and writes its fields onto acct. The account
// is untouched when any field fails. The id is never written here.
func (f AccountForm) Apply(acct *model.Account) error {
	if err := check(f); err != nil {
		return err
	}

	accountType, err := model.ParseAccountType(f.Type)
	if err != nil {
		return &ValidationError{Field: "Type", Value: f.Type, Reason: "unknown account type"}
	}

	var bankCode uint64
	if f.BankCode != "" {
		bankCode, err = strconv.ParseUint(f.BankCode, 10, 32)
		if err != nil {
			return &ValidationError{Field: "BankCode", Value: f.BankCode, Reason: "not a number"}
		}
	}

	acct.Name = f.Name
	acct.Type = accountType
	acct.Number = f.Number
	acct.BankCode = uint32(bankCode)
	return nil
}

// OperationForm mirrors the operation edit dialog.
type OperationForm struct {
	DateTime  string
	AccountID string `validate:"required,uuid"`
	Type      string
	Summary   string `validate:"required"`
	Direction string
	ReceiptID string `validate:"omitempty,uuid"`
}

// Parse converts the form into an operation without an id; the caller
// decides whether it is a fresh commit or an edit of an existing one.
func (f OperationForm) Parse() (model.Operation, error) {
	if err := check(f); err != nil {
		return model.Operation{}, err
	}

	accountID, err := model.ParseID(f.AccountID)
	if err != nil {
		return model.Operation{}, &ValidationError{Field: "AccountID", Value: f.AccountID, Reason: "not a uuid"}
	}

	dateTime, err := DateTime("DateTime", f.DateTime)
	if err != nil {
		return model.Operation{}, err
	}

	opType, err := model.ParseOperationType(f.Type)
	if err != nil {
		return model.Operation{}, &ValidationError{Field: "Type", Value: f.Type, Reason: "unknown operation type"}
	}

	direction, err := model.ParseFinanceDirection(f.Direction)
	if err != nil {
		return model.Operation{}, &ValidationError{Field: "Direction", Value: f.Direction, Reason: "unknown direction"}
	}

	summary, err := strconv.ParseUint(f.Summary, 10, 64)
	if err != nil {
		return model.Operation{}, &ValidationError{Field: "Summary", Value: f.Summary, Reason: "not a non-negative integer"}
	}

	op := model.Operation{
		DateTime:  dateTime,
		AccountID: accountID,
		Type:      opType,
		Summary:   summary,
		Direction: direction,
	}
	if f.ReceiptID != "" {
		receiptID, err := model.ParseID(f.ReceiptID)
		if err != nil {
			return model.Operation{}, &ValidationError{Field: "ReceiptID", Value: f.ReceiptID, Reason: "not a uuid"}
		}
		op.ReceiptID = &receiptID
	}
	return op, nil
}

// SubjectForm mirrors one line-item row of the receipt dialog.
type SubjectForm struct {
	Name     string `validate:"required"`
	UnitType string
	Count    string
	Price    string
	Summary  string
	VatType  string
	Vat      string
}

// Parse converts the row into a subject.
func (f SubjectForm) Parse() (model.Subject, error) {
	if err := check(f); err != nil {
		return model.Subject{}, err
	}

	unitType, err := model.ParseUnitType(f.UnitType)
	if err != nil {
		return model.Subject{}, &ValidationError{Field: "UnitType", Value: f.UnitType, Reason: "unknown unit"}
	}

	vatType, err := model.ParseVatType(f.VatType)
	if err != nil {
		return model.Subject{}, &ValidationError{Field: "VatType", Value: f.VatType, Reason: "unknown VAT rate"}
	}

	var count uint64
	if f.Count != "" {
		count, err = strconv.ParseUint(f.Count, 10, 64)
		if err != nil {
			return model.Subject{}, &ValidationError{Field: "Count", Value: f.Count, Reason: "not a non-negative integer"}
		}
	}

	price, err := Amount("Price", f.Price)
	if err != nil {
		return model.Subject{}, err
	}
	summary, err := Amount("Summary", f.Summary)
	if err != nil {
		return model.Subject{}, err
	}
	vat, err := Amount("Vat", f.Vat)
	if err != nil {
		return model.Subject{}, err
	}

	return model.Subject{
		Name:     f.Name,
		UnitType: unitType,
		Count:    count,
		Price:    price,
		Summary:  summary,
		VatType:  vatType,
		Vat:      vat,
	}, nil
}

// ReceiptForm mirrors the receipt edit dialog.
type ReceiptForm struct {
	DateTime        string
	CalculationType string
	Address         string
	Place           string
	Summary         string `validate:"required"`
	Cash            string
	Cashless        string
	Prepayment      string
	Postpayment     string
	InKind          string
	Vat             string
	URL             string
	Subjects        []SubjectForm
}

// Parse converts the form into a receipt without an id. Every optional
// field goes through the absent-on-empty normalization.
func (f ReceiptForm) Parse() (model.Receipt, error) {
	if err := check(f); err != nil {
		return model.Receipt{}, err
	}

	dateTime, err := DateTime("DateTime", f.DateTime)
	if err != nil {
		return model.Receipt{}, err
	}

	calcType, err := model.ParseCalculationType(f.CalculationType)
	if err != nil {
		return model.Receipt{}, &ValidationError{Field: "CalculationType", Value: f.CalculationType, Reason: "unknown calculation type"}
	}

	summary, err := Amount("Summary", f.Summary)
	if err != nil {
		return model.Receipt{}, err
	}

	r := model.Receipt{
		DateTime:        dateTime,
		CalculationType: calcType,
		Address:         OptionalText(f.Address),
		Place:           OptionalText(f.Place),
		Summary:         summary,
		URL:             OptionalText(f.URL),
	}

	optional := []struct {
		field string
		value string
		dst   **decimal.Decimal
	}{
		{"Cash", f.Cash, &r.Cash},
		{"Cashless", f.Cashless, &r.Cashless},
		{"Prepayment", f.Prepayment, &r.Prepayment},
		{"Postpayment", f.Postpayment, &r.Postpayment},
		{"InKind", f.InKind, &r.InKind},
		{"Vat", f.Vat, &r.Vat},
	}
	for _, o := range optional {
		parsed, err := OptionalAmount(o.field, o.value)
		if err != nil {
			return model.Receipt{}, err
		}
		*o.dst = parsed
	}

	for _, sf := range f.Subjects {
		subject, err := sf.Parse()
		if err != nil {
			return model.Receipt{}, err
		}
		r.Subjects = append(r.Subjects, subject)
	}
	return r, nil
}

// Amount parses a required monetary field. Empty input means zero.
func Amount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: field, Value: s, Reason: "not a decimal amount"}
	}
	if d.IsNegative() {
		return decimal.Decimal{}, &ValidationError{Field: field, Value: s, Reason: "must not be negative"}
	}
	return d, nil
}

// OptionalAmount parses an optional monetary field. Empty input and the
// literal "0" both mean the field is absent, not a stored zero.
func OptionalAmount(field, s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return nil, nil
	}
	d, err := Amount(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// OptionalText normalizes an optional text field the same way the
// optional amounts are normalized: empty and the literal "0" mean
// absent.
func OptionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return nil
	}
	return &s
}

// DateTime parses a user-entered timestamp. Empty input defaults to the
// current local time; a bare date means midnight of that day.
func DateTime(field, s string) (model.DateTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.Now(), nil
	}
	if dt, err := model.ParseDateTime(s); err == nil {
		return dt, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return model.DateTime{}, &ValidationError{Field: field, Value: s, Reason: "not a date or date-time"}
	}
	return model.DateTime{Time: t}, nil
}
