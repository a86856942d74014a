package model

import "fmt"

// AccountType classifies accounts. Pure classification: no behavioral
// difference between types exists in the core.
type AccountType string

const (
	AccountTypeGeneric        AccountType = "generic"
	AccountTypeCash           AccountType = "cash"
	AccountTypeDebitCard      AccountType = "debit_card"
	AccountTypeCreditCard     AccountType = "credit_card"
	AccountTypeCreditAccount  AccountType = "credit_account"
	AccountTypeSavingsAccount AccountType = "savings_account"
	AccountTypeDeposit        AccountType = "deposit"
)

// AccountTypes lists every valid account type in selection order.
var AccountTypes = []AccountType{
	AccountTypeGeneric,
	AccountTypeCash,
	AccountTypeDebitCard,
	AccountTypeCreditCard,
	AccountTypeCreditAccount,
	AccountTypeSavingsAccount,
	AccountTypeDeposit,
}

// Valid reports whether t is a known account type tag.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeGeneric, AccountTypeCash, AccountTypeDebitCard,
		AccountTypeCreditCard, AccountTypeCreditAccount,
		AccountTypeSavingsAccount, AccountTypeDeposit:
		return true
	}
	return false
}

// ParseAccountType parses an account type tag.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown account_type %q", s)
	}
	return t, nil
}

// MaxAccountNumberLen bounds the free-form account/card number.
const MaxAccountNumberLen = 30

// MaxBankCodeDigits bounds the numeric bank routing code.
const MaxBankCodeDigits = 9

// Account is a named money-holding entity.
type Account struct {
	ID     ID          `json:"id"`
	Name   string      `json:"name"`
	Type   AccountType `json:"account_type"`
	Number string      `json:"number"`
	// BankCode is the bank routing identifier, at most nine digits.
	BankCode uint32 `json:"bik"`
	// Balance is a stored amount in the account's minor currency unit.
	// It is settable directly and is never recomputed from operations.
	Balance uint64 `json:"sum"`
}
