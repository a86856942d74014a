package model

import "fmt"

// OperationType classifies ledger entries.
type OperationType string

const (
	OperationInitial          OperationType = "initial"
	OperationBuy              OperationType = "buy"
	OperationSell             OperationType = "sell"
	OperationReturnBuy        OperationType = "return_buy"
	OperationReturnSell       OperationType = "return_sell"
	OperationCreditToAccount  OperationType = "credit_to_account"
	OperationDebitFromAccount OperationType = "debit_from_account"
	OperationCloseAccount     OperationType = "close_account"
)

// OperationTypes lists every valid operation type in selection order.
var OperationTypes = []OperationType{
	OperationInitial,
	OperationBuy,
	OperationSell,
	OperationReturnBuy,
	OperationReturnSell,
	OperationCreditToAccount,
	OperationDebitFromAccount,
	OperationCloseAccount,
}

// Valid reports whether t is a known operation type tag.
func (t OperationType) Valid() bool {
	switch t {
	case OperationInitial, OperationBuy, OperationSell, OperationReturnBuy,
		OperationReturnSell, OperationCreditToAccount,
		OperationDebitFromAccount, OperationCloseAccount:
		return true
	}
	return false
}

// ParseOperationType parses an operation type tag.
func ParseOperationType(s string) (OperationType, error) {
	t := OperationType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown operation_type %q", s)
	}
	return t, nil
}

// FinanceDirection states whether an operation increases or decreases
// the account's value.
type FinanceDirection string

const (
	DirectionDebit  FinanceDirection = "debit"  // increases value
	DirectionCredit FinanceDirection = "credit" // decreases value
)

// Valid reports whether d is a known direction tag.
func (d FinanceDirection) Valid() bool {
	return d == DirectionDebit || d == DirectionCredit
}

// ParseFinanceDirection parses a direction tag.
func ParseFinanceDirection(s string) (FinanceDirection, error) {
	d := FinanceDirection(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown direction %q", s)
	}
	return d, nil
}

// Sign returns "+" for debit and "-" for credit.
func (d FinanceDirection) Sign() string {
	if d == DirectionDebit {
		return "+"
	}
	return "-"
}

// Operation is a ledger entry moving value through one account,
// optionally tied to a receipt.
type Operation struct {
	ID        ID            `json:"id"`
	DateTime  DateTime      `json:"date_time"`
	AccountID ID            `json:"account_id"`
	Type      OperationType `json:"operation_type"`
	// Summary is a non-negative amount in the account's minor unit.
	Summary   uint64           `json:"summary"`
	Direction FinanceDirection `json:"direction"`
	ReceiptID *ID              `json:"receipt_id"`
}
