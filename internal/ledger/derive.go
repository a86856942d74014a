package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kassabook-dev/kassabook/internal/model"
)

// MinorUnits converts a non-negative major-unit decimal amount to the
// account's minor currency unit (two decimal places).
func MinorUnits(d decimal.Decimal) (uint64, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %s is negative", d)
	}
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %s is finer than the minor unit", d)
	}
	big := shifted.BigInt()
	if !big.IsUint64() {
		return 0, fmt.Errorf("amount %s overflows the minor unit range", d)
	}
	return big.Uint64(), nil
}

// DeriveOperation builds the companion operation for the flow where a
// receipt and its operation are created together: direction and type
// follow the receipt's calculation type, date/time and summary are
// copied from the receipt, and receipt_id points back at it. The
// returned operation carries a fresh id and is not yet committed.
func DeriveOperation(r model.Receipt, accountID model.ID) (model.Operation, error) {
	var (
		direction model.FinanceDirection
		opType    model.OperationType
	)
	switch r.CalculationType {
	case model.CalculationInbound:
		direction, opType = model.DirectionCredit, model.OperationBuy
	case model.CalculationOutbound:
		direction, opType = model.DirectionDebit, model.OperationSell
	case model.CalculationInboundReturn:
		direction, opType = model.DirectionDebit, model.OperationReturnBuy
	case model.CalculationOutboundReturn:
		direction, opType = model.DirectionCredit, model.OperationReturnSell
	default:
		return model.Operation{}, fmt.Errorf("unknown calculation_type %q", r.CalculationType)
	}

	summary, err := MinorUnits(r.Summary)
	if err != nil {
		return model.Operation{}, fmt.Errorf("receipt summary: %w", err)
	}

	receiptID := r.ID
	return model.Operation{
		ID:        model.NewID(),
		DateTime:  r.DateTime,
		AccountID: accountID,
		Type:      opType,
		Summary:   summary,
		Direction: direction,
		ReceiptID: &receiptID,
	}, nil
}
