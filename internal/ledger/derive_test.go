package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassabook-dev/kassabook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"150.00", 15000},
		{"150", 15000},
		{"0.01", 1},
		{"1234.5", 123450},
	}
	for _, tc := range cases {
		got, err := MinorUnits(dec(tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := MinorUnits(dec("-1"))
	assert.Error(t, err)
	_, err = MinorUnits(dec("0.001"))
	assert.Error(t, err)
}

func TestDeriveOperationTable(t *testing.T) {
	cases := []struct {
		calculation   model.CalculationType
		wantDirection model.FinanceDirection
		wantType      model.OperationType
	}{
		{model.CalculationInbound, model.DirectionCredit, model.OperationBuy},
		{model.CalculationOutbound, model.DirectionDebit, model.OperationSell},
		{model.CalculationInboundReturn, model.DirectionDebit, model.OperationReturnBuy},
		{model.CalculationOutboundReturn, model.DirectionCredit, model.OperationReturnSell},
	}

	account := model.NewID()
	for _, tc := range cases {
		t.Run(string(tc.calculation), func(t *testing.T) {
			r := model.Receipt{
				ID:              model.NewID(),
				DateTime:        model.NewDateTime(2025, time.May, 5, 10, 30, 0),
				CalculationType: tc.calculation,
				Summary:         dec("150.00"),
			}

			op, err := DeriveOperation(r, account)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDirection, op.Direction)
			assert.Equal(t, tc.wantType, op.Type)
			assert.Equal(t, uint64(15000), op.Summary)
			assert.Equal(t, account, op.AccountID)
			assert.True(t, op.DateTime.Equal(r.DateTime.Time))
			require.NotNil(t, op.ReceiptID)
			assert.Equal(t, r.ID, *op.ReceiptID)
			assert.NotEqual(t, model.ID{}, op.ID)
		})
	}
}

func TestDeriveOperationRejectsBadSummary(t *testing.T) {
	r := model.Receipt{
		ID:              model.NewID(),
		DateTime:        model.Now(),
		CalculationType: model.CalculationOutbound,
		Summary:         dec("10.005"),
	}
	_, err := DeriveOperation(r, model.NewID())
	assert.Error(t, err)
}

func TestDeriveAndCommitTogether(t *testing.T) {
	svc := New()
	account := svc.AddAccount("Card", model.AccountTypeDebitCard, "1", 0)

	r := model.Receipt{
		ID:              model.NewID(),
		DateTime:        model.Now(),
		CalculationType: model.CalculationOutbound,
		Summary:         dec("150.00"),
	}
	op, err := DeriveOperation(r, account)
	require.NoError(t, err)

	_, err = svc.PutOperation(op)
	require.NoError(t, err)
	svc.PutReceipt(r)

	assert.Len(t, svc.Operations(), 1)
	assert.Len(t, svc.Receipts(), 1)
}
