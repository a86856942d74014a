package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The persisted file is the only state, so the enum tags are part of
// the storage contract and must never change spelling.
func TestEnumTagsAreStable(t *testing.T) {
	assert.Equal(t, []AccountType{
		"generic", "cash", "debit_card", "credit_card",
		"credit_account", "savings_account", "deposit",
	}, AccountTypes)

	assert.Equal(t, []OperationType{
		"initial", "buy", "sell", "return_buy", "return_sell",
		"credit_to_account", "debit_from_account", "close_account",
	}, OperationTypes)

	assert.Equal(t, FinanceDirection("debit"), DirectionDebit)
	assert.Equal(t, FinanceDirection("credit"), DirectionCredit)

	assert.Equal(t, []CalculationType{
		"inbound", "outbound", "inbound_return", "outbound_return",
	}, CalculationTypes)

	assert.Equal(t, []VatType{"vat0", "vat5", "vat7", "vat10", "vat20"}, VatTypes)
	assert.Equal(t, []UnitType{"pieces", "grams", "kilograms"}, UnitTypes)
}

func TestParseAccountType(t *testing.T) {
	for _, tag := range AccountTypes {
		got, err := ParseAccountType(string(tag))
		require.NoError(t, err)
		assert.Equal(t, tag, got)
	}
	_, err := ParseAccountType("checking")
	assert.Error(t, err)
	_, err = ParseAccountType("")
	assert.Error(t, err)
}

func TestParseOperationType(t *testing.T) {
	for _, tag := range OperationTypes {
		got, err := ParseOperationType(string(tag))
		require.NoError(t, err)
		assert.Equal(t, tag, got)
	}
	_, err := ParseOperationType("transfer")
	assert.Error(t, err)
}

func TestParseFinanceDirection(t *testing.T) {
	d, err := ParseFinanceDirection("debit")
	require.NoError(t, err)
	assert.Equal(t, "+", d.Sign())

	d, err = ParseFinanceDirection("credit")
	require.NoError(t, err)
	assert.Equal(t, "-", d.Sign())

	_, err = ParseFinanceDirection("both")
	assert.Error(t, err)
}

func TestParseReceiptEnums(t *testing.T) {
	for _, tag := range CalculationTypes {
		_, err := ParseCalculationType(string(tag))
		require.NoError(t, err)
	}
	_, err := ParseCalculationType("refund")
	assert.Error(t, err)

	for _, tag := range VatTypes {
		_, err := ParseVatType(string(tag))
		require.NoError(t, err)
	}
	_, err = ParseVatType("vat18")
	assert.Error(t, err)

	for _, tag := range UnitTypes {
		_, err := ParseUnitType(string(tag))
		require.NoError(t, err)
	}
	_, err = ParseUnitType("litres")
	assert.Error(t, err)
}

func TestSlipAndCurrencyValidity(t *testing.T) {
	assert.True(t, SlipPayment.Valid())
	assert.True(t, SlipCancel.Valid())
	assert.True(t, SlipRefund.Valid())
	assert.False(t, SlipType("chargeback").Valid())

	assert.True(t, CurrencyRub.Valid())
	assert.True(t, CurrencyUsd.Valid())
	assert.False(t, Currency("eur").Valid())
}
