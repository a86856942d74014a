package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CalculationType is the fiscal kind of a receipt.
type CalculationType string

const (
	CalculationInbound        CalculationType = "inbound"         // purchase receipt
	CalculationOutbound       CalculationType = "outbound"        // sale receipt
	CalculationInboundReturn  CalculationType = "inbound_return"  // purchase refund
	CalculationOutboundReturn CalculationType = "outbound_return" // sale refund
)

// CalculationTypes lists every valid calculation type in selection order.
var CalculationTypes = []CalculationType{
	CalculationInbound,
	CalculationOutbound,
	CalculationInboundReturn,
	CalculationOutboundReturn,
}

// Valid reports whether t is a known calculation type tag.
func (t CalculationType) Valid() bool {
	switch t {
	case CalculationInbound, CalculationOutbound,
		CalculationInboundReturn, CalculationOutboundReturn:
		return true
	}
	return false
}

// ParseCalculationType parses a calculation type tag.
func ParseCalculationType(s string) (CalculationType, error) {
	t := CalculationType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown calculation_type %q", s)
	}
	return t, nil
}

// VatType is a VAT rate tag, not a computed percentage.
type VatType string

const (
	Vat0  VatType = "vat0"
	Vat5  VatType = "vat5"
	Vat7  VatType = "vat7"
	Vat10 VatType = "vat10"
	Vat20 VatType = "vat20"
)

// VatTypes lists every valid VAT rate tag in selection order.
var VatTypes = []VatType{Vat0, Vat5, Vat7, Vat10, Vat20}

// Valid reports whether t is a known VAT rate tag.
func (t VatType) Valid() bool {
	switch t {
	case Vat0, Vat5, Vat7, Vat10, Vat20:
		return true
	}
	return false
}

// ParseVatType parses a VAT rate tag.
func ParseVatType(s string) (VatType, error) {
	t := VatType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown vat_type %q", s)
	}
	return t, nil
}

// UnitType is the unit of measure for a receipt line item. Fiscal rules
// define many more legal-measure units (litres, metres, hours, data
// volumes); tags are added here as the application grows to need them.
type UnitType string

const (
	UnitPieces    UnitType = "pieces"
	UnitGrams     UnitType = "grams"
	UnitKilograms UnitType = "kilograms"
)

// UnitTypes lists every valid unit tag in selection order.
var UnitTypes = []UnitType{UnitPieces, UnitGrams, UnitKilograms}

// Valid reports whether t is a known unit tag.
func (t UnitType) Valid() bool {
	switch t {
	case UnitPieces, UnitGrams, UnitKilograms:
		return true
	}
	return false
}

// ParseUnitType parses a unit tag.
func ParseUnitType(s string) (UnitType, error) {
	t := UnitType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown unit_type %q", s)
	}
	return t, nil
}

// SlipType classifies a payment-terminal operation.
type SlipType string

const (
	SlipPayment SlipType = "payment"
	SlipCancel  SlipType = "cancel"
	SlipRefund  SlipType = "refund"
)

// Valid reports whether t is a known slip operation tag.
func (t SlipType) Valid() bool {
	return t == SlipPayment || t == SlipCancel || t == SlipRefund
}

// Currency tags the denomination of a slip amount.
type Currency string

const (
	CurrencyRub Currency = "rub"
	CurrencyUsd Currency = "usd"
)

// Valid reports whether c is a known currency tag.
func (c Currency) Valid() bool {
	return c == CurrencyRub || c == CurrencyUsd
}

// Subject is one line item within a receipt. Summary and Vat are
// manual-entry fields: nothing derives them from Count and Price.
type Subject struct {
	Name     string          `json:"name"`
	UnitType UnitType        `json:"unit_type"`
	Count    uint64          `json:"count"`
	Price    decimal.Decimal `json:"price"`
	Summary  decimal.Decimal `json:"summary"`
	VatType  VatType         `json:"vat_type"`
	Vat      decimal.Decimal `json:"vat"`
}

// Slip is an embedded payment-terminal slip record. Receipts carry it
// only when the terminal printout was captured.
type Slip struct {
	TerminalID    uint64           `json:"terminal_id"`
	Type          SlipType         `json:"op_type"`
	DateTime      DateTime         `json:"date_time"`
	Summary       decimal.Decimal  `json:"summary"`
	Currency      Currency         `json:"currency"`
	Commission    *decimal.Decimal `json:"commission"`
	AuthCode      string           `json:"auth_code"`
	Card          string           `json:"card"` // masked card number
	Address       *string          `json:"address"`
	Place         *string          `json:"place"`
	PaymentSystem *string          `json:"payment_system"`
	DocumentID    *uint64          `json:"document_id"`
}

// Receipt is an itemized fiscal document describing a purchase or sale,
// independent of any account. Pointer fields are absent (null) when the
// user left them empty; subjects keep insertion order.
type Receipt struct {
	ID              ID               `json:"id"`
	DateTime        DateTime         `json:"date_time"`
	CalculationType CalculationType  `json:"calculation_type"`
	Address         *string          `json:"address"`
	Place           *string          `json:"place"`
	Subjects        []Subject        `json:"subjects"`
	Summary         decimal.Decimal  `json:"summary"`
	Cash            *decimal.Decimal `json:"cash"`
	Cashless        *decimal.Decimal `json:"cashless"`
	Prepayment      *decimal.Decimal `json:"prepayment"`
	Postpayment     *decimal.Decimal `json:"postpayment"`
	InKind          *decimal.Decimal `json:"in_kind"`
	Vat             *decimal.Decimal `json:"vat"`
	URL             *string          `json:"url"`
	Slip            *Slip            `json:"slip,omitempty"`
}
