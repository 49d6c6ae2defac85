// Package entity defines data models and constants for the WayForPay SDK
// and the checkout service built on top of it.
package entity

import "fmt"

// TransactionType identifies a gateway operation. It is sent as the
// transactionType request field and selects the required and signed fields.
type TransactionType string

const (
	Purchase        TransactionType = "PURCHASE"
	Settle          TransactionType = "SETTLE"
	Charge          TransactionType = "CHARGE"
	Refund          TransactionType = "REFUND"
	CheckStatus     TransactionType = "CHECK_STATUS"
	P2PCredit       TransactionType = "P2P_CREDIT"
	CreateInvoice   TransactionType = "CREATE_INVOICE"
	P2Phone         TransactionType = "P2_PHONE"
	TransactionList TransactionType = "TRANSACTION_LIST"
)

// TransactionTypes lists every known transaction type.
var TransactionTypes = []TransactionType{
	Purchase,
	Settle,
	Charge,
	Refund,
	CheckStatus,
	P2PCredit,
	CreateInvoice,
	P2Phone,
	TransactionList,
}

func (t TransactionType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTransactionType converts the wire value into a TransactionType.
// Matching is case-sensitive.
func ParseTransactionType(value string) (TransactionType, error) {
	t := TransactionType(value)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown transaction type: %q", value)
	}
	return t, nil
}

// ChargeType splits CHARGE requests by the way the card is supplied.
// It is derived from the request fields and never sent to the gateway.
type ChargeType int

const (
	// ChargeRecToken is a charge against a stored card token (recToken).
	ChargeRecToken ChargeType = iota + 1
	// ChargeNoRecToken is a charge with raw card details.
	ChargeNoRecToken
)

func (c ChargeType) String() string {
	switch c {
	case ChargeRecToken:
		return "REC_TOKEN"
	case ChargeNoRecToken:
		return "NO_REC_TOKEN"
	}
	return fmt.Sprintf("ChargeType(%d)", int(c))
}
