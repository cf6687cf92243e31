// SPDX-License-Identifier: MPL-2.0

package statement

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// TypeExchange is a currency exchange between the account's balances.
	TypeExchange TransactionType = "exchange"
	// TypePayment is a card payment to a merchant.
	TypePayment TransactionType = "payment"
	// TypeTransfer is a transfer to or from another account.
	TypeTransfer TransactionType = "transfer"
	// TypeOther covers rows whose description matches no known category.
	TypeOther TransactionType = "other"
)

// ErrInvalidTransactionType is the sentinel error wrapped by InvalidTransactionTypeError.
var ErrInvalidTransactionType = errors.New("invalid transaction type")

type (
	// TransactionType classifies a statement row by its description.
	TransactionType string

	// InvalidTransactionTypeError is returned when a TransactionType value
	// is not recognized. It wraps ErrInvalidTransactionType for errors.Is()
	// compatibility.
	InvalidTransactionTypeError struct {
		Value TransactionType
	}
)

// Error implements the error interface.
func (e *InvalidTransactionTypeError) Error() string {
	return fmt.Sprintf("invalid transaction type %q (valid: exchange, payment, transfer, other)", e.Value)
}

// Unwrap returns ErrInvalidTransactionType for errors.Is() compatibility.
func (e *InvalidTransactionTypeError) Unwrap() error { return ErrInvalidTransactionType }

// String returns the string representation of the TransactionType.
func (t TransactionType) String() string { return string(t) }

// IsValid returns whether the TransactionType is one of the known values.
func (t TransactionType) IsValid() (bool, []error) {
	switch t {
	case TypeExchange, TypePayment, TypeTransfer, TypeOther:
		return true, nil
	default:
		return false, []error{&InvalidTransactionTypeError{Value: t}}
	}
}

// AllTypes returns the known transaction types in display order.
func AllTypes() []TransactionType {
	return []TransactionType{TypeExchange, TypePayment, TypeTransfer, TypeOther}
}

// ClassifyDescription derives a TransactionType from a statement row
// description. Matching is case-insensitive on substrings, in the same
// precedence Revolut statements use: exchanges before card payments before
// transfers. Unmatched descriptions classify as TypeOther.
func ClassifyDescription(description string) TransactionType {
	upper := strings.ToUpper(description)
	switch {
	case strings.Contains(upper, "EXCHANGE"):
		return TypeExchange
	case strings.Contains(upper, "CARD PAYMENT"):
		return TypePayment
	case strings.Contains(upper, "TRANSFER"):
		return TypeTransfer
	default:
		return TypeOther
	}
}
