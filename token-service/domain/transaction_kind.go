package domain

import "github.com/pkg/errors"

// TransactionKind selects between reserving funds and charging them.
// Picking the wrong one changes whether money moves, so it is always an
// explicit input and never defaulted.
type TransactionKind string

const (
	// TransactionKindAuthOnly reserves funds without capturing them
	TransactionKindAuthOnly TransactionKind = "auth_only"

	// TransactionKindAuthCapture authorizes and captures in one step
	TransactionKindAuthCapture TransactionKind = "auth_capture"
)

// NewTransactionKind parses a transaction kind from its wire form
func NewTransactionKind(value string) (TransactionKind, error) {
	switch TransactionKind(value) {
	case TransactionKindAuthOnly:
		return TransactionKindAuthOnly, nil
	case TransactionKindAuthCapture:
		return TransactionKindAuthCapture, nil
	default:
		return "", errors.Errorf("unknown transaction kind: %s", value)
	}
}

// GatewayType returns the gateway's name for the transaction kind
func (k TransactionKind) GatewayType() string {
	switch k {
	case TransactionKindAuthOnly:
		return "authOnlyTransaction"
	default:
		return "authCaptureTransaction"
	}
}

// String returns the wire form
func (k TransactionKind) String() string {
	return string(k)
}
