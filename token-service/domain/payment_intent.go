package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// MaxTransactionKeyLength bounds the secret key as a sanity check, not a
// security control. Keys longer than this are rejected before any call.
const MaxTransactionKeyLength = 128

// Credentials is the gateway authentication pair
type Credentials struct {
	APILoginID     string
	TransactionKey string
}

// IsComplete reports whether both halves of the pair are present
func (c Credentials) IsComplete() bool {
	return c.APILoginID != "" && c.TransactionKey != ""
}

// Amount is a decimal monetary amount kept in its original string form; the
// gateway consumes the string verbatim, so no normalization is applied.
type Amount struct {
	value string
}

// NewAmount accepts any non-empty amount string. Hosted page token requests
// forward the amount opaquely and leave numeric validation to the gateway.
func NewAmount(value string) (Amount, error) {
	if strings.TrimSpace(value) == "" {
		return Amount{}, NewValidationError("amount", "is required")
	}
	return Amount{value: value}, nil
}

// ParseAmount requires a numerically valid amount greater than zero. Direct
// transaction execution charges real funds, so it gets the strict check.
func ParseAmount(value string) (Amount, error) {
	if strings.TrimSpace(value) == "" {
		return Amount{}, NewValidationError("amount", "is required")
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Amount{}, NewValidationError("amount", "must be a decimal number")
	}
	if n <= 0 {
		return Amount{}, NewValidationError("amount", "must be greater than zero")
	}
	return Amount{value: value}, nil
}

// String returns the amount exactly as received
func (a Amount) String() string {
	return a.value
}

// IsZero reports whether the amount is unset
func (a Amount) IsZero() bool {
	return a.value == ""
}

// BillingAddress is the optional billing block attached to a payment intent
type BillingAddress struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	Zip       string
	Country   string
	Phone     string
}

// IsEmpty reports whether no billing field is set
func (b BillingAddress) IsEmpty() bool {
	return b == BillingAddress{}
}

// Order is the optional order reference attached to a payment intent
type Order struct {
	InvoiceNumber string
	Description   string
}

// Customer is the optional customer block attached to a payment intent
type Customer struct {
	Email string
}

// RedirectURL derives the hosted payment page redirect from the configured
// base and a gateway token. The token is percent-encoded before
// concatenation.
func RedirectURL(base, token string) string {
	return base + url.PathEscape(token)
}
