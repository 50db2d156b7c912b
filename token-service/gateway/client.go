package gateway

import (
	"context"

	"github.com/luxurylounger/payment-token-service/token-service/domain"
)

// ResultMessage is one code/text pair from the gateway's message list
type ResultMessage struct {
	Code string
	Text string
}

// Result is the raw outcome of a gateway execution, before normalization.
// ResultCode is "Ok" on success; anything else is a gateway-reported failure
// described by Messages.
type Result struct {
	ResultCode    string
	Token         string
	TransactionID string
	AuthCode      string
	Messages      []ResultMessage
}

// Ok reports whether the gateway accepted the request
func (r *Result) Ok() bool {
	return r.ResultCode == "Ok"
}

// Callback receives the outcome of a gateway execution. Implementations fire
// it exactly once, or never on network failure; callers must not rely on it
// firing.
type Callback func(*Result, error)

// HostedPageRequest describes a hosted payment page token request
type HostedPageRequest struct {
	Auth     domain.Credentials
	Kind     domain.TransactionKind
	Amount   domain.Amount
	Settings domain.Settings
	Order    *domain.Order
	Customer *domain.Customer
	BillTo   *domain.BillingAddress
}

// TransactionRequest describes a direct transaction execution
type TransactionRequest struct {
	Auth domain.Credentials
	Kind domain.TransactionKind

	Amount domain.Amount

	// PaymentNonce is the opaque single-use payment descriptor produced by
	// the gateway's client-side tokenizer. Raw card data never enters this
	// service.
	PaymentNonce string

	Order    *domain.Order
	Customer *domain.Customer
	BillTo   *domain.BillingAddress
}

// Client is the outbound port to the payment gateway. Both calls return
// immediately; the outcome arrives through the callback.
type Client interface {
	// RequestHostedPageToken asks the gateway for a hosted payment page token
	RequestHostedPageToken(ctx context.Context, req *HostedPageRequest, cb Callback)

	// CreateTransaction executes a direct transaction of the requested kind
	CreateTransaction(ctx context.Context, req *TransactionRequest, cb Callback)
}
