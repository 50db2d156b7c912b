package application

import (
	"context"
	"sync"

	"github.com/luxurylounger/payment-token-service/token-service/gateway"
)

// fakeGateway is a scriptable gateway test double. respond decides how (and
// whether) the callback fires; a nil respond never fires it, which simulates
// a network black hole.
type fakeGateway struct {
	mu          sync.Mutex
	tokenCalls  int
	chargeCalls int
	lastHosted  *gateway.HostedPageRequest
	lastCharge  *gateway.TransactionRequest
	respond     func(cb gateway.Callback)
}

func (f *fakeGateway) RequestHostedPageToken(ctx context.Context, req *gateway.HostedPageRequest, cb gateway.Callback) {
	f.mu.Lock()
	f.tokenCalls++
	f.lastHosted = req
	respond := f.respond
	f.mu.Unlock()

	if respond != nil {
		respond(cb)
	}
}

func (f *fakeGateway) CreateTransaction(ctx context.Context, req *gateway.TransactionRequest, cb gateway.Callback) {
	f.mu.Lock()
	f.chargeCalls++
	f.lastCharge = req
	respond := f.respond
	f.mu.Unlock()

	if respond != nil {
		respond(cb)
	}
}

func (f *fakeGateway) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenCalls + f.chargeCalls
}

func okTokenResult(token string) *gateway.Result {
	return &gateway.Result{
		ResultCode: "Ok",
		Token:      token,
		Messages:   []gateway.ResultMessage{{Code: "I00001", Text: "Successful."}},
	}
}

func okTransactionResult(transactionID, authCode string) *gateway.Result {
	return &gateway.Result{
		ResultCode:    "Ok",
		TransactionID: transactionID,
		AuthCode:      authCode,
		Messages:      []gateway.ResultMessage{{Code: "I00001", Text: "Successful."}},
	}
}

func errorResult(code, text string) *gateway.Result {
	return &gateway.Result{
		ResultCode: "Error",
		Messages:   []gateway.ResultMessage{{Code: code, Text: text}},
	}
}

func respondWith(result *gateway.Result) func(cb gateway.Callback) {
	return func(cb gateway.Callback) {
		cb(result, nil)
	}
}

func respondError(err error) func(cb gateway.Callback) {
	return func(cb gateway.Callback) {
		cb(nil, err)
	}
}
