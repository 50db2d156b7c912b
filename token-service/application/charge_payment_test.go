package application

import (
	"context"
	"testing"
	"time"

	"github.com/luxurylounger/payment-token-service/token-service/domain"
	"github.com/luxurylounger/payment-token-service/token-service/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargePayment_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *ChargeCommand
		credentials   domain.Credentials
		respond       func(cb gateway.Callback)
		expectedError string
		expectedCalls int
		check         func(t *testing.T, response *ChargeResponse, err error)
	}{
		{
			name: "successful auth and capture",
			command: &ChargeCommand{
				Amount:          "10.00",
				TransactionKind: "auth_capture",
				PaymentNonce:    "nonce-1",
				APILoginID:      "A",
				TransactionKey:  "K",
			},
			respond:       respondWith(okTransactionResult("60123", "AUTH1")),
			expectedCalls: 1,
			check: func(t *testing.T, response *ChargeResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "60123", response.TransactionID)
				assert.Equal(t, "AUTH1", response.AuthCode)
			},
		},
		{
			name: "successful authorization only",
			command: &ChargeCommand{
				Amount:          "250",
				TransactionKind: "auth_only",
				PaymentNonce:    "nonce-2",
				APILoginID:      "A",
				TransactionKey:  "K",
			},
			respond:       respondWith(okTransactionResult("60124", "AUTH2")),
			expectedCalls: 1,
			check: func(t *testing.T, response *ChargeResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "60124", response.TransactionID)
			},
		},
		{
			name: "missing transaction kind",
			command: &ChargeCommand{
				Amount: "10.00", PaymentNonce: "nonce", APILoginID: "A", TransactionKey: "K",
			},
			expectedError: "transactionKind is required",
		},
		{
			name: "unknown transaction kind",
			command: &ChargeCommand{
				Amount: "10.00", TransactionKind: "maybe_capture",
				PaymentNonce: "nonce", APILoginID: "A", TransactionKey: "K",
			},
			expectedError: "must be auth_only or auth_capture",
		},
		{
			name: "non-numeric amount",
			command: &ChargeCommand{
				Amount: "ten", TransactionKind: "auth_capture",
				PaymentNonce: "nonce", APILoginID: "A", TransactionKey: "K",
			},
			expectedError: "must be a decimal number",
		},
		{
			name: "zero amount",
			command: &ChargeCommand{
				Amount: "0", TransactionKind: "auth_capture",
				PaymentNonce: "nonce", APILoginID: "A", TransactionKey: "K",
			},
			expectedError: "must be greater than zero",
		},
		{
			name: "missing payment nonce",
			command: &ChargeCommand{
				Amount: "10.00", TransactionKind: "auth_capture",
				APILoginID: "A", TransactionKey: "K",
			},
			expectedError: "paymentNonce is required",
		},
		{
			name: "missing credentials everywhere",
			command: &ChargeCommand{
				Amount: "10.00", TransactionKind: "auth_capture", PaymentNonce: "nonce",
			},
			expectedError: "credentials are missing",
		},
		{
			name: "gateway declines",
			command: &ChargeCommand{
				Amount: "10.00", TransactionKind: "auth_capture",
				PaymentNonce: "nonce", APILoginID: "A", TransactionKey: "K",
			},
			respond:       respondWith(errorResult("E00027", "The transaction was unsuccessful.")),
			expectedError: "gateway error E00027",
			expectedCalls: 1,
		},
		{
			name: "success without transaction id",
			command: &ChargeCommand{
				Amount: "10.00", TransactionKind: "auth_capture",
				PaymentNonce: "nonce", APILoginID: "A", TransactionKey: "K",
			},
			respond:       respondWith(okTransactionResult("", "")),
			expectedError: "empty transaction id",
			expectedCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeGateway{respond: tt.respond}
			useCase := NewChargePayment(fake, tt.credentials, time.Second)

			response, err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, response)
			}
			if tt.check != nil {
				tt.check(t, response, err)
			}
			assert.Equal(t, tt.expectedCalls, fake.calls())
		})
	}
}

func TestChargePayment_RequestCarriesExplicitKind(t *testing.T) {
	fake := &fakeGateway{respond: respondWith(okTransactionResult("60125", "AUTH3"))}
	useCase := NewChargePayment(fake, domain.Credentials{}, time.Second)

	_, err := useCase.Execute(context.Background(), &ChargeCommand{
		Amount:          "99.99",
		TransactionKind: "auth_only",
		PaymentNonce:    "nonce-3",
		APILoginID:      "A",
		TransactionKey:  "K",
	})
	require.NoError(t, err)

	req := fake.lastCharge
	require.NotNil(t, req)
	assert.Equal(t, domain.TransactionKindAuthOnly, req.Kind)
	assert.Equal(t, "99.99", req.Amount.String())
	assert.Equal(t, "nonce-3", req.PaymentNonce)
}

func TestChargePayment_Timeout(t *testing.T) {
	fake := &fakeGateway{}
	useCase := NewChargePayment(fake, domain.Credentials{}, 20*time.Millisecond)

	_, err := useCase.Execute(context.Background(), &ChargeCommand{
		Amount: "10.00", TransactionKind: "auth_capture",
		PaymentNonce: "nonce", APILoginID: "A", TransactionKey: "K",
	})

	assert.ErrorIs(t, err, domain.ErrTimeout)
	assert.Equal(t, 1, fake.calls())
}
