package gateway

import (
	"encoding/json"
	"testing"

	"github.com/luxurylounger/payment-token-service/token-service/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hostedRequest() *HostedPageRequest {
	amount, _ := domain.NewAmount("10.00")
	return &HostedPageRequest{
		Auth:   domain.Credentials{APILoginID: "A", TransactionKey: "K"},
		Kind:   domain.TransactionKindAuthCapture,
		Amount: amount,
		Settings: domain.Settings{}.
			Add("hostedPaymentReturnOptions", `{"url":"https://x/ok"}`).
			Add("hostedPaymentButtonOptions", `{"text":"Pay"}`),
		Order:    &domain.Order{InvoiceNumber: "INV-1"},
		Customer: &domain.Customer{Email: "payer@example.com"},
		BillTo:   &domain.BillingAddress{FirstName: "Ada", Zip: "10001"},
	}
}

func TestBuildHostedPageEnvelope(t *testing.T) {
	envelope := buildHostedPageEnvelope(hostedRequest())

	payload := envelope.GetHostedPaymentPageRequest
	assert.Equal(t, "A", payload.MerchantAuthentication.Name)
	assert.Equal(t, "K", payload.MerchantAuthentication.TransactionKey)
	assert.Equal(t, "authCaptureTransaction", payload.TransactionRequest.TransactionType)
	assert.Equal(t, "10.00", payload.TransactionRequest.Amount)
	assert.Nil(t, payload.TransactionRequest.Payment)
	require.NotNil(t, payload.TransactionRequest.Order)
	assert.Equal(t, "INV-1", payload.TransactionRequest.Order.InvoiceNumber)
	require.NotNil(t, payload.TransactionRequest.Customer)
	assert.Equal(t, "payer@example.com", payload.TransactionRequest.Customer.Email)
	require.NotNil(t, payload.TransactionRequest.BillTo)
	assert.Equal(t, "Ada", payload.TransactionRequest.BillTo.FirstName)

	settings := payload.HostedPaymentSettings.Setting
	require.Len(t, settings, 2)
	assert.Equal(t, "hostedPaymentReturnOptions", settings[0].SettingName)
	assert.Equal(t, "hostedPaymentButtonOptions", settings[1].SettingName)
}

func TestBuildHostedPageEnvelopeJSON(t *testing.T) {
	raw, err := json.Marshal(buildHostedPageEnvelope(hostedRequest()))
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"getHostedPaymentPageRequest"`)
	assert.Contains(t, body, `"merchantAuthentication":{"name":"A","transactionKey":"K"}`)
	assert.Contains(t, body, `"settingName":"hostedPaymentReturnOptions"`)
	// optional blocks absent from the request must not appear at all
	assert.NotContains(t, body, `"payment"`)
}

func TestBuildTransactionEnvelope(t *testing.T) {
	amount, _ := domain.ParseAmount("42.00")
	envelope := buildTransactionEnvelope(&TransactionRequest{
		Auth:         domain.Credentials{APILoginID: "A", TransactionKey: "K"},
		Kind:         domain.TransactionKindAuthOnly,
		Amount:       amount,
		PaymentNonce: "nonce-1",
	})

	payload := envelope.CreateTransactionRequest
	assert.Equal(t, "authOnlyTransaction", payload.TransactionRequest.TransactionType)
	assert.Equal(t, "42.00", payload.TransactionRequest.Amount)
	require.NotNil(t, payload.TransactionRequest.Payment)
	assert.Equal(t, "COMMON.ACCEPT.INAPP.PAYMENT", payload.TransactionRequest.Payment.OpaqueData.DataDescriptor)
	assert.Equal(t, "nonce-1", payload.TransactionRequest.Payment.OpaqueData.DataValue)
	assert.Nil(t, payload.TransactionRequest.Order)
}

func TestMapResponse(t *testing.T) {
	tests := []struct {
		name          string
		response      gatewayResponse
		expectedError string
		check         func(t *testing.T, result *Result)
	}{
		{
			name: "token response",
			response: gatewayResponse{
				Token: "abc123",
				Messages: messagesPayload{
					ResultCode: "Ok",
					Message:    []messagePayload{{Code: "I00001", Text: "Successful."}},
				},
			},
			check: func(t *testing.T, result *Result) {
				assert.True(t, result.Ok())
				assert.Equal(t, "abc123", result.Token)
				assert.Equal(t, "I00001", result.Messages[0].Code)
			},
		},
		{
			name: "transaction response",
			response: gatewayResponse{
				TransactionResponse: &transactionResponsePayload{TransID: "60123", AuthCode: "AUTH1"},
				Messages:            messagesPayload{ResultCode: "Ok"},
			},
			check: func(t *testing.T, result *Result) {
				assert.Equal(t, "60123", result.TransactionID)
				assert.Equal(t, "AUTH1", result.AuthCode)
			},
		},
		{
			name: "error response",
			response: gatewayResponse{
				Messages: messagesPayload{
					ResultCode: "Error",
					Message:    []messagePayload{{Code: "E00007", Text: "User authentication failed."}},
				},
			},
			check: func(t *testing.T, result *Result) {
				assert.False(t, result.Ok())
				assert.Equal(t, "E00007", result.Messages[0].Code)
			},
		},
		{
			name:          "missing result code",
			response:      gatewayResponse{Token: "abc123"},
			expectedError: "missing a result code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := mapResponse(&tt.response)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				require.NoError(t, err)
				tt.check(t, result)
			}
		})
	}
}
