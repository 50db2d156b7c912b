package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionKind(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expected      TransactionKind
		expectedError string
	}{
		{name: "auth only", value: "auth_only", expected: TransactionKindAuthOnly},
		{name: "auth capture", value: "auth_capture", expected: TransactionKindAuthCapture},
		{name: "unknown", value: "capture_later", expectedError: "unknown transaction kind"},
		{name: "empty", value: "", expectedError: "unknown transaction kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := NewTransactionKind(tt.value)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, kind)
			}
		})
	}
}

func TestTransactionKindGatewayType(t *testing.T) {
	assert.Equal(t, "authOnlyTransaction", TransactionKindAuthOnly.GatewayType())
	assert.Equal(t, "authCaptureTransaction", TransactionKindAuthCapture.GatewayType())
}
