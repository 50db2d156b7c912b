package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/luxurylounger/payment-token-service/token-service/domain"
	"github.com/luxurylounger/payment-token-service/token-service/gateway"
	"github.com/luxurylounger/payment-token-service/token-service/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ChargeCommand represents the command to execute a direct transaction.
// TransactionKind is required: auth_only reserves funds, auth_capture
// charges them, and the caller must say which.
type ChargeCommand struct {
	Amount          string       `json:"amount"`
	TransactionKind string       `json:"transactionKind"`
	PaymentNonce    string       `json:"paymentNonce"`
	APILoginID      string       `json:"apiLoginId,omitempty"`
	TransactionKey  string       `json:"transactionKey,omitempty"`
	OrderNumber     string       `json:"orderNumber,omitempty"`
	CustomerEmail   string       `json:"customerEmail,omitempty"`
	Billing         *BillingInfo `json:"billing,omitempty"`
}

// ChargeResponse represents the response after a successful direct
// transaction
type ChargeResponse struct {
	TransactionID string `json:"transactionId"`
	AuthCode      string `json:"authCode,omitempty"`
}

// ChargePayment use case executes a direct transaction through the gateway
type ChargePayment struct {
	gateway     gateway.Client
	credentials domain.Credentials
	timeout     time.Duration
}

// NewChargePayment creates a new ChargePayment use case
func NewChargePayment(
	gatewayClient gateway.Client,
	credentials domain.Credentials,
	timeout time.Duration,
) *ChargePayment {
	return &ChargePayment{
		gateway:     gatewayClient,
		credentials: credentials,
		timeout:     timeout,
	}
}

// Execute validates the command, runs the transaction and normalizes the
// outcome. The gateway is never called when validation fails.
func (uc *ChargePayment) Execute(ctx context.Context, cmd *ChargeCommand) (*ChargeResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "charge_payment")
	defer span.End()

	start := time.Now()
	requestID := uuid.New().String()

	kind, amount, err := uc.validateCommand(cmd)
	if err != nil {
		uc.recordOutcome(ctx, start, "validation_error")
		return nil, err
	}

	auth, err := resolveCredentials(cmd.APILoginID, cmd.TransactionKey, uc.credentials)
	if err != nil {
		uc.recordOutcome(ctx, start, "configuration_error")
		return nil, err
	}

	req := &gateway.TransactionRequest{
		Auth:         auth,
		Kind:         kind,
		Amount:       amount,
		PaymentNonce: cmd.PaymentNonce,
	}
	if cmd.OrderNumber != "" {
		req.Order = &domain.Order{InvoiceNumber: cmd.OrderNumber}
	}
	if cmd.CustomerEmail != "" {
		req.Customer = &domain.Customer{Email: cmd.CustomerEmail}
	}
	req.BillTo = billingAddress(cmd.Billing)

	slog.InfoContext(ctx, "executing direct transaction",
		slog.String("request_id", requestID),
		slog.String("transaction_kind", kind.String()),
		slog.String("amount", cmd.Amount),
	)

	result, err := awaitGateway(ctx, uc.timeout, func(cb gateway.Callback) {
		uc.gateway.CreateTransaction(ctx, req, cb)
	})
	if err != nil {
		uc.recordOutcome(ctx, start, outcomeLabel(err))
		return nil, wrapGatewayFailure(err)
	}

	response, err := uc.mapResult(result)
	if err != nil {
		uc.recordOutcome(ctx, start, outcomeLabel(err))
		return nil, err
	}

	slog.InfoContext(ctx, "direct transaction completed",
		slog.String("request_id", requestID),
		slog.String("transaction_id", response.TransactionID),
	)
	uc.recordOutcome(ctx, start, "success")
	return response, nil
}

// validateCommand validates the charge command and parses its typed fields
func (uc *ChargePayment) validateCommand(cmd *ChargeCommand) (domain.TransactionKind, domain.Amount, error) {
	amount, err := domain.ParseAmount(cmd.Amount)
	if err != nil {
		return "", domain.Amount{}, err
	}

	if cmd.TransactionKind == "" {
		return "", domain.Amount{}, domain.NewValidationError("transactionKind", "is required")
	}
	kind, err := domain.NewTransactionKind(cmd.TransactionKind)
	if err != nil {
		return "", domain.Amount{}, domain.NewValidationError("transactionKind", "must be auth_only or auth_capture")
	}

	if strings.TrimSpace(cmd.PaymentNonce) == "" {
		return "", domain.Amount{}, domain.NewValidationError("paymentNonce", "is required")
	}

	if len(cmd.TransactionKey) > domain.MaxTransactionKeyLength {
		return "", domain.Amount{}, domain.NewValidationError("transactionKey", "exceeds maximum length")
	}
	if cmd.APILoginID != "" && cmd.TransactionKey == "" {
		return "", domain.Amount{}, domain.NewValidationError("transactionKey", "is required when apiLoginId is set")
	}
	if cmd.TransactionKey != "" && cmd.APILoginID == "" {
		return "", domain.Amount{}, domain.NewValidationError("apiLoginId", "is required when transactionKey is set")
	}

	return kind, amount, nil
}

func (uc *ChargePayment) mapResult(result *gateway.Result) (*ChargeResponse, error) {
	if !result.Ok() {
		return nil, gatewayFailure(result)
	}

	if strings.TrimSpace(result.TransactionID) == "" {
		return nil, domain.ErrEmptyTransactionID
	}

	transaction := domain.NewTransactionResult(result.TransactionID, result.AuthCode)
	return &ChargeResponse{
		TransactionID: transaction.TransactionID,
		AuthCode:      transaction.AuthCode,
	}, nil
}

func (uc *ChargePayment) recordOutcome(ctx context.Context, start time.Time, status string) {
	telemetry.RecordCounter(ctx, "charge_requests_total", "Total direct transaction requests", 1,
		attribute.String("status", status),
	)
	telemetry.RecordHistogram(ctx, "charge_request_duration_seconds", "Direct transaction request duration",
		time.Since(start).Seconds(),
		attribute.String("status", status),
	)
}
