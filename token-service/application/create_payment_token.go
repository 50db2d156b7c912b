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
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// CreateTokenCommand represents the command to request a hosted payment page
// token
type CreateTokenCommand struct {
	Amount          string       `json:"amount"`
	APILoginID      string       `json:"apiLoginId,omitempty"`
	TransactionKey  string       `json:"transactionKey,omitempty"`
	TransactionKind string       `json:"transactionKind,omitempty"`
	OrderNumber     string       `json:"orderNumber,omitempty"`
	CustomerEmail   string       `json:"customerEmail,omitempty"`
	Billing         *BillingInfo `json:"billing,omitempty"`
	SuccessURL      string       `json:"successUrl,omitempty"`
	CancelURL       string       `json:"cancelUrl,omitempty"`
}

// BillingInfo is the optional billing address block of a payment intent
type BillingInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CreateTokenResponse represents the response after a successful token
// request
type CreateTokenResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// HostedPageSettings carries the hosted payment page defaults configured at
// startup
type HostedPageSettings struct {
	// PaymentPageBaseURL is the fixed prefix the token is appended to when
	// deriving the redirect URL
	PaymentPageBaseURL string

	SuccessURL      string
	SuccessLinkText string
	CancelURL       string
	CancelLinkText  string
	ButtonLabel     string

	// DefaultKind is the transaction kind used when the request does not
	// name one. It is chosen explicitly at wiring time.
	DefaultKind domain.TransactionKind
}

// CreatePaymentToken use case requests a hosted payment page token from the
// gateway
type CreatePaymentToken struct {
	gateway     gateway.Client
	credentials domain.Credentials
	settings    HostedPageSettings
	timeout     time.Duration
}

// NewCreatePaymentToken creates a new CreatePaymentToken use case.
// credentials is the process-wide fallback pair and may be empty when every
// request carries its own.
func NewCreatePaymentToken(
	gatewayClient gateway.Client,
	credentials domain.Credentials,
	settings HostedPageSettings,
	timeout time.Duration,
) *CreatePaymentToken {
	return &CreatePaymentToken{
		gateway:     gatewayClient,
		credentials: credentials,
		settings:    settings,
		timeout:     timeout,
	}
}

// Execute validates the command, calls the gateway and normalizes the
// outcome. The gateway is never called when validation fails.
func (uc *CreatePaymentToken) Execute(ctx context.Context, cmd *CreateTokenCommand) (*CreateTokenResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "create_payment_token")
	defer span.End()

	start := time.Now()
	requestID := uuid.New().String()

	if err := uc.validateCommand(cmd); err != nil {
		uc.recordOutcome(ctx, start, "validation_error")
		return nil, err
	}

	auth, err := resolveCredentials(cmd.APILoginID, cmd.TransactionKey, uc.credentials)
	if err != nil {
		uc.recordOutcome(ctx, start, "configuration_error")
		return nil, err
	}

	req, err := uc.buildRequest(cmd, auth)
	if err != nil {
		uc.recordOutcome(ctx, start, "validation_error")
		return nil, err
	}

	slog.InfoContext(ctx, "requesting hosted payment page token",
		slog.String("request_id", requestID),
		slog.String("amount", cmd.Amount),
	)

	result, err := awaitGateway(ctx, uc.timeout, func(cb gateway.Callback) {
		uc.gateway.RequestHostedPageToken(ctx, req, cb)
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

	slog.InfoContext(ctx, "hosted payment page token issued",
		slog.String("request_id", requestID),
	)
	uc.recordOutcome(ctx, start, "success")
	return response, nil
}

// validateCommand validates the create token command
func (uc *CreatePaymentToken) validateCommand(cmd *CreateTokenCommand) error {
	if strings.TrimSpace(cmd.Amount) == "" {
		return domain.NewValidationError("amount", "is required")
	}

	if len(cmd.TransactionKey) > domain.MaxTransactionKeyLength {
		return domain.NewValidationError("transactionKey", "exceeds maximum length")
	}

	// A half-supplied pair is a request mistake, not a configuration gap
	if cmd.APILoginID != "" && cmd.TransactionKey == "" {
		return domain.NewValidationError("transactionKey", "is required when apiLoginId is set")
	}
	if cmd.TransactionKey != "" && cmd.APILoginID == "" {
		return domain.NewValidationError("apiLoginId", "is required when transactionKey is set")
	}

	if cmd.TransactionKind != "" {
		if _, err := domain.NewTransactionKind(cmd.TransactionKind); err != nil {
			return domain.NewValidationError("transactionKind", "must be auth_only or auth_capture")
		}
	}

	return nil
}

func (uc *CreatePaymentToken) buildRequest(cmd *CreateTokenCommand, auth domain.Credentials) (*gateway.HostedPageRequest, error) {
	amount, err := domain.NewAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	kind := uc.settings.DefaultKind
	if cmd.TransactionKind != "" {
		kind, err = domain.NewTransactionKind(cmd.TransactionKind)
		if err != nil {
			return nil, domain.NewValidationError("transactionKind", "must be auth_only or auth_capture")
		}
	}

	successURL := cmd.SuccessURL
	if successURL == "" {
		successURL = uc.settings.SuccessURL
	}
	cancelURL := cmd.CancelURL
	if cancelURL == "" {
		cancelURL = uc.settings.CancelURL
	}

	settings := domain.Settings{}.
		Add("hostedPaymentReturnOptions", map[string]any{
			"showReceipt":   true,
			"url":           successURL,
			"urlText":       uc.settings.SuccessLinkText,
			"cancelUrl":     cancelURL,
			"cancelUrlText": uc.settings.CancelLinkText,
		})
	if uc.settings.ButtonLabel != "" {
		settings = settings.Add("hostedPaymentButtonOptions", map[string]any{
			"text": uc.settings.ButtonLabel,
		})
	}

	req := &gateway.HostedPageRequest{
		Auth:     auth,
		Kind:     kind,
		Amount:   amount,
		Settings: settings,
	}
	if cmd.OrderNumber != "" {
		req.Order = &domain.Order{InvoiceNumber: cmd.OrderNumber}
	}
	if cmd.CustomerEmail != "" {
		req.Customer = &domain.Customer{Email: cmd.CustomerEmail}
	}
	req.BillTo = billingAddress(cmd.Billing)

	return req, nil
}

func (uc *CreatePaymentToken) mapResult(result *gateway.Result) (*CreateTokenResponse, error) {
	if !result.Ok() {
		return nil, gatewayFailure(result)
	}

	if strings.TrimSpace(result.Token) == "" {
		return nil, domain.ErrEmptyToken
	}

	tokenResult := domain.NewTokenResult(result.Token, uc.settings.PaymentPageBaseURL)
	return &CreateTokenResponse{
		Token: tokenResult.Token,
		URL:   tokenResult.URL,
	}, nil
}

func (uc *CreatePaymentToken) recordOutcome(ctx context.Context, start time.Time, status string) {
	telemetry.RecordCounter(ctx, "token_requests_total", "Total hosted page token requests", 1,
		attribute.String("status", status),
	)
	telemetry.RecordHistogram(ctx, "token_request_duration_seconds", "Hosted page token request duration",
		time.Since(start).Seconds(),
		attribute.String("status", status),
	)
}

// resolveCredentials picks the request-supplied pair when complete and falls
// back on process-wide configuration otherwise
func resolveCredentials(apiLoginID, transactionKey string, fallback domain.Credentials) (domain.Credentials, error) {
	supplied := domain.Credentials{APILoginID: apiLoginID, TransactionKey: transactionKey}
	if supplied.IsComplete() {
		return supplied, nil
	}
	if fallback.IsComplete() {
		return fallback, nil
	}
	return domain.Credentials{}, domain.NewConfigurationError("gateway credentials are missing")
}

// billingAddress converts the inbound billing block to its domain form
func billingAddress(info *BillingInfo) *domain.BillingAddress {
	if info == nil {
		return nil
	}
	address := &domain.BillingAddress{
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Address:   info.Address,
		City:      info.City,
		State:     info.State,
		Zip:       info.Zip,
		Country:   info.Country,
		Phone:     info.Phone,
	}
	if address.IsEmpty() {
		return nil
	}
	return address
}

// gatewayFailure converts a non-Ok gateway result to a domain error using
// the first reported message
func gatewayFailure(result *gateway.Result) error {
	if len(result.Messages) == 0 {
		return domain.NewUnexpectedError(errors.New("gateway reported failure without messages"))
	}
	first := result.Messages[0]
	return domain.NewGatewayError(first.Code, first.Text)
}

// wrapGatewayFailure classifies call-level failures: timeouts pass through,
// everything else (transport faults, malformed responses) is unexpected
func wrapGatewayFailure(err error) error {
	if errors.Is(err, domain.ErrTimeout) {
		return err
	}
	var unexpected *domain.UnexpectedError
	if errors.As(err, &unexpected) {
		return err
	}
	return domain.NewUnexpectedError(err)
}

// outcomeLabel names an error for metrics
func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrEmptyToken), errors.Is(err, domain.ErrEmptyTransactionID):
		return "empty_result"
	default:
		var gatewayErr *domain.GatewayError
		if errors.As(err, &gatewayErr) {
			return "gateway_error"
		}
		return "unexpected_error"
	}
}
