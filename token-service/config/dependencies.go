package config

import (
	"context"
	"fmt"

	"github.com/luxurylounger/payment-token-service/token-service/application"
	"github.com/luxurylounger/payment-token-service/token-service/domain"
	"github.com/luxurylounger/payment-token-service/token-service/gateway"
	"github.com/luxurylounger/payment-token-service/token-service/handlers"
	"github.com/luxurylounger/payment-token-service/token-service/telemetry"
)

type Dependencies struct {
	// Telemetry
	Telemetry *telemetry.Telemetry

	// Gateway
	GatewayClient gateway.Client

	// Use Cases
	CreateToken   *application.CreatePaymentToken
	ChargePayment *application.ChargePayment

	// HTTP Handlers
	TokenHandlers *handlers.TokenHandlers

	telemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize telemetry
	tel, telShutdown, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    config.ServiceName,
		ServiceVersion: "1.0.0",
		OTLPEndpoint:   config.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	deps.Telemetry = tel
	deps.telemetryShutdown = telShutdown

	// Initialize gateway client
	endpoint, err := config.Gateway.Endpoint()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve gateway endpoint: %w", err)
	}
	deps.GatewayClient = gateway.NewAuthorizeNetClient(endpoint)

	defaultKind, err := domain.NewTransactionKind(config.Gateway.DefaultTransactionKind)
	if err != nil {
		return nil, fmt.Errorf("invalid default transaction kind: %w", err)
	}

	credentials := domain.Credentials{
		APILoginID:     config.Gateway.APILoginID,
		TransactionKey: config.Gateway.TransactionKey,
	}

	settings := application.HostedPageSettings{
		PaymentPageBaseURL: config.Gateway.PaymentPageBaseURL,
		SuccessURL:         config.Gateway.SuccessURL,
		SuccessLinkText:    config.Gateway.SuccessLinkText,
		CancelURL:          config.Gateway.CancelURL,
		CancelLinkText:     config.Gateway.CancelLinkText,
		ButtonLabel:        config.Gateway.ButtonLabel,
		DefaultKind:        defaultKind,
	}

	// Initialize use cases
	deps.CreateToken = application.NewCreatePaymentToken(
		deps.GatewayClient, credentials, settings, config.Gateway.Timeout(),
	)
	deps.ChargePayment = application.NewChargePayment(
		deps.GatewayClient, credentials, config.Gateway.Timeout(),
	)

	// Initialize handlers
	deps.TokenHandlers = handlers.NewTokenHandlers(deps.CreateToken, deps.ChargePayment)

	return deps, nil
}

// Close shuts down telemetry exporters
func (d *Dependencies) Close() error {
	if d.telemetryShutdown != nil {
		d.telemetryShutdown()
	}
	return nil
}
