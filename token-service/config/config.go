package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/luxurylounger/payment-token-service/token-service/gateway"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string  `mapstructure:"service_name"`
	Env           string  `mapstructure:"env"`
	Port          string  `mapstructure:"port"`
	AllowedOrigin string  `mapstructure:"allowed_origin"`
	OTLPEndpoint  string  `mapstructure:"otlp_endpoint"`
	Gateway       Gateway `mapstructure:"gateway"`
}

type Gateway struct {
	APILoginID             string `mapstructure:"api_login_id"`
	TransactionKey         string `mapstructure:"transaction_key"`
	Environment            string `mapstructure:"environment"`
	PaymentPageBaseURL     string `mapstructure:"payment_page_base_url"`
	SuccessURL             string `mapstructure:"success_url"`
	SuccessLinkText        string `mapstructure:"success_link_text"`
	CancelURL              string `mapstructure:"cancel_url"`
	CancelLinkText         string `mapstructure:"cancel_link_text"`
	ButtonLabel            string `mapstructure:"button_label"`
	DefaultTransactionKind string `mapstructure:"default_transaction_kind"`
	TimeoutSeconds         int    `mapstructure:"timeout_seconds"`
}

func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("unable to get current file")
	}

	configDir := filepath.Join(filepath.Dir(filename))
	viper.SetConfigName(getConfigName())
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	// Allow environment variables to override config
	viper.AutomaticEnv()
	viper.SetEnvPrefix("TOKEN")

	setDefaultsFromEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

func setDefaultsFromEnv() {
	// Service defaults
	viper.SetDefault("service_name", "token-service")
	viper.SetDefault("env", getEnv("ENV", "local"))
	viper.SetDefault("port", getEnv("PORT", "3000"))
	viper.SetDefault("allowed_origin", getEnv("ALLOWED_ORIGIN", "https://www.luxury-lounger.com"))
	viper.SetDefault("otlp_endpoint", getEnv("OTLP_ENDPOINT", "localhost:4318"))

	// Gateway defaults
	viper.SetDefault("gateway.api_login_id", getEnv("API_LOGIN_ID", ""))
	viper.SetDefault("gateway.transaction_key", getEnv("TRANSACTION_KEY", ""))
	viper.SetDefault("gateway.environment", getEnv("GATEWAY_ENVIRONMENT", "sandbox"))
	viper.SetDefault("gateway.payment_page_base_url", "https://accept.authorize.net/payment/payment?token=")
	viper.SetDefault("gateway.success_url", getEnv("SUCCESS_URL", "https://www.luxury-lounger.com/payment-success"))
	viper.SetDefault("gateway.success_link_text", "Continue")
	viper.SetDefault("gateway.cancel_url", getEnv("CANCEL_URL", "https://www.luxury-lounger.com/payment-cancelled"))
	viper.SetDefault("gateway.cancel_link_text", "Cancel")
	viper.SetDefault("gateway.button_label", "Pay")
	viper.SetDefault("gateway.default_transaction_kind", "auth_capture")
	viper.SetDefault("gateway.timeout_seconds", 30)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Endpoint resolves the configured gateway environment to its API endpoint
func (g Gateway) Endpoint() (string, error) {
	switch g.Environment {
	case "sandbox":
		return gateway.SandboxEndpoint, nil
	case "production":
		return gateway.ProductionEndpoint, nil
	default:
		return "", fmt.Errorf("unknown gateway environment: %s", g.Environment)
	}
}

// Timeout returns the gateway callback deadline
func (g Gateway) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}
