package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/luxurylounger/payment-token-service/token-service/application"
	"github.com/luxurylounger/payment-token-service/token-service/domain"
	"github.com/pkg/errors"
)

// TokenHandlers contains the payment token HTTP handlers
type TokenHandlers struct {
	createToken *application.CreatePaymentToken
	charge      *application.ChargePayment
}

// NewTokenHandlers creates new token handlers
func NewTokenHandlers(
	createToken *application.CreatePaymentToken,
	charge *application.ChargePayment,
) *TokenHandlers {
	return &TokenHandlers{
		createToken: createToken,
		charge:      charge,
	}
}

// errorResponse is the canonical failure body
type errorResponse struct {
	Error string `json:"error"`
}

// CreatePaymentToken handles hosted payment page token requests
func (h *TokenHandlers) CreatePaymentToken(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateTokenCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	response, err := h.createToken.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Charge handles direct transaction requests
func (h *TokenHandlers) Charge(w http.ResponseWriter, r *http.Request) {
	var cmd application.ChargeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	response, err := h.charge.Execute(r.Context(), &cmd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// RegisterRoutes registers the token routes
func (h *TokenHandlers) RegisterRoutes(r chi.Router) {
	r.Post("/create-payment-token", h.CreatePaymentToken)
	r.Post("/charge", h.Charge)
}

// writeError maps the error taxonomy onto the HTTP contract: validation
// errors are 400, everything detected after validation is 500. Unexpected
// failures are logged in full but reported generically.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
		return
	}

	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: configErr.Error()})
		return
	}

	var gatewayErr *domain.GatewayError
	if errors.As(err, &gatewayErr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: gatewayErr.Error()})
		return
	}

	if errors.Is(err, domain.ErrTimeout) ||
		errors.Is(err, domain.ErrEmptyToken) ||
		errors.Is(err, domain.ErrEmptyTransactionID) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	slog.ErrorContext(r.Context(), "request failed unexpectedly", slog.Any("error", err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
