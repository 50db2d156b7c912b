package domain

// TokenResult is the normalized outcome of one gateway call. It is built
// once per request, returned to the caller and discarded; nothing persists
// it.
type TokenResult struct {
	// Token is the hosted payment page token on success
	Token string

	// URL is the derived hosted payment page redirect on success
	URL string

	// TransactionID is the gateway transaction identifier for direct
	// transactions
	TransactionID string

	// AuthCode is the authorization code for direct transactions
	AuthCode string
}

// NewTokenResult builds a hosted page token result with its redirect URL
func NewTokenResult(token, baseURL string) *TokenResult {
	return &TokenResult{
		Token: token,
		URL:   RedirectURL(baseURL, token),
	}
}

// NewTransactionResult builds a direct transaction result
func NewTransactionResult(transactionID, authCode string) *TokenResult {
	return &TokenResult{
		TransactionID: transactionID,
		AuthCode:      authCode,
	}
}
