package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Environment endpoints. Behavior is identical against either; selection is
// a configuration concern.
const (
	SandboxEndpoint    = "https://apitest.authorize.net/xml/v1/request.api"
	ProductionEndpoint = "https://api.authorize.net/xml/v1/request.api"
)

// utf8BOM prefixes every response body the gateway sends
var utf8BOM = []byte("\xef\xbb\xbf")

// AuthorizeNetClient talks to the Authorize.Net JSON API. It implements
// Client; the callback is fired from a separate goroutine, exactly once per
// call, or never if the process dies mid-flight.
type AuthorizeNetClient struct {
	client   *resty.Client
	endpoint string
}

// NewAuthorizeNetClient creates a gateway client against the given endpoint
func NewAuthorizeNetClient(endpoint string) *AuthorizeNetClient {
	return &AuthorizeNetClient{
		client:   resty.New(),
		endpoint: endpoint,
	}
}

// RequestHostedPageToken asks the gateway for a hosted payment page token
func (c *AuthorizeNetClient) RequestHostedPageToken(ctx context.Context, req *HostedPageRequest, cb Callback) {
	envelope := buildHostedPageEnvelope(req)
	go c.execute(ctx, "hosted_page_token", envelope, cb)
}

// CreateTransaction executes a direct transaction of the requested kind
func (c *AuthorizeNetClient) CreateTransaction(ctx context.Context, req *TransactionRequest, cb Callback) {
	envelope := buildTransactionEnvelope(req)
	go c.execute(ctx, "create_transaction", envelope, cb)
}

func (c *AuthorizeNetClient) execute(ctx context.Context, operation string, body any, cb Callback) {
	slog.InfoContext(ctx, "gateway call started", slog.String("operation", operation))

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		cb(nil, errors.Wrap(err, "failed to call gateway"))
		return
	}
	if resp.StatusCode() != http.StatusOK {
		cb(nil, errors.Errorf("gateway returned an error status: %s", resp.Status()))
		return
	}

	var gatewayResp gatewayResponse
	raw := bytes.TrimPrefix(resp.Body(), utf8BOM)
	if err := json.Unmarshal(raw, &gatewayResp); err != nil {
		cb(nil, errors.Wrap(err, "failed to decode gateway response"))
		return
	}

	result, err := mapResponse(&gatewayResp)
	if err != nil {
		cb(nil, errors.Wrap(err, "malformed gateway response"))
		return
	}

	slog.InfoContext(ctx, "gateway call completed",
		slog.String("operation", operation),
		slog.String("result_code", result.ResultCode),
	)
	cb(result, nil)
}
