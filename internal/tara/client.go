package tara

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client drives the Tara three-phase payment protocol: authenticate, request
// a payment token, and verify after the payer's return. It holds no
// per-transaction state; accounts, invoices and tokens are passed explicitly
// on every call, so a single Client is safe for concurrent use.
type Client struct {
	endpoints  Endpoints
	messages   Messages
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(endpoints Endpoints, messages Messages, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		endpoints:  endpoints,
		messages:   messages,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Authenticate exchanges the account credentials for a short-lived bearer
// token. Tokens are never cached: the gateway has no refresh call and the
// tokens expire quickly, so every Request and every Verify authenticates
// again. A reported success with an empty token is still an error.
func (c *Client) Authenticate(ctx context.Context, account Account) (string, error) {
	url := EnvironmentURL(c.endpoints.Authenticate, account.IsTest)

	c.logger.Debug("authenticating with tara gateway", "url", url, "username", account.Username)

	resp, err := postJSON[authenticateRequest, authenticateResponse](c, ctx, url, "", authenticateRequest{
		Username: account.Username,
		Password: account.Password,
	})
	if err != nil {
		return "", &AuthError{Message: "authentication request failed", Err: err}
	}

	if resp.Result != SuccessResult {
		return "", &AuthError{Message: fmt.Sprintf("authentication failed (code %s): %s", resp.Result, resp.Description)}
	}

	if resp.AccessToken == "" {
		return "", &AuthError{Message: "authentication succeeded but no access token was returned"}
	}

	return resp.AccessToken, nil
}

// postJSON is a generic helper for the gateway's JSON-over-POST calls. The
// bearer token is empty for the authenticate call only.
func postJSON[Req any, Resp any](c *Client, ctx context.Context, url, bearer string, reqBody Req) (*Resp, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out Resp
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &out, nil
}

// failureMessage keeps the raw response body for HTTP-level failures; no
// further interpretation is attempted there. Anything else is reported
// through the error string.
func failureMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Body
	}
	return err.Error()
}
