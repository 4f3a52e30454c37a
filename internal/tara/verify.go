package tara

import (
	"context"
	"strings"
)

type VerifyStatus string

const (
	VerifySucceeded VerifyStatus = "SUCCEEDED"
	VerifyFailed    VerifyStatus = "FAILED"
)

// VerifyResult is the tagged outcome of the post-payment verification step.
type VerifyResult struct {
	Status         VerifyStatus
	TransactionRef string
	Message        string
	// AdditionalData carries opaque values echoed by the gateway (the payment
	// token and the transaction type) for the caller to persist alongside the
	// payment. The client does not interpret them.
	AdditionalData map[string]string
}

// Verify confirms final settlement of a payment whose callback already parsed
// as successful; callers must not invoke it for a failed callback. It
// re-authenticates first and, like Request, never returns an error: every
// fault becomes a failed VerifyResult.
func (c *Client) Verify(ctx context.Context, account Account, callback CallbackResult) *VerifyResult {
	accessToken, err := c.Authenticate(ctx, account)
	if err != nil {
		c.logger.Error("tara authentication failed", "order_id", callback.OrderID, "error", err)
		return failedVerify(err.Error())
	}

	url := EnvironmentURL(c.endpoints.Verify, account.IsTest)

	c.logger.Debug("verifying payment", "url", url, "order_id", callback.OrderID)

	resp, err := postJSON[verifyRequest, verifyResponse](c, ctx, url, accessToken, verifyRequest{
		IP:    account.IP,
		Token: callback.Token,
	})
	if err != nil {
		c.logger.Error("tara verify failed", "order_id", callback.OrderID, "error", err)
		return failedVerify(failureMessage(err))
	}

	if resp.Result == "" || !strings.EqualFold(resp.Result, SuccessResult) {
		return failedVerify(Translate(resp.Result, c.messages.PaymentFailed))
	}

	return &VerifyResult{
		Status:         VerifySucceeded,
		TransactionRef: resp.RRN,
		Message:        c.messages.PaymentSucceeded,
		AdditionalData: map[string]string{
			"token": resp.Token,
			"type":  resp.Type,
		},
	}
}

func failedVerify(message string) *VerifyResult {
	return &VerifyResult{Status: VerifyFailed, Message: message}
}
