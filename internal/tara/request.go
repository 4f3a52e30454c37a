package tara

import (
	"context"
	"strconv"
)

// Invoice is the merchant order a payment is requested for. Amount is in
// Rials. The client only reads it.
type Invoice struct {
	TrackingNumber int64
	Amount         int64
	CallbackURL    string
}

// RequestOptions carries the gateway-specific request fields that do not
// belong on the invoice itself. The zero value is valid: a single service
// amount covering the invoice total is synthesized when ServiceAmounts is
// empty, and the item list defaults to empty.
type RequestOptions struct {
	ServiceAmounts []ServiceAmount
	InvoiceItems   []InvoiceItem
	Mobile         string
	AdditionalData string
	VAT            int64
}

// RequestResult is the tagged outcome of the token request step. When
// Succeeded is set, the payer must be sent to PaymentURL with an
// auto-submitting POST form carrying Form; a GET redirect is not accepted by
// the gateway.
type RequestResult struct {
	Succeeded  bool
	Token      string
	PaymentURL string
	Form       map[string]string
	Message    string
}

// Request runs authenticate then getToken and builds the payer redirect. It
// never returns an error: every fault, including a propagated authentication
// failure, is folded into a failed RequestResult whose Message is safe to
// show to the merchant. A non-2xx getToken response carries the raw body as
// the message; a gateway-reported failure carries the translated result code.
func (c *Client) Request(ctx context.Context, account Account, invoice Invoice, opts RequestOptions) *RequestResult {
	accessToken, err := c.Authenticate(ctx, account)
	if err != nil {
		c.logger.Error("tara authentication failed", "order_id", invoice.TrackingNumber, "error", err)
		return &RequestResult{Message: err.Error()}
	}

	url := EnvironmentURL(c.endpoints.GetToken, account.IsTest)

	c.logger.Debug("requesting payment token",
		"url", url,
		"order_id", invoice.TrackingNumber,
		"amount", invoice.Amount,
	)

	resp, err := postJSON[getTokenRequest, getTokenResponse](c, ctx, url, accessToken, newGetTokenRequest(account, invoice, opts))
	if err != nil {
		c.logger.Error("tara token request failed", "order_id", invoice.TrackingNumber, "error", err)
		return &RequestResult{Message: failureMessage(err)}
	}

	if resp.Result != SuccessResult {
		return &RequestResult{Message: Translate(resp.Result, c.messages.PaymentFailed)}
	}

	return &RequestResult{
		Succeeded:  true,
		Token:      resp.Token,
		PaymentURL: EnvironmentURL(c.endpoints.Payment, account.IsTest),
		Form: map[string]string{
			"username": account.Username,
			"token":    resp.Token,
		},
	}
}

func newGetTokenRequest(account Account, invoice Invoice, opts RequestOptions) getTokenRequest {
	serviceAmounts := opts.ServiceAmounts
	if len(serviceAmounts) == 0 {
		serviceAmounts = []ServiceAmount{{ServiceID: 1, Amount: invoice.Amount}}
	}

	invoiceItems := opts.InvoiceItems
	if invoiceItems == nil {
		invoiceItems = []InvoiceItem{}
	}

	return getTokenRequest{
		IP:             account.IP,
		ServiceAmounts: serviceAmounts,
		InvoiceItems:   invoiceItems,
		AdditionalData: opts.AdditionalData,
		CallbackURL:    invoice.CallbackURL,
		Amount:         strconv.FormatInt(invoice.Amount, 10),
		Mobile:         opts.Mobile,
		OrderID:        invoice.TrackingNumber,
		VAT:            opts.VAT,
	}
}
