package tara

import "context"

// InquiryResult reports the settlement history the gateway has recorded for
// one merchant order.
type InquiryResult struct {
	Succeeded   bool
	Description string
	DoTime      string
	OrderID     string
	Purchases   []TrackPurchase
	Message     string
}

// Inquire fetches the gateway's purchase track list for an order, typically
// for reconciliation when a callback never arrived. Error handling mirrors
// Request: it never returns an error, and HTTP-level failures keep the raw
// response body as the message.
func (c *Client) Inquire(ctx context.Context, account Account, orderID int64) *InquiryResult {
	accessToken, err := c.Authenticate(ctx, account)
	if err != nil {
		c.logger.Error("tara authentication failed", "order_id", orderID, "error", err)
		return &InquiryResult{Message: err.Error()}
	}

	url := EnvironmentURL(c.endpoints.Inquiry, account.IsTest)

	c.logger.Debug("inquiring purchase status", "url", url, "order_id", orderID)

	resp, err := postJSON[inquiryRequest, inquiryResponse](c, ctx, url, accessToken, inquiryRequest{
		IP:      account.IP,
		OrderID: orderID,
	})
	if err != nil {
		c.logger.Error("tara inquiry failed", "order_id", orderID, "error", err)
		return &InquiryResult{Message: failureMessage(err)}
	}

	if resp.Result != SuccessResult {
		return &InquiryResult{Message: Translate(resp.Result, c.messages.PaymentFailed)}
	}

	return &InquiryResult{
		Succeeded:   true,
		Description: resp.Description,
		DoTime:      resp.DoTime,
		OrderID:     resp.OrderID,
		Purchases:   resp.TrackPurchases,
		Message:     c.messages.PaymentSucceeded,
	}
}
