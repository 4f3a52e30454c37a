package tara

import (
	"net/url"
	"strconv"
	"strings"
)

// CallbackResult is the parsed, synchronous outcome of the payer's return
// from the gateway. It is derived purely from the request parameters; nothing
// is checked against stored state here and the client never persists it.
type CallbackResult struct {
	Succeeded        bool
	Result           string
	Description      string
	Token            string
	ChannelRefNumber string
	AdditionalData   string
	OrderID          int64
	Message          string
}

// ParseCallback reads the gateway's return parameters (query or form encoded,
// the gateway uses either). It is pure and idempotent: the same parameters
// always produce the same result. A missing or empty result parameter is a
// failure, never a success, and a missing orderId parses to zero rather than
// failing.
func ParseCallback(params url.Values, messages Messages) CallbackResult {
	result := params.Get("result")
	succeeded := result != "" && strings.EqualFold(result, SuccessResult)

	message := messages.PaymentSucceeded
	if !succeeded {
		message = Translate(result, messages.PaymentFailed)
	}

	var orderID int64
	if raw := params.Get("orderId"); raw != "" {
		orderID, _ = strconv.ParseInt(raw, 10, 64)
	}

	return CallbackResult{
		Succeeded:        succeeded,
		Result:           result,
		Description:      params.Get("desc"),
		Token:            params.Get("token"),
		ChannelRefNumber: params.Get("channelRefNumber"),
		AdditionalData:   params.Get("additionalData"),
		OrderID:          orderID,
		Message:          message,
	}
}

// ParseCallback applies the client's configured messages.
func (c *Client) ParseCallback(params url.Values) CallbackResult {
	return ParseCallback(params, c.messages)
}
