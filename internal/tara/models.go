package tara

// ServiceAmount splits the invoice total across the gateway's wallet
// services. When the merchant supplies none, the client synthesizes a single
// entry with serviceId 1 covering the whole invoice.
type ServiceAmount struct {
	ServiceID int64 `json:"serviceId"`
	Amount    int64 `json:"amount"`
}

// InvoiceItem is one line item shown to the payer on the hosted payment page.
type InvoiceItem struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	Count      int64  `json:"count"`
	Unit       int64  `json:"unit"`
	Fee        int64  `json:"fee"`
	Group      string `json:"group"`
	GroupTitle string `json:"groupTitle"`
	Data       string `json:"data"`
}

// TrackPurchase is one settled attempt reported by the inquiry endpoint.
type TrackPurchase struct {
	Token       string `json:"token"`
	Result      string `json:"result"`
	Description string `json:"description"`
	DoTime      string `json:"doTime"`
	// Field name sic, matches the gateway payload.
	ServiceAmounts []ServiceAmount `json:"serviveAmountList"`
	Amount         string          `json:"amount"`
	RRN            string          `json:"rrn"`
	Type           string          `json:"type"`
}

type authenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authenticateResponse struct {
	Result      string `json:"result"`
	Description string `json:"description"`
	AccessToken string `json:"accessToken"`
}

type getTokenRequest struct {
	IP             string          `json:"ip"`
	ServiceAmounts []ServiceAmount `json:"serviceAmountList"`
	InvoiceItems   []InvoiceItem   `json:"taraInvoiceItemList"`
	AdditionalData string          `json:"additionalData"`
	CallbackURL    string          `json:"callBackUrl"`
	// The gateway expects the total as a string even though the per-service
	// amounts are numeric.
	Amount  string `json:"amount"`
	Mobile  string `json:"mobile"`
	OrderID int64  `json:"orderId"`
	VAT     int64  `json:"vat"`
}

type getTokenResponse struct {
	Result      string `json:"result"`
	Description string `json:"description"`
	Token       string `json:"token"`
}

type verifyRequest struct {
	IP    string `json:"ip"`
	Token string `json:"token"`
}

type verifyResponse struct {
	Token          string          `json:"token"`
	Result         string          `json:"result"`
	Description    string          `json:"description"`
	DoTime         string          `json:"doTime"`
	ServiceAmounts []ServiceAmount `json:"serviceAmountList"`
	Amount         string          `json:"amount"`
	RRN            string          `json:"rrn"`
	Type           string          `json:"type"`
}

type inquiryRequest struct {
	IP      string `json:"ip"`
	OrderID int64  `json:"orderId"`
}

type inquiryResponse struct {
	Result         string          `json:"result"`
	Description    string          `json:"description"`
	DoTime         string          `json:"doTime"`
	TrackPurchases []TrackPurchase `json:"trackPurchaseList"`
	OrderID        string          `json:"orderId"`
}
