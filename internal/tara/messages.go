package tara

// Messages holds the merchant-facing outcome texts used when the gateway does
// not supply one of its own. The gateway's descriptions are Persian, so the
// defaults are too.
type Messages struct {
	PaymentSucceeded string
	PaymentFailed    string
}

func DefaultMessages() Messages {
	return Messages{
		PaymentSucceeded: "پرداخت با موفقیت انجام شد",
		PaymentFailed:    "پرداخت انجام نشد",
	}
}
