package tara

// Account is one merchant credential set for the Tara gateway. It is loaded
// from configuration, immutable afterwards, and passed explicitly into every
// client call; the client never stores it.
type Account struct {
	Username string
	Password string
	// IP is the originating address the merchant registered with Tara; the
	// gateway rejects requests that report a different one.
	IP     string
	IsTest bool
}
