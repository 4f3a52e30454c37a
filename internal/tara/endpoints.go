package tara

import "strings"

// Base URLs for the Tara API environments.
const (
	ProductionBaseURL = "https://pay.tara360.ir/pay"
	StagingBaseURL    = "https://stage-pay.tara360.ir/pay"
)

// Endpoints holds the full URL for every Tara operation. Each URL can be
// overridden independently through configuration; DefaultEndpoints returns
// the documented production set.
type Endpoints struct {
	Authenticate string
	GetToken     string
	Payment      string
	Verify       string
	Inquiry      string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Authenticate: ProductionBaseURL + "/api/v2/authenticate",
		GetToken:     ProductionBaseURL + "/api/getToken",
		Payment:      ProductionBaseURL + "/api/ipgPurchase",
		Verify:       ProductionBaseURL + "/api/purchaseVerify",
		Inquiry:      ProductionBaseURL + "/api/purchaseInquiry",
	}
}

// EnvironmentURL maps a configured URL to the staging environment when isTest
// is set, by substituting the production base URL with the staging one. A URL
// that does not contain the production base is returned unchanged, so callers
// may configure staging or custom URLs directly. The flip side is that a
// misconfigured custom domain silently skips the staging redirection; that
// behavior is part of the contract and must not change.
func EnvironmentURL(url string, isTest bool) string {
	if !isTest {
		return url
	}
	return strings.ReplaceAll(url, ProductionBaseURL, StagingBaseURL)
}
