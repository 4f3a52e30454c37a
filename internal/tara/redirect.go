package tara

import (
	"fmt"
	"html/template"
	"strings"
)

var redirectFormTemplate = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body onload="document.forms[0].submit();">
<form action="{{.URL}}" method="post">
{{- range $name, $value := .Form}}
<input type="hidden" name="{{$name}}" value="{{$value}}">
{{- end}}
<noscript><button type="submit">ادامه پرداخت</button></noscript>
</form>
</body>
</html>
`))

// RedirectForm renders the auto-submitting HTML form that carries the payer
// to the gateway's hosted payment page. It is only meaningful for a
// succeeded result.
func (r *RequestResult) RedirectForm() (string, error) {
	if !r.Succeeded {
		return "", fmt.Errorf("cannot build redirect form for a failed payment request: %s", r.Message)
	}

	var out strings.Builder
	err := redirectFormTemplate.Execute(&out, struct {
		URL  string
		Form map[string]string
	}{URL: r.PaymentURL, Form: r.Form})
	if err != nil {
		return "", fmt.Errorf("error rendering redirect form: %w", err)
	}

	return out.String(), nil
}
