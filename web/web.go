// Package web holds the static pages served around the API: the public
// landing, login and payment pages, and the payment-gated dashboard.
package web

import "embed"

//go:embed *.html
var Pages embed.FS
