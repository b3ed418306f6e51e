// Package web holds the browser-facing assets served by the API: currently
// only the dummy sign-in page used to obtain a provider identity token
// during development.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DummyLoginTemplate renders the federated sign-in test page. The handler
// executes it with the provider's browser-facing configuration.
var DummyLoginTemplate = template.Must(template.ParseFS(templatesFS, "templates/dummy_login.html"))
