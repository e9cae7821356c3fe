package email

import (
	"embed"
	"html/template"
)

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateContactNotification corresponds to templates/contact_notification.html
	TemplateContactNotification Template = "contact_notification"

	// TemplateOrderReceived corresponds to templates/order_received.html
	TemplateOrderReceived Template = "order_received"
)

//go:embed templates/*.html
var templateFS embed.FS

// templates are parsed once at package init; a broken template is a
// build defect, not a runtime condition.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func (t Template) file() string {
	return string(t) + ".html"
}
