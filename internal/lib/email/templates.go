package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateContact corresponds to templates/contact.html
	TemplateContact Template = "contact"

	// TemplateContactAck corresponds to templates/contact_ack.html
	TemplateContactAck Template = "contact_ack"
)

func (t Template) file() string {
	return string(t) + ".html"
}
