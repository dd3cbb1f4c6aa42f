package email

// PreviewData contains sample template data for local preview/testing.
//
//	templateName -> (templateVariableName -> exampleValue)
var PreviewData = map[Template]map[string]string{
	TemplateContact: {
		"Name":    "Jane Doe",
		"Email":   "jane@example.com",
		"Message": "Hi! I loved the project write-ups.\nAre you open to freelance work?",
	},
	TemplateContactAck: {
		"Name": "Jane Doe",
	},
}
