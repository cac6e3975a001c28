package email

// PreviewData contains sample template data for local preview/testing.
//
//	PreviewData["welcome"]["UserFirstName"] == "Eva"
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserFirstName": "Eva",
		"UserEmail":     "eva.stanley@example.com",
	},
}
