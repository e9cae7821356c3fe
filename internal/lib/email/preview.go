package email

import "fmt"

// PreviewData contains sample template data for local preview/testing.
var PreviewData = map[Template]any{
	TemplateContactNotification: ContactNotificationData{
		Name:        "Ada",
		Email:       "ada@example.com",
		InquiryType: "Commissions",
		Message:     "Would you paint the harbour at dusk?",
	},
	TemplateOrderReceived: OrderReceivedData{
		OrderID: "665f1c2e9b1e8a0012345678",
		Items: []OrderLine{
			{ProductID: "665f1c2e9b1e8a0000000001", Quantity: 2},
			{ProductID: "665f1c2e9b1e8a0000000002", Quantity: 1},
		},
		Total:  FormatTotal(120),
		Status: "pending",
	},
}

// Preview renders templateName with its PreviewData.
func Preview(templateName Template) (string, error) {
	data, ok := PreviewData[templateName]
	if !ok {
		return "", fmt.Errorf("no preview data for template %s", templateName)
	}
	return Render(templateName, data)
}
