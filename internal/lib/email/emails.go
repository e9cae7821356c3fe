package email

import "fmt"

// ContactNotificationData feeds the contact_notification template.
type ContactNotificationData struct {
	Name        string
	Email       string
	InquiryType string
	Message     string
}

// OrderLine is one row of the order receipt.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// OrderReceivedData feeds the order_received template.
type OrderReceivedData struct {
	OrderID string
	Items   []OrderLine
	Total   string
	Status  string
}

// SendContactNotification tells the studio inbox about a new contact message.
func (c *Client) SendContactNotification(to string, data ContactNotificationData) error {
	return c.SendEmail(
		to,
		fmt.Sprintf("New %s inquiry from %s", data.InquiryType, data.Name),
		TemplateContactNotification,
		data,
	)
}

// SendOrderReceived sends the customer a receipt for a new order.
func (c *Client) SendOrderReceived(to string, data OrderReceivedData) error {
	return c.SendEmail(
		to,
		"We received your order",
		TemplateOrderReceived,
		data,
	)
}

// FormatTotal renders an order total for display.
func FormatTotal(total float64) string {
	return fmt.Sprintf("%.2f", total)
}
