package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email_1"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return newClient(s, "studio@lazyvirtuoso.art", &logger)
}

func TestPreviewRendersEveryTemplate(t *testing.T) {
	for _, tmpl := range []Template{TemplateContactNotification, TemplateOrderReceived} {
		t.Run(string(tmpl), func(t *testing.T) {
			body, err := Preview(tmpl)
			require.NoError(t, err)
			assert.Contains(t, body, "The Lazy Virtuoso")
		})
	}
}

func TestPreviewUnknownTemplate(t *testing.T) {
	_, err := Preview(Template("welcome"))
	assert.Error(t, err)
}

func TestSendContactNotification(t *testing.T) {
	fake := &fakeSender{}
	client := newTestClient(fake)

	err := client.SendContactNotification("inbox@lazyvirtuoso.art", ContactNotificationData{
		Name:        "Ada",
		Email:       "ada@example.com",
		InquiryType: "Art",
		Message:     "<b>hello</b>",
	})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	assert.Equal(t, []string{"inbox@lazyvirtuoso.art"}, msg.To)
	assert.Equal(t, "The Lazy Virtuoso <studio@lazyvirtuoso.art>", msg.From)
	assert.Equal(t, "New Art inquiry from Ada", msg.Subject)
	// user content is escaped by html/template
	assert.Contains(t, msg.Html, "&lt;b&gt;hello&lt;/b&gt;")
}

func TestSendOrderReceived(t *testing.T) {
	fake := &fakeSender{}
	client := newTestClient(fake)

	err := client.SendOrderReceived("buyer@example.com", OrderReceivedData{
		OrderID: "abc123",
		Items:   []OrderLine{{ProductID: "p1", Quantity: 3}},
		Total:   FormatTotal(10),
		Status:  "pending",
	})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)
	assert.Contains(t, fake.sent[0].Html, "abc123")
	assert.Contains(t, fake.sent[0].Html, "10.00")
	assert.Contains(t, fake.sent[0].Html, "p1")
}

func TestSendEmailProviderFailure(t *testing.T) {
	client := newTestClient(&fakeSender{err: errors.New("rate limited")})

	err := client.SendOrderReceived("buyer@example.com", PreviewData[TemplateOrderReceived].(OrderReceivedData))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}
