package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskContactNotification = "email:contact_notification"
	TaskOrderReceived       = "email:order_received"
)

// ContactNotificationPayload is the task payload for a new contact message.
type ContactNotificationPayload struct {
	MessageID   string `json:"message_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	InquiryType string `json:"inquiry_type"`
	Message     string `json:"message"`
}

// OrderItemPayload mirrors one order line.
type OrderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderReceivedPayload is the task payload for a new order.
type OrderReceivedPayload struct {
	OrderID string             `json:"order_id"`
	Email   string             `json:"email"`
	Items   []OrderItemPayload `json:"items"`
	Total   float64            `json:"total"`
	Status  string             `json:"status"`
}

// NewContactNotificationTask builds the task mailing the studio inbox.
func NewContactNotificationTask(p ContactNotificationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskContactNotification,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewOrderReceivedTask builds the task mailing the customer a receipt.
func NewOrderReceivedTask(p OrderReceivedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskOrderReceived,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueContactNotification schedules the inbox notification for a
// stored contact message. It is a no-op without a job service or inbox.
func (j *JobService) EnqueueContactNotification(ctx context.Context, p ContactNotificationPayload) error {
	if j == nil || j.contactInbox == "" {
		return nil
	}

	task, err := NewContactNotificationTask(p)
	if err != nil {
		return err
	}
	_, err = j.Client.EnqueueContext(ctx, task)
	return err
}

// EnqueueOrderReceived schedules the receipt for a stored order.
func (j *JobService) EnqueueOrderReceived(ctx context.Context, p OrderReceivedPayload) error {
	if j == nil {
		return nil
	}

	task, err := NewOrderReceivedTask(p)
	if err != nil {
		return err
	}
	_, err = j.Client.EnqueueContext(ctx, task)
	return err
}
