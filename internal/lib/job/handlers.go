package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/lazy-virtuoso/internal/lib/email"
	"github.com/hibiken/asynq"
)

func (j *JobService) handleContactNotificationTask(ctx context.Context, t *asynq.Task) error {
	var p ContactNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal contact notification payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", "contact_notification").
		Str("message_id", p.MessageID).
		Logger()

	log.Info().Msg("processing contact notification task")

	err := j.mailer.SendContactNotification(j.contactInbox, email.ContactNotificationData{
		Name:        p.Name,
		Email:       p.Email,
		InquiryType: p.InquiryType,
		Message:     p.Message,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send contact notification")
		return err
	}

	log.Info().Msg("sent contact notification")
	return nil
}

func (j *JobService) handleOrderReceivedTask(ctx context.Context, t *asynq.Task) error {
	var p OrderReceivedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal order received payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", "order_received").
		Str("order_id", p.OrderID).
		Logger()

	log.Info().Msg("processing order received task")

	lines := make([]email.OrderLine, 0, len(p.Items))
	for _, item := range p.Items {
		lines = append(lines, email.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	err := j.mailer.SendOrderReceived(p.Email, email.OrderReceivedData{
		OrderID: p.OrderID,
		Items:   lines,
		Total:   email.FormatTotal(p.Total),
		Status:  p.Status,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send order receipt")
		return err
	}

	log.Info().Msg("sent order receipt")
	return nil
}
