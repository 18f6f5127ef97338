package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"iso-rate-api/internal/dal"
	"iso-rate-api/internal/dto"
)

// PublishNotifyCreated pushes the notification event onto notify_events.
// Publish failure is logged and swallowed: the persisted row is the
// source of truth, the event is a convenience for consumers.
func PublishNotifyCreated(evt dto.NotifyEventMQ) error {
	if dal.RabbitCh == nil {
		return nil
	}
	b, _ := json.Marshal(evt)
	err := dal.RabbitCh.Publish(
		"notify_events",
		"notify.created",
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish notify.created failed: %v", err)
	}
	return err
}
