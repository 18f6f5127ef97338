package dal

import (
	"log"

	"iso-rate-api/internal/config"

	"github.com/streadway/amqp"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

func InitRabbitMQ() {
	url := config.C.RabbitMQ.URL
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	// exchange & queues
	if err := ch.ExchangeDeclare("notify_events", "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare("notify_created", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare notify_created failed: %v", err)
	}
	if err := ch.QueueBind("notify_created", "notify.created", "notify_events", false, nil); err != nil {
		log.Fatalf("queue bind notify_created failed: %v", err)
	}

	RabbitConn = conn
	RabbitCh = ch
}
