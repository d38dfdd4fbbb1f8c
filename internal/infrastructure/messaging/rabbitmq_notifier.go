package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

const (
	exchangeName = "workshop.orders"
	exchangeType = "topic"
)

// statusChangeEvent is the wire format consumed by the notification workers.
type statusChangeEvent struct {
	OrderID    string  `json:"order_id"`
	CustomerID string  `json:"customer_id"`
	VehicleID  string  `json:"vehicle_id"`
	OldStatus  string  `json:"old_status"`
	NewStatus  string  `json:"new_status"`
	TotalCost  float64 `json:"total_cost"`
	OccurredAt string  `json:"occurred_at"`
}

// RabbitMQOrderNotifier publishes status-change events to the workshop.orders
// topic exchange. Routing key: order.status.<new_status> (lowercased), so a
// consumer can bind order.status.completed without seeing every transition.
type RabbitMQOrderNotifier struct {
	ch *amqp.Channel
}

var _ interfaces.IOrderNotifier = (*RabbitMQOrderNotifier)(nil)

// ConnectRabbitMQ dials the broker and declares the exchange. Returns nil when
// url is empty or the broker never answers; status changes go unannounced in
// that case.
func ConnectRabbitMQ(url string) *RabbitMQOrderNotifier {
	if url == "" {
		return nil
	}

	var conn *amqp.Connection
	var err error
	// Retry a few times so `docker compose up` ordering does not matter.
	for i := 0; i < 5; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		log.Printf("[messaging][rabbitmq] connect failed attempt=%d err=%v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Printf("[messaging][rabbitmq] broker unreachable, running without notifications")
		return nil
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("[messaging][rabbitmq] channel open failed err=%v", err)
		_ = conn.Close()
		return nil
	}

	if err := ch.ExchangeDeclare(exchangeName, exchangeType, true, false, false, false, nil); err != nil {
		log.Printf("[messaging][rabbitmq] exchange declare failed err=%v", err)
		_ = conn.Close()
		return nil
	}

	log.Printf("[messaging][rabbitmq] connected exchange=%s", exchangeName)
	return &RabbitMQOrderNotifier{ch: ch}
}

func NewRabbitMQOrderNotifier(ch *amqp.Channel) *RabbitMQOrderNotifier {
	return &RabbitMQOrderNotifier{ch: ch}
}

func (n *RabbitMQOrderNotifier) PublishStatusChange(ctx context.Context, order entities.ServiceOrder, oldStatus entities.ServiceStatus) error {
	body, err := json.Marshal(statusChangeEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		VehicleID:  order.VehicleID,
		OldStatus:  string(oldStatus),
		NewStatus:  string(order.Status),
		TotalCost:  order.TotalCost,
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("could not marshal status change event: %w", err)
	}

	routingKey := fmt.Sprintf("order.status.%s", strings.ToLower(string(order.Status)))

	return n.ch.PublishWithContext(ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
