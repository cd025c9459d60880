package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rabwill/pizza-api/internal/domain/entities"
	"github.com/rabwill/pizza-api/internal/usecase/interfaces"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultExchange = "order_exchange"

	orderPlacedRoutingKey    = "order.placed"
	orderCancelledRoutingKey = "order.cancelled"
)

var ErrMissingRabbitMQURL = errors.New("missing RABBITMQ_URL")

// orderEvent is the message body published for order lifecycle changes.
type orderEvent struct {
	EventID    string  `json:"event_id"`
	OrderID    string  `json:"order_id"`
	UserID     string  `json:"user_id"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	OccurredAt string  `json:"occurred_at"`
}

// RabbitMQPublisher announces order lifecycle changes on a topic exchange.
// It is optional infrastructure: routes only wires it when RABBITMQ_URL is
// set, and the ordering engine treats publish failures as log-only.

type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

var _ interfaces.IOrderEventPublisher = (*RabbitMQPublisher)(nil)

func NewRabbitMQPublisher(url string) (*RabbitMQPublisher, error) {
	if url == "" {
		return nil, ErrMissingRabbitMQURL
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	exchange := defaultExchange
	if err := channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Printf("[events][rabbitmq] publisher initialized exchange=%s", exchange)
	return &RabbitMQPublisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *RabbitMQPublisher) OrderPlaced(ctx context.Context, o entities.Order) error {
	return p.publish(ctx, orderPlacedRoutingKey, o)
}

func (p *RabbitMQPublisher) OrderCancelled(ctx context.Context, o entities.Order) error {
	return p.publish(ctx, orderCancelledRoutingKey, o)
}

func (p *RabbitMQPublisher) publish(ctx context.Context, routingKey string, o entities.Order) error {
	body, err := json.Marshal(orderEvent{
		EventID:    uuid.NewString(),
		OrderID:    o.ID,
		UserID:     o.UserID,
		Status:     string(o.Status),
		TotalPrice: o.TotalPrice,
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

func (p *RabbitMQPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
