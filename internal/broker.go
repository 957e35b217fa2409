package internal

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/DrGermanius/Shopmart/internal/model"
)

const (
	ordersExchange = "orders_topic"
	publishTimeout = 5 * time.Second
)

type IPublisher interface {
	PublishOrderStatus(context.Context, model.OrderStatusEvent) error
	Close() error
}

type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.SugaredLogger
}

func NewAMQPPublisher(url string, logger *zap.SugaredLogger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = ch.ExchangeDeclare(
		ordersExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Infof("Connected to broker, exchange %s declared", ordersExchange)
	return &AMQPPublisher{conn: conn, channel: ch, logger: logger}, nil
}

// PublishOrderStatus routes the event by status, e.g. order.status.shipped.
func (p *AMQPPublisher) PublishOrderStatus(ctx context.Context, e model.OrderStatusEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(ctx,
		ordersExchange,
		"order.status."+e.Status,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    e.ChangedAt,
			MessageId:    e.OrderID,
			Body:         body,
		})
}

func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.logger.Errorf("Close channel error: %s", err.Error())
	}
	return p.conn.Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderStatus(context.Context, model.OrderStatusEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
