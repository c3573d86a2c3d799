package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"

	"driveledger/internal/domain/ledger"
	"driveledger/pkg/logger"
)

// Consumer receives ledger events from a queue bound to the event exchange.
type Consumer struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	queueName string
}

// NewConsumer connects to the broker, declares the exchange and queue, and
// binds the queue to every ledger event routing key.
func NewConsumer(url, exchangeName, queueName string) (*Consumer, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	c := &Consumer{
		conn:      conn,
		channel:   channel,
		queueName: queueName,
	}

	if err := c.setup(exchangeName); err != nil {
		c.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return c, nil
}

func (c *Consumer) setup(exchangeName string) error {
	err := c.channel.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	routingKeys := []string{
		ledger.EventVehicleAdded,
		ledger.EventVehicleSold,
		ledger.EventExpenseRecorded,
	}
	for _, key := range routingKeys {
		if err := c.channel.QueueBind(c.queueName, key, exchangeName, false, nil); err != nil {
			return fmt.Errorf("bind queue for %s: %w", key, err)
		}
	}

	return nil
}

// Consume delivers ledger events to handler until ctx is cancelled. Messages
// that fail to decode are dropped; a handler error requeues the message.
func (c *Consumer) Consume(ctx context.Context, handler func(ledger.Event) error) error {
	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack (we want manual ack)
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	logger.Info(ctx, "consuming ledger events", "queue", c.queueName)

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "stopping event consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			var e ledger.Event
			if err := json.Unmarshal(delivery.Body, &e); err != nil {
				logger.Error(ctx, "failed to decode event", "error", err)
				delivery.Nack(false, false) // reject and don't requeue
				continue
			}

			if err := handler(e); err != nil {
				logger.Error(ctx, "failed to handle event",
					"error", err,
					"event", e.Name,
					"entity_id", e.EntityID)
				delivery.Nack(false, true) // reject and requeue
				continue
			}

			delivery.Ack(false)
		}
	}
}

// Close closes the channel and connection.
func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
