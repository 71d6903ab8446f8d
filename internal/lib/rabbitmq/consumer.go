package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
)

// ConsumeMessages читает очередь до отмены ctx или закрытия канала доставки.
// Не более concurrency сообщений обрабатываются одновременно; при ошибке
// обработчика сообщение возвращается в очередь.
func ConsumeMessages(ctx context.Context, ch *amqp.Channel, queueName string, concurrency int, log *slog.Logger, handler func(context.Context, []byte) error) error {
	const op = "rabbitmq.ConsumeMessages"
	delivery, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return serveDeliveries(ctx, delivery, concurrency, log, handler)
}

// acknowledger — часть amqp.Delivery, отвечающая за подтверждение.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type message struct {
	body []byte
	ack  acknowledger
}

func serveDeliveries(ctx context.Context, delivery <-chan amqp.Delivery, concurrency int, log *slog.Logger, handler func(context.Context, []byte) error) error {
	msgs := make(chan message)
	go func() {
		defer close(msgs)
		for d := range delivery {
			select {
			case msgs <- message{body: d.Body, ack: deliveryAck{d}}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return serve(ctx, msgs, concurrency, log, handler)
}

type deliveryAck struct{ d amqp.Delivery }

func (a deliveryAck) Ack(multiple bool) error           { return a.d.Ack(multiple) }
func (a deliveryAck) Nack(multiple, requeue bool) error { return a.d.Nack(multiple, requeue) }

func serve(ctx context.Context, msgs <-chan message, concurrency int, log *slog.Logger, handler func(context.Context, []byte) error) error {
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-msgs:
			if !ok {
				return nil
			}
			sem <- struct{}{}
			wg.Add(1)
			go func(m message) {
				defer wg.Done()
				defer func() { <-sem }()
				if err := handler(ctx, m.body); err != nil {
					log.Error("failed to handle message", sl.Err(err))
					if nackErr := m.ack.Nack(false, true); nackErr != nil {
						log.Error("failed to nack message", sl.Err(nackErr))
					}
					return
				}
				if ackErr := m.ack.Ack(false); ackErr != nil {
					log.Error("failed to ack message", sl.Err(ackErr))
				}
			}(m)
		}
	}
}
