// Package events публикует доменные события в RabbitMQ.
// Публикация best-effort: ошибки возвращаются вызывающему для логирования,
// но не должны прерывать основной поток запроса.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// Publisher держит одно соединение с брокером на весь жизненный цикл процесса.
// Nil-publisher безопасен: все методы превращаются в no-op, сервис продолжает
// работать без брокера.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher подключается к RabbitMQ и декларирует очереди событий.
// Очереди durable — сообщения переживают рестарт брокера.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}

	queues := []string{QueueBookingCreated, QueueBookingConfirmed, QueueBookingCancelled, QueueBlockCreated}
	for _, q := range queues {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("events: declare queue %s: %w", q, err)
		}
	}

	return &Publisher{conn: conn, channel: ch}, nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// PublishBookingCreated публикует событие о созданном бронировании
func (p *Publisher) PublishBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return p.publishBooking(ctx, QueueBookingCreated, booking)
}

// PublishBookingConfirmed публикует событие о подтвержденном бронировании
func (p *Publisher) PublishBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	return p.publishBooking(ctx, QueueBookingConfirmed, booking)
}

// PublishBookingCancelled публикует событие об отмененном бронировании
func (p *Publisher) PublishBookingCancelled(ctx context.Context, booking *domain.Booking) error {
	return p.publishBooking(ctx, QueueBookingCancelled, booking)
}

// PublishBlockCreated публикует событие о созданной блокировке расписания
func (p *Publisher) PublishBlockCreated(ctx context.Context, block *domain.ScheduleBlock) error {
	if p == nil {
		return nil
	}
	event := BlockEvent{
		EventID:    uuid.NewString(),
		BlockID:    block.ID,
		FieldID:    block.FieldID,
		StartTime:  block.StartTime,
		EndTime:    block.EndTime,
		Reason:     block.Reason,
		OccurredAt: time.Now().UTC(),
	}
	return p.publish(ctx, QueueBlockCreated, event)
}

func (p *Publisher) publishBooking(ctx context.Context, queue string, booking *domain.Booking) error {
	if p == nil {
		return nil
	}
	event := BookingEvent{
		EventID:    uuid.NewString(),
		BookingID:  booking.ID,
		FieldID:    booking.FieldID,
		OwnerID:    booking.OwnerID,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Status:     string(booking.Status),
		TotalPrice: booking.TotalPrice,
		OccurredAt: time.Now().UTC(),
	}
	return p.publish(ctx, queue, event)
}

func (p *Publisher) publish(ctx context.Context, queue string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.channel.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		return fmt.Errorf("events: publish to %s: %w", queue, err)
	}

	return nil
}
