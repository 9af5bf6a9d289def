// Package events publica eventos de dominio en RabbitMQ. La publicación es
// best-effort: cualquier fallo se registra y se devuelve para que el llamador
// pueda ignorarlo sin interrumpir el flujo principal.
package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/pkg/logger"
)

// Nombres de las colas. Durables, idempotentes al declararse.
const (
	QueueSaleRecorded   = "sale.recorded"
	QueueRoastCompleted = "roast.completed"
	QueueLowStock       = "stock.low"
)

var _ ports.EventPublisher = (*AMQPPublisher)(nil)

// AMQPPublisher implementa ports.EventPublisher sobre RabbitMQ. Abre una
// conexión por publicación para no arrastrar canales rotos entre peticiones.
// Con URL vacía el publicador queda deshabilitado y descarta los eventos.
type AMQPPublisher struct {
	url string
	log *logger.Logger
}

// NewAMQPPublisher construye el publicador. url vacía lo deshabilita.
func NewAMQPPublisher(url string, log *logger.Logger) *AMQPPublisher {
	if url == "" {
		log.Warn().Msg("RABBITMQ_URL vacía: eventos de dominio deshabilitados")
	}
	return &AMQPPublisher{url: url, log: log}
}

// PublishSaleRecorded publica el evento de venta confirmada.
func (p *AMQPPublisher) PublishSaleRecorded(ctx context.Context, ev ports.SaleRecordedEvent) error {
	return p.publish(ctx, QueueSaleRecorded, ev)
}

// PublishRoastCompleted publica el evento de tueste registrado.
func (p *AMQPPublisher) PublishRoastCompleted(ctx context.Context, ev ports.RoastCompletedEvent) error {
	return p.publish(ctx, QueueRoastCompleted, ev)
}

// PublishLowStock publica el evento de stock bajo umbral.
func (p *AMQPPublisher) PublishLowStock(ctx context.Context, ev ports.LowStockEvent) error {
	return p.publish(ctx, QueueLowStock, ev)
}

func (p *AMQPPublisher) publish(ctx context.Context, queue string, event any) error {
	if p.url == "" {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: fallo al conectar")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: fallo al abrir canal")
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		p.log.Error().Err(err).Str("queue", queue).Msg("rabbitmq: fallo al declarar cola")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Err(err).Msg("rabbitmq: fallo al serializar evento")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		p.log.Error().Err(err).Str("queue", queue).Msg("rabbitmq: fallo al publicar")
		return err
	}
	return nil
}
