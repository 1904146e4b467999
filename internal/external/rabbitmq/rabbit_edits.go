package rabbitmq

import (
	"context"
	"encoding/json"

	model "github.com/pharmakart/loyalty/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const editsQueue = "order_edits"
const confirmQueue = "order_edit_confirms"

// Событие изменения суммы заказа
type OrderEditEvent struct {
	AccountID   string  `json:"accountId"`
	OrderID     string  `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	OldTotal    float64 `json:"oldTotal"`
	NewTotal    float64 `json:"newTotal"`
}

type EditConfirm struct {
	OrderID        string               `json:"orderId"`
	Success        bool                 `json:"success"`
	PointsAdjusted int64                `json:"pointsAdjusted"`
	AdjustmentType model.AdjustmentType `json:"adjustmentType"`
}

type EditsConsumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Msg   <-chan amqp.Delivery
	chout *amqp.Channel
}

func NewEditsConsumer() (consumer *EditsConsumer, err error) {
	conn, err := dial()
	if err != nil {
		return nil, err
	}

	// канал для входящих
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		editsQueue, // name
		false,      // durable
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	// канал для подтверждений
	chout, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = chout.QueueDeclare(
		confirmQueue, // name
		false,        // durable
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	msg, err := ch.Consume(
		editsQueue, // queue
		"",         // consumer
		true,       // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &EditsConsumer{conn, ch, msg, chout}, nil
}

func (e *EditsConsumer) Close() {
	e.ch.Close()
	e.conn.Close()
}

// Подтверждение обработки корректировки
func (e *EditsConsumer) Processed(ctx context.Context, orderID string, success bool, result model.AdjustResult) error {
	st := &EditConfirm{orderID, success, result.PointsAdjusted, result.AdjustmentType}
	msg, err := json.Marshal(st)
	if err != nil {
		return err
	}

	err = e.chout.PublishWithContext(ctx,
		"",           // exchange
		confirmQueue, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        msg,
		})
	if err != nil {
		return err
	}
	return nil
}
