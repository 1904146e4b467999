package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	model "github.com/pharmakart/loyalty/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const notifyQueue = "notifications"

// Публикация уведомлений, доставка best effort
type NotifyPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewNotifyPublisher() (pub *NotifyPublisher, err error) {
	conn, err := dial()
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		notifyQueue, // name
		false,       // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &NotifyPublisher{conn, ch}, nil
}

func (n *NotifyPublisher) Send(ctx context.Context, msg model.Notification) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	err = n.ch.PublishWithContext(ctx,
		"",          // exchange
		notifyQueue, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	if err != nil {
		return err
	}
	return nil
}

func (n *NotifyPublisher) Close() {
	n.ch.Close()
	n.conn.Close()
}

func dial() (*amqp.Connection, error) {
	// config
	rabbiturl := os.Getenv("RABBIT_URL")
	if rabbiturl == "" {
		return nil, fmt.Errorf("env RABBIT_URL is not set")
	}
	rabbitport := os.Getenv("RABBIT_PORT")
	if rabbitport == "" {
		return nil, fmt.Errorf("env RABBIT_PORT is not set")
	}
	rabbituser := os.Getenv("RABBIT_USER")
	if rabbituser == "" {
		return nil, fmt.Errorf("env RABBIT_USER is not set")
	}
	rabbitpass := os.Getenv("RABBIT_PASSWORD")
	if rabbitpass == "" {
		return nil, fmt.Errorf("env RABBIT_PASSWORD is not set")
	}

	return amqp.Dial("amqp://" + rabbituser + ":" + rabbitpass + "@" + rabbiturl + ":" + rabbitport + "/loyalty")
}
