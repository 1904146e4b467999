package kafka

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/kafka-go"
)

// Событие завершенного заказа из чекаута
type OrderEvent struct {
	AccountID   string  `json:"accountId"`
	OrderID     string  `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	OrderTotal  float64 `json:"orderTotal"`
}

type OrderReader struct {
	reader *kafka.Reader
}

func NewOrderReader(topic string) (reader *OrderReader, err error) {
	// config
	kafkaurl := os.Getenv("LOYALTY_KAFKA_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env LOYALTY_KAFKA_URL is not set")
	}
	kafkaport := os.Getenv("LOYALTY_KAFKA_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env LOYALTY_KAFKA_PORT is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{kafkaurl + ":" + kafkaport},
		Topic:   topic,
		GroupID: "orders_loyalty",
	}
	return &OrderReader{kafka.NewReader(kafkaconfig)}, nil
}

func (k *OrderReader) GetNewMessage(ctx context.Context) (orderJson string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *OrderReader) CloseReader() {
	k.reader.Close()
}
