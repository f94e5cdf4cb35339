package publisher

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marketbay/vendor-ledger-service/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

type KafkaConfig struct {
	Brokers    []string
	Username   string
	Password   string
	Mechanism  string
	TLSEnabled bool
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	transport := &kafka.Transport{}

	if cfg.Username != "" {
		switch cfg.Mechanism {
		case "SCRAM-SHA-256":
			mechanism, err := scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
			if err != nil {
				return nil, fmt.Errorf("scram mechanism: %w", err)
			}
			transport.SASL = mechanism
		case "SCRAM-SHA-512":
			mechanism, err := scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
			if err != nil {
				return nil, fmt.Errorf("scram mechanism: %w", err)
			}
			transport.SASL = mechanism
		default:
			transport.SASL = plain.Mechanism{Username: cfg.Username, Password: cfg.Password}
		}
	}

	if cfg.TLSEnabled {
		transport.TLS = &tls.Config{}
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:      kafka.TCP(cfg.Brokers...),
			Balancer:  &kafka.LeastBytes{},
			Transport: transport,
		},
	}, nil
}

func (k *KafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return k.writer.WriteMessages(ctx, km...)
}

func (k *KafkaPublisher) PublishOrderEvent(topic string, event OrderEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(topic, domain.Message{Key: []byte(event.OrderID), Value: v})
}

func (k *KafkaPublisher) PublishPaymentEvent(topic string, event PaymentEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(topic, domain.Message{Key: []byte(event.VendorID), Value: v})
}
