package pubsub

import (
	"context"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/sirupsen/logrus"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message []byte) error
	Close()
}

type kafkaPublisher struct {
	logger   *logrus.Logger
	producer *kafka.Producer
}

// PublisherFromConfluentKafkaProducer wraps a confluent producer behind the
// Publisher interface. Delivery is fire-and-forget; failures are logged on
// the producer's event channel.
func PublisherFromConfluentKafkaProducer(logger *logrus.Logger, producer *kafka.Producer) Publisher {
	p := &kafkaPublisher{
		logger:   logger,
		producer: producer,
	}

	go func() {
		for e := range producer.Events() {
			if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
				logger.WithError(m.TopicPartition.Error).Error("kafka message delivery failed")
			}
		}
	}()

	return p
}

// Publish implements Publisher.
func (p *kafkaPublisher) Publish(ctx context.Context, topic string, key string, message []byte) error {
	err := p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(key),
		Value: message,
	}, nil)
	if err != nil {
		p.logger.WithContext(ctx).WithError(err).Error("an error occurred while publishing message")
		return err
	}

	return nil
}

// Close implements Publisher.
func (p *kafkaPublisher) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
