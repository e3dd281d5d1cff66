package kafka

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/tsel-ticketmaster/tm-catalog/config"
)

// NewProducer builds a confluent Kafka producer from configuration.
func NewProducer() *kafka.Producer {
	c := config.Get()

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": c.Kafka.BootstrapServers,
		"acks":              "1",
	})
	if err != nil {
		panic(err)
	}

	return producer
}
