package repository

import (
	"context"

	"AdsPull/internal/domain/models"
	domrepo "AdsPull/internal/domain/repository"
	pkgkafka "AdsPull/pkg/kafka"
)

// KafkaReportPublisher emits finished reports to a Kafka topic so
// downstream consumers (dashboards, alerting) see fresh figures without
// polling this service.
type KafkaReportPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaReportPublisher(producer *pkgkafka.Producer, topic string) domrepo.ReportPublisher {
	return &KafkaReportPublisher{producer: producer, topic: topic}
}

func (p *KafkaReportPublisher) Publish(ctx context.Context, key string, r *models.AggregationResult) error {
	return p.producer.Publish(ctx, p.topic, []byte(key), r)
}

func (p *KafkaReportPublisher) Close() error { return p.producer.Close() }
