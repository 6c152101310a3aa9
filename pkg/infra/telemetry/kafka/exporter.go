package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/domain/telemetry"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

const (
	ExporterName = "kafka"

	flushTimeoutMs     = 5000
	createTopicTimeout = 30 * time.Second
)

type Config struct {
	Host              string `mapstructure:"host"`
	Port              string `mapstructure:"port"`
	Topic             string `mapstructure:"topic"`
	CreateTopic       bool   `mapstructure:"create_topic"`
	NumPartitions     int    `mapstructure:"num_partitions"`
	ReplicationFactor int    `mapstructure:"replication_factor"`
}

// Exporter produces one message per usage record, keyed by record id.
type Exporter struct {
	cfg      Config
	producer *kafka.Producer
	logger   *logrus.Logger
}

func NewKafkaExporter(logger *logrus.Logger) *Exporter {
	return &Exporter{logger: logger}
}

func (p *Exporter) Name() string {
	return ExporterName
}

func decodeConfig(settings map[string]interface{}) (Config, error) {
	var conf Config
	if err := mapstructure.WeakDecode(settings, &conf); err != nil {
		return conf, fmt.Errorf("invalid kafka config: %w", err)
	}
	return conf, nil
}

func (p *Exporter) ValidateConfig(settings map[string]interface{}) error {
	conf, err := decodeConfig(settings)
	if err != nil {
		return err
	}
	if conf.Host == "" {
		return errors.New("kafka host is required")
	}
	if conf.Port == "" {
		return errors.New("kafka port is required")
	}
	if conf.Topic == "" {
		return errors.New("kafka topic is required")
	}
	return nil
}

func (p *Exporter) WithSettings(settings map[string]interface{}) (telemetry.Exporter, error) {
	conf, err := decodeConfig(settings)
	if err != nil {
		return nil, err
	}
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": fmt.Sprintf("%s:%s", conf.Host, conf.Port),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	exporter := &Exporter{
		cfg:      conf,
		producer: producer,
		logger:   p.logger,
	}
	if conf.CreateTopic {
		if err := exporter.createTopicIfNotExists(); err != nil {
			producer.Close()
			return nil, err
		}
	}
	return exporter, nil
}

func (p *Exporter) Handle(ctx context.Context, record *moderation.UsageRecord) error {
	if p.producer == nil {
		return errors.New("kafka producer is not initialized")
	}
	if record == nil {
		return errors.New("usage record is nil")
	}
	data, err := json.Marshal(telemetry.NewUsageRecordEvent(record))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.cfg.Topic, Partition: kafka.PartitionAny},
		Key:            []byte(record.ID.String()),
		Value:          data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(telemetry.UsageRecordCreated)},
			{Key: "category", Value: []byte(record.Category)},
		},
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event: %v", e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("delivery failed: %w", m.TopicPartition.Error)
		}
		return nil
	}
}

func (p *Exporter) Close() {
	if p.producer != nil {
		p.producer.Flush(flushTimeoutMs)
		p.producer.Close()
	}
}

func (p *Exporter) createTopicIfNotExists() error {
	adminClient, err := kafka.NewAdminClientFromProducer(p.producer)
	if err != nil {
		return fmt.Errorf("failed to create kafka admin client: %w", err)
	}
	defer adminClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), createTopicTimeout)
	defer cancel()

	partitions := p.cfg.NumPartitions
	if partitions <= 0 {
		partitions = 3
	}
	replication := p.cfg.ReplicationFactor
	if replication <= 0 {
		replication = 1
	}
	results, err := adminClient.CreateTopics(ctx, []kafka.TopicSpecification{{
		Topic:             p.cfg.Topic,
		NumPartitions:     partitions,
		ReplicationFactor: replication,
	}})
	if err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	for _, result := range results {
		code := result.Error.Code()
		if code != kafka.ErrNoError && code != kafka.ErrTopicAlreadyExists {
			return fmt.Errorf("failed to create topic %s: %w", result.Topic, result.Error)
		}
	}
	if p.logger != nil {
		p.logger.WithField("topic", p.cfg.Topic).Info("kafka topic ready")
	}
	return nil
}
