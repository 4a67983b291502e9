package kafka

import (
	"SocialPulse/internal/api/config"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	interactionConsumer sarama.ConsumerGroup
	interactionHandler  sarama.ConsumerGroupHandler

	contentConsumer sarama.ConsumerGroup
	contentHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	hashtagRepo repository.HashtagRepo,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	interactionConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaInteractionEvents.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	interactionHandler := NewInteractionHandler()

	contentConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaContentEvents.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	contentHandler := NewContentHandler(hashtagRepo)

	return &ConsumerManager{
		interactionConsumer: interactionConsumer,
		interactionHandler:  interactionHandler,
		contentConsumer:     contentConsumer,
		contentHandler:      contentHandler,
	}, nil
}

// Start 启动所有消费者，阻塞到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaInteractionEvents.Topic
		log.Info("Interaction consumer started", "topic", topic)
		for {
			if err := m.interactionConsumer.Consume(ctx, []string{topic}, m.interactionHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		topic := cfg.KafkaContentEvents.Topic
		log.Info("Content consumer started", "topic", topic)
		for {
			if err := m.contentConsumer.Consume(ctx, []string{topic}, m.contentHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.interactionConsumer.Close(); err != nil {
		log.Error("Failed to close interaction consumer", "err", err)
	}
	if err := m.contentConsumer.Close(); err != nil {
		log.Error("Failed to close content consumer", "err", err)
	}

	return nil
}
