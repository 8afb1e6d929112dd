package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/events"
)

// KafkaProducer 领域事件生产者。
// - 事件发布是尽力而为：发送失败只记日志，不影响主流程的成功返回。
type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
	topics appConfig.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例。
func NewKafkaProducer(cfg appConfig.KafkaConfig, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// Close 关闭底层 writer，进程退出前调用。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// sendEvent 序列化事件并写入指定主题。
func (p *KafkaProducer) sendEvent(ctx context.Context, topic string, eventType string, key string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("事件序列化失败", zap.String("topic", topic), zap.Error(err))
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		p.logger.Error("Kafka 消息发送失败", zap.String("topic", topic), zap.Error(err))
		return err
	}
	p.logger.Debug("Kafka 消息发送成功", zap.String("topic", topic), zap.String("eventType", eventType))
	return nil
}

// postEventData 从帖子实体提取事件快照。
func postEventData(post *entities.Post) events.PostEventData {
	return events.PostEventData{
		PostID:     post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
		Status:     post.Status,
	}
}

// SendPostCreatedEvent 发布帖子创建事件。
func (p *KafkaProducer) SendPostCreatedEvent(ctx context.Context, post *entities.Post) error {
	event := events.PostCreatedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Post:      postEventData(post),
	}
	return p.sendEvent(ctx, p.topics.PostCreated, events.EventTypePostCreated, post.ID, event)
}

// SendPostStatusChangedEvent 发布审核状态变更事件。
func (p *KafkaProducer) SendPostStatusChangedEvent(ctx context.Context, post *entities.Post, oldStatus enums.PostStatus, operator string, remarks string) error {
	event := events.PostStatusChangedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Post:      postEventData(post),
		OldStatus: oldStatus,
		Operator:  operator,
		Remarks:   remarks,
	}
	return p.sendEvent(ctx, p.topics.PostStatusChanged, events.EventTypePostStatusChanged, post.ID, event)
}

// SendPostDeletedEvent 发布帖子删除事件。
func (p *KafkaProducer) SendPostDeletedEvent(ctx context.Context, postID string, authorID string) error {
	event := events.PostDeletedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		PostID:    postID,
		AuthorID:  authorID,
	}
	return p.sendEvent(ctx, p.topics.PostDeleted, events.EventTypePostDeleted, postID, event)
}
