package kafka

import (
	"WithTheLake/internal/api/config"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ViewProducer 浏览事件生产者
type ViewProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewViewProducer(cfg *config.Config) (*ViewProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newProducerConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}
	return &ViewProducer{
		producer: producer,
		topic:    cfg.KafkaViewConsumer.Topic,
	}, nil
}

// TrackPostView 投递浏览事件，按帖子 ID 分区保证同帖有序
func (p *ViewProducer) TrackPostView(postID uint64) {
	event := ViewEvent{
		PostID:   postID,
		ViewedAt: time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error("marshal view event error", "err", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(postID, 10)),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		// 浏览计数允许丢失，不影响主流程
		log.Error("send view event error", "postID", postID, "err", err)
	}
}

func (p *ViewProducer) Close() error {
	return p.producer.Close()
}
