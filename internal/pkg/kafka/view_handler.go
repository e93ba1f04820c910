package kafka

import (
	"WithTheLake/internal/pkg/consts"
	"WithTheLake/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ViewsHandler 浏览事件消费：Redis 累加 + 标脏，落库由定时任务批量完成
type ViewsHandler struct {
}

func NewViewsHandler() *ViewsHandler {
	return &ViewsHandler{}
}

func (s *ViewsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post view consumer setup")
	return nil
}

func (s *ViewsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post view consumer cleanup")
	return nil
}

func (s *ViewsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-view consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-view process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ViewsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event ViewEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// 消息体损坏没有重试价值，记日志后跳过
		log.Error("unmarshal view event error", "err", err)
		return nil
	}
	if event.PostID == 0 {
		return nil
	}

	postID := strconv.FormatUint(event.PostID, 10)
	if _, err := redis.IncrBy(ctx, consts.PostViewKey+postID, 1); err != nil {
		return errors.Wrap(err, "incr post view count")
	}
	if err := redis.SAdd(ctx, consts.PostViewDirtyKey, postID); err != nil {
		return errors.Wrap(err, "mark post view dirty")
	}
	return nil
}
