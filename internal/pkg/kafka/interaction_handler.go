package kafka

import (
	"SocialPulse/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// interactionCountKeys 互动事件表到计数键前缀的映射
var interactionCountKeys = map[string]string{
	"likes":    consts.ContentLikeKey,
	"comments": consts.ContentCommentKey,
	"shares":   consts.ContentShareKey,
	"saves":    consts.ContentSaveKey,
}

// InteractionHandler 消费互动事件 CDC 流。
// likes/comments/shares/saves 四张表共用一个 topic，按表名分发。
type InteractionHandler struct{}

func NewInteractionHandler() *InteractionHandler {
	return &InteractionHandler{}
}

func (s *InteractionHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("interaction consumer setup")
	return nil
}

func (s *InteractionHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("interaction consumer cleanup")
	return nil
}

func (s *InteractionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-interaction consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-interaction process batch error", "err", err)
		return err
	}
	return nil
}

func (s *InteractionHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg)
	if err != nil {
		return err
	}

	countKey, ok := interactionCountKeys[canalMsg.Table]
	if !ok {
		// 不是互动事件表，跳过
		return nil
	}

	// 互动都是物理增删：INSERT 加计数，DELETE 减计数
	switch canalMsg.Type {
	case INSERT:
		return s.handleRows(ctx, canalMsg, countKey, true)
	case DELETE:
		return s.handleRows(ctx, canalMsg, countKey, false)
	default:
		return nil
	}
}

func (s *InteractionHandler) handleRows(ctx context.Context, msg *CanalMessage, countKey string, isIncrement bool) error {
	for _, row := range msg.Data {
		contentID := StrToUint64(row["content_id"])
		if contentID == 0 {
			log.WarnContext(ctx, "interaction row without content_id", "table", msg.Table)
			continue
		}

		ExecAction(ctx, ActionParams{
			TargetID:       contentID,
			CountKeyPrefix: countKey,
			DirtyKey:       consts.ContentDirtyKey,
			IsIncrement:    isIncrement,
		})
	}

	log.InfoContext(ctx, "interaction rows processed",
		"table", msg.Table, "type", msg.Type, "rows", len(msg.Data))
	return nil
}
