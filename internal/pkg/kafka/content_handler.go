package kafka

import (
	"SocialPulse/internal/pkg/consts"
	"SocialPulse/internal/pkg/redis"
	"SocialPulse/internal/pkg/util"
	"SocialPulse/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
)

// ContentHandler 消费 content_posts 表的 CDC 流：
// 新内容解析正文话题并建立关联，任何变更都触发指标与画像重算
type ContentHandler struct {
	hashtagRepo repository.HashtagRepo
}

func NewContentHandler(hashtagRepo repository.HashtagRepo) *ContentHandler {
	return &ContentHandler{hashtagRepo: hashtagRepo}
}

func (s *ContentHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("content consumer setup")
	return nil
}

func (s *ContentHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("content consumer cleanup")
	return nil
}

func (s *ContentHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-content consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-content process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ContentHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg)
	if err != nil {
		return err
	}
	if canalMsg.Table != "content_posts" {
		return nil
	}

	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case UPDATE:
		return s.handleUpdate(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

// handleInsert 处理新发布内容：话题建联 + 标脏
func (s *ContentHandler) handleInsert(ctx context.Context, msg *CanalMessage) error {
	for _, row := range msg.Data {
		contentID := StrToUint64(row["id"])
		userID := StrToUint64(row["user_id"])
		if contentID == 0 {
			continue
		}

		if err := s.linkCaptionTags(ctx, contentID, StrField(row, "caption")); err != nil {
			return err
		}

		markDirty(ctx, contentID, userID)
		log.InfoContext(ctx, "content post inserted", "contentID", contentID, "userID", userID)
	}
	return nil
}

// handleUpdate 处理内容修改：正文变了就重建话题关联，软删除等同删除
func (s *ContentHandler) handleUpdate(ctx context.Context, msg *CanalMessage) error {
	for i, row := range msg.Data {
		contentID := StrToUint64(row["id"])
		userID := StrToUint64(row["user_id"])
		if contentID == 0 {
			continue
		}

		captionChanged := false
		if i < len(msg.Old) {
			_, captionChanged = msg.Old[i]["caption"]
		}
		if captionChanged {
			if err := s.linkCaptionTags(ctx, contentID, StrField(row, "caption")); err != nil {
				return err
			}
		}

		markDirty(ctx, contentID, userID)
	}
	return nil
}

// handleDelete 处理内容删除：作者的画像与指标需要重建
func (s *ContentHandler) handleDelete(ctx context.Context, msg *CanalMessage) error {
	for _, row := range msg.Data {
		contentID := StrToUint64(row["id"])
		userID := StrToUint64(row["user_id"])
		if contentID == 0 {
			continue
		}

		markDirty(ctx, contentID, userID)
		log.InfoContext(ctx, "content post deleted", "contentID", contentID, "userID", userID)
	}
	return nil
}

// linkCaptionTags 解析正文话题标签并建立内容-话题关联
func (s *ContentHandler) linkCaptionTags(ctx context.Context, contentID uint64, caption string) error {
	tagNames := util.ExtractTags(caption)
	if len(tagNames) == 0 {
		return nil
	}

	tags, err := s.hashtagRepo.GetOrCreateTags(ctx, tagNames)
	if err != nil {
		return err
	}

	tagIDs := make([]uint64, 0, len(tags))
	now := time.Now()
	for _, tag := range tags {
		tagIDs = append(tagIDs, tag.ID)
		_ = s.hashtagRepo.TouchLastUsed(ctx, tag.ID, now)
	}

	return s.hashtagRepo.LinkContent(ctx, contentID, tagIDs)
}

// markDirty 内容与作者一并标脏，由定时任务顺延重算
func markDirty(ctx context.Context, contentID, userID uint64) {
	if err := redis.SAddValue(ctx, consts.ContentDirtyKey, strconv.FormatUint(contentID, 10)); err != nil {
		log.ErrorContext(ctx, "mark content dirty error", "cid", contentID, "err", err)
	}
	if userID != 0 {
		if err := redis.SAddValue(ctx, consts.UserProfileDirtyKey, strconv.FormatUint(userID, 10)); err != nil {
			log.ErrorContext(ctx, "mark user profile dirty error", "uid", userID, "err", err)
		}
	}
}
