package job

import (
	"WithTheLake/internal/pkg/consts"
	"WithTheLake/internal/pkg/logger"
	"WithTheLake/internal/pkg/redis"
	"WithTheLake/internal/pkg/util"
	"WithTheLake/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/google/uuid"
)

// PostViewJob 将 Redis 中累积的浏览量增量刷回 MySQL
type PostViewJob struct {
	postRepo repository.PostRepo
}

func NewPostViewJob(postRepo repository.PostRepo) *PostViewJob {
	return &PostViewJob{
		postRepo: postRepo,
	}
}

func (s *PostViewJob) Run() {
	traceID := "job-view-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.PostViewDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.PostViewDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get view dirty set error", "err", err)
		return
	}

	postIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert view set to int slice error", "err", err)
		return
	}

	log.InfoContext(ctx, "start syncing post view counts", "count", len(postIDs))

	successCount := 0
	for _, pid := range postIDs {
		deltaKey := consts.PostViewKey + strconv.FormatUint(pid, 10)

		delta, err := redis.GetInt64(ctx, deltaKey)
		if err != nil {
			log.ErrorContext(ctx, "get view delta error", "pid", pid, "err", err)
			continue
		}
		if delta == 0 {
			continue
		}

		if err = s.postRepo.IncrViewCount(ctx, pid, delta); err != nil {
			log.ErrorContext(ctx, "sync view count to mysql error", "pid", pid, "err", err)
			continue
		}

		if err = redis.DeleteKey(ctx, deltaKey); err != nil {
			log.ErrorContext(ctx, "delete view delta key error", "pid", pid, "err", err)
		}
		successCount++
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete view processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync post view counts success",
		"total_count", len(postIDs),
		"success_count", successCount)
}
