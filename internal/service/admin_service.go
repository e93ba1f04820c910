package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/pkg/mongo"
	"WithTheLake/internal/repository"
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type AdminService interface {
	// GetDashboard 并发统计各资源总量
	GetDashboard(ctx context.Context) (*dto.AdminDashboardDTO, error)
	// GetAuditLogs 按时间倒序查询后台操作日志，resource 为空时不过滤
	GetAuditLogs(ctx context.Context, resource string, page, pageSize int) ([]*dto.AuditLogDTO, error)
}

type adminServiceImpl struct {
	userRepo    repository.UserRepo
	recordRepo  repository.EmotionRecordRepo
	postRepo    repository.PostRepo
	newsRepo    repository.NewsRepo
	productRepo repository.ProductRepo
	trackRepo   repository.AudioTrackRepo
	auditRepo   mongo.AuditLogRepo
}

func NewAdminService(
	userRepo repository.UserRepo,
	recordRepo repository.EmotionRecordRepo,
	postRepo repository.PostRepo,
	newsRepo repository.NewsRepo,
	productRepo repository.ProductRepo,
	trackRepo repository.AudioTrackRepo,
	auditRepo mongo.AuditLogRepo,
) AdminService {
	return &adminServiceImpl{
		userRepo:    userRepo,
		recordRepo:  recordRepo,
		postRepo:    postRepo,
		newsRepo:    newsRepo,
		productRepo: productRepo,
		trackRepo:   trackRepo,
		auditRepo:   auditRepo,
	}
}

func (s *adminServiceImpl) GetDashboard(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	result := &dto.AdminDashboardDTO{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		result.TotalUsers, err = s.userRepo.CountUsers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		result.TotalRecords, err = s.recordRepo.CountRecords(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		result.TotalPosts, err = s.postRepo.CountPosts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		result.TotalNews, err = s.newsRepo.CountNews(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		result.TotalProducts, err = s.productRepo.CountProducts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		result.TotalTracks, err = s.trackRepo.CountTracks(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *adminServiceImpl) GetAuditLogs(ctx context.Context, resource string, page, pageSize int) ([]*dto.AuditLogDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	limit := int64(pageSize)
	offset := int64((page - 1) * pageSize)

	var (
		logs []*mongo.AuditLogModel
		err  error
	)
	if resource == "" {
		logs, err = s.auditRepo.GetRecent(ctx, limit, offset)
	} else {
		logs, err = s.auditRepo.GetByResource(ctx, resource, limit, offset)
	}
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AuditLogDTO, 0, len(logs))
	for _, entry := range logs {
		result = append(result, &dto.AuditLogDTO{
			ID:         entry.ID.Hex(),
			OperatorID: entry.OperatorID,
			Action:     entry.Action,
			Resource:   entry.Resource,
			ResourceID: entry.ResourceID,
			Detail:     entry.Detail,
			TraceID:    entry.TraceID,
			CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}
