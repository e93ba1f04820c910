package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditLogRepo interface {
	Append(ctx context.Context, entry *AuditLogModel) error
	GetRecent(ctx context.Context, limit, offset int64) ([]*AuditLogModel, error)
	GetByResource(ctx context.Context, resource string, limit, offset int64) ([]*AuditLogModel, error)
}

type auditLogRepoImpl struct {
	col *mongo.Collection
}

func NewAuditLogRepo(db *mongo.Database) AuditLogRepo {
	return &auditLogRepoImpl{
		col: db.Collection("admin_audit_log"),
	}
}

// Append 追加一条操作日志
func (s *auditLogRepoImpl) Append(ctx context.Context, entry *AuditLogModel) error {
	_, err := s.col.InsertOne(ctx, entry)
	return err
}

// GetRecent 按时间倒序分页获取操作日志
func (s *auditLogRepoImpl) GetRecent(ctx context.Context, limit, offset int64) ([]*AuditLogModel, error) {
	return s.find(ctx, bson.M{}, limit, offset)
}

// GetByResource 按资源类型过滤
func (s *auditLogRepoImpl) GetByResource(ctx context.Context, resource string, limit, offset int64) ([]*AuditLogModel, error) {
	return s.find(ctx, bson.M{"resource": resource}, limit, offset)
}

func (s *auditLogRepoImpl) find(ctx context.Context, filter bson.M, limit, offset int64) ([]*AuditLogModel, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*AuditLogModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
