package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLogModel 管理后台操作日志文档
type AuditLogModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OperatorID uint64             `bson:"operator_id" json:"operatorId"`
	Action     string             `bson:"action" json:"action"` // create/update/delete/pin/moderate
	Resource   string             `bson:"resource" json:"resource"`
	ResourceID string             `bson:"resource_id" json:"resourceId"`
	Detail     string             `bson:"detail,omitempty" json:"detail,omitempty"`
	TraceID    string             `bson:"trace_id,omitempty" json:"traceId,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
