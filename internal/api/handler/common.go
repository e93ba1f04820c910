package handler

import (
	"WithTheLake/internal/model"
	"WithTheLake/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// recordOwner 情绪记录归属：登录用户优先，匿名时回退到会话头。
// 两者皆无时返回零值 Owner，由 service 侧给出 LOGIN_REQUIRED。
func recordOwner(c *gin.Context) model.Owner {
	if userID := c.GetUint64("user_id"); userID != 0 {
		return model.OwnedBy(userID)
	}
	if sessionID := c.GetHeader(consts.SessionIDHeader); sessionID != "" {
		return model.AnonymousOwner(sessionID)
	}
	return model.Owner{}
}

func isAdmin(c *gin.Context) bool {
	for _, role := range c.GetStringSlice("roles") {
		if role == consts.RoleAdmin {
			return true
		}
	}
	return false
}
