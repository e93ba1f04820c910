package model

import "errors"

var ErrOwnerUnset = errors.New("record owner is unset")

// Owner 情绪记录的归属：登录用户或匿名会话，二者必居其一。
// 通过构造函数保证 "恰好一个被填充" 的不变式，外部无法构造出两者皆空的值再写库。
type Owner struct {
	userID    uint64
	sessionID string
}

// OwnedBy 登录用户归属
func OwnedBy(userID uint64) Owner {
	return Owner{userID: userID}
}

// AnonymousOwner 匿名会话归属
func AnonymousOwner(sessionID string) Owner {
	return Owner{sessionID: sessionID}
}

// IsOwned 是否登录用户归属
func (o Owner) IsOwned() bool {
	return o.userID != 0
}

// IsValid 恰好一方被填充
func (o Owner) IsValid() bool {
	return (o.userID != 0) != (o.sessionID != "")
}

// UserID 登录归属时返回用户ID
func (o Owner) UserID() (uint64, bool) {
	return o.userID, o.userID != 0
}

// SessionID 匿名归属时返回会话ID
func (o Owner) SessionID() (string, bool) {
	return o.sessionID, o.userID == 0 && o.sessionID != ""
}

// Columns 转换为存储层的两个可空列
func (o Owner) Columns() (*uint64, *string, error) {
	if !o.IsValid() {
		return nil, nil, ErrOwnerUnset
	}
	if o.userID != 0 {
		id := o.userID
		return &id, nil, nil
	}
	sid := o.sessionID
	return nil, &sid, nil
}
