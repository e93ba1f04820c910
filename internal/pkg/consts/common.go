package consts

const (
	MimePrefixImage = "image"
	MimePrefixAudio = "audio"
)

// 社区板块
const (
	BoardTypeNotice = "notice"
	BoardTypeFree   = "free"
	BoardTypeEvent  = "event"
	BoardTypeReview = "review"
)

// 角色
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// SessionIDHeader 匿名情绪记录的会话标识请求头
const SessionIDHeader = "X-Session-ID"

// DefaultAvatarURL 第三方登录未返回头像时的兜底
const DefaultAvatarURL = "default_avatar.png"
