package api

import "WithTheLake/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	EmotionHandler *handler.EmotionHandler
	ReportHandler  *handler.ReportHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	NewsHandler    *handler.NewsHandler
	ProductHandler *handler.ProductHandler
	AudioHandler   *handler.AudioHandler
	WsHandler      *handler.WsHandler
	MediaHandler   *handler.MediaHandler
	UserHandler    *handler.UserHandler
	AdminHandler   *handler.AdminHandler
	CleanupHandler *handler.CleanupHandler
	SeoHandler     *handler.SeoHandler
}
