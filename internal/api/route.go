package api

import (
	"WithTheLake/internal/api/middleware"
	"WithTheLake/internal/pkg/consts"
	"WithTheLake/internal/pkg/logger"
	"WithTheLake/internal/pkg/mongo"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, auditRepo mongo.AuditLogRepo) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/robots.txt", group.SeoHandler.Robots)
	r.GET("/sitemap.xml", group.SeoHandler.Sitemap)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// 情绪记录：登录用户与匿名会话共用入口
		emotionGroup := apiGroup.Group("/emotions")
		emotionGroup.Use(middleware.AuthOptionalMiddleware())
		{
			emotionGroup.POST("", group.EmotionHandler.SubmitRecord)
			emotionGroup.GET("", group.EmotionHandler.GetRecords)
			emotionGroup.GET("/summary", group.EmotionHandler.GetSummary)
		}

		reportGroup := apiGroup.Group("/reports")
		reportGroup.Use(middleware.AuthMiddleware())
		{
			reportGroup.POST("", group.ReportHandler.GenerateReport)
			reportGroup.GET("", group.ReportHandler.GetReports)
			reportGroup.GET("/:week_key", group.ReportHandler.GetReport)
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/search", group.PostHandler.SearchPosts)
				authOptGroup.GET("/board/:board_type", group.PostHandler.GetPostsByBoard)
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("/post/:post_id", group.CommentHandler.GetComments)

			authGroup := commentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/post/:post_id", group.CommentHandler.CreateComment)
				authGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		newsGroup := apiGroup.Group("/news")
		{
			newsGroup.GET("", group.NewsHandler.GetNewsList)
			newsGroup.GET("/:id", group.NewsHandler.GetNews)
		}

		productGroup := apiGroup.Group("/products")
		{
			productGroup.GET("", group.ProductHandler.GetProductList)
			productGroup.GET("/:id", group.ProductHandler.GetProduct)
		}

		audioGroup := apiGroup.Group("/audio")
		{
			audioGroup.GET("/tracks", group.AudioHandler.GetTrackList)
			audioGroup.GET("/tracks/:id", group.AudioHandler.GetTrack)

			// 播放器会话由 X-Session-ID 标识，匿名可用
			audioGroup.POST("/player/command", group.AudioHandler.ExecuteCommand)
			audioGroup.GET("/player/state", group.AudioHandler.GetPlayerSnapshot)
			audioGroup.GET("/player/ws", group.WsHandler.Connect)
		}

		userGroup := apiGroup.Group("/user")
		{
			userGroup.GET("/login/kakao/callback", group.UserHandler.KakaoCallback)
			userGroup.POST("/login/admin", group.UserHandler.AdminLogin)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
			}
		}

		// 外部调度器触发的清理入口，production 下校验 Bearer Token
		apiGroup.GET("/cleanup", middleware.CronTokenMiddleware(), group.CleanupHandler.Cleanup)

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
		{
			adminGroup.GET("/dashboard", group.AdminHandler.GetDashboard)
			adminGroup.GET("/audit-logs", group.AdminHandler.GetAuditLogs)
			adminGroup.GET("/link-preview", group.NewsHandler.PreviewLink)
			adminGroup.POST("/media/upload", group.MediaHandler.Upload)

			newsAdmin := adminGroup.Group("/news")
			newsAdmin.Use(middleware.AdminAuditMiddleware(auditRepo, "news"))
			{
				newsAdmin.GET("", group.NewsHandler.GetNewsListAdmin)
				newsAdmin.GET("/:id", group.NewsHandler.GetNewsAdmin)
				newsAdmin.POST("", group.NewsHandler.CreateNews)
				newsAdmin.PUT("/:id", group.NewsHandler.UpdateNews)
				newsAdmin.DELETE("/:id", group.NewsHandler.DeleteNews)
			}

			productAdmin := adminGroup.Group("/products")
			productAdmin.Use(middleware.AdminAuditMiddleware(auditRepo, "product"))
			{
				productAdmin.GET("", group.ProductHandler.GetProductListAdmin)
				productAdmin.POST("", group.ProductHandler.CreateProduct)
				productAdmin.PUT("/:id", group.ProductHandler.UpdateProduct)
				productAdmin.DELETE("/:id", group.ProductHandler.DeleteProduct)
			}

			trackAdmin := adminGroup.Group("/tracks")
			trackAdmin.Use(middleware.AdminAuditMiddleware(auditRepo, "audio_track"))
			{
				trackAdmin.GET("", group.AudioHandler.GetTrackListAdmin)
				trackAdmin.POST("", group.AudioHandler.CreateTrack)
				trackAdmin.PUT("/:id", group.AudioHandler.UpdateTrack)
				trackAdmin.DELETE("/:id", group.AudioHandler.DeleteTrack)
			}

			postAdmin := adminGroup.Group("/posts")
			postAdmin.Use(middleware.AdminAuditMiddleware(auditRepo, "post"))
			{
				postAdmin.PUT("/:id/pin", group.PostHandler.PinPost)
			}
		}
	}

	return r
}
