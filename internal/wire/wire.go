package wire

import (
	"WithTheLake/internal/api"
	"WithTheLake/internal/api/config"
	"WithTheLake/internal/api/handler"
	"WithTheLake/internal/job"
	"WithTheLake/internal/pkg/cron"
	"WithTheLake/internal/pkg/es"
	"WithTheLake/internal/pkg/kafka"
	"WithTheLake/internal/pkg/linkpreview"
	"WithTheLake/internal/pkg/llm"
	"WithTheLake/internal/pkg/mongo"
	"WithTheLake/internal/pkg/oauth"
	"WithTheLake/internal/pkg/player"
	"WithTheLake/internal/pkg/sharecard"
	"WithTheLake/internal/repository"
	"WithTheLake/internal/service"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	ViewProducer *kafka.ViewProducer
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodriver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	recordRepo := repository.NewEmotionRecordRepo(db)
	reportRepo := repository.NewEmotionReportRepo(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	productRepo := repository.NewProductRepository(db)
	trackRepo := repository.NewAudioTrackRepository(db)
	auditRepo := mongo.NewAuditLogRepo(mongoDB)
	postESRepo := es.NewPostRepo(es.Client)

	viewProducer, err := kafka.NewViewProducer(cfg)
	if err != nil {
		return nil, err
	}

	kakaoClient := oauth.NewKakaoClient(cfg.OAuth.Kakao)
	previewFetcher := linkpreview.NewFetcher()
	insightClient := llm.NewWeeklyInsightClient()
	cardRenderer := sharecard.NewRenderer(cfg.ShareCard)
	playerStore := player.NewStore()

	emotionService := service.NewEmotionService(recordRepo)
	reportService := service.NewReportService(recordRepo, reportRepo, userRepo, insightClient, cardRenderer)
	postService := service.NewPostService(postRepo, postESRepo, viewProducer)
	commentService := service.NewCommentService(commentRepo, postRepo)
	cleanupService := service.NewCleanupService(commentRepo, postRepo)
	newsService := service.NewNewsService(newsRepo, previewFetcher)
	productService := service.NewProductService(productRepo)
	audioService := service.NewAudioService(trackRepo, playerStore)
	userService := service.NewUserService(userRepo, kakaoClient)
	adminService := service.NewAdminService(userRepo, recordRepo, postRepo, newsRepo, productRepo, trackRepo, auditRepo)

	handlers := &api.HandlersGroup{
		EmotionHandler: handler.NewEmotionHandler(emotionService),
		ReportHandler:  handler.NewReportHandler(reportService),
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService),
		NewsHandler:    handler.NewNewsHandler(newsService),
		ProductHandler: handler.NewProductHandler(productService),
		AudioHandler:   handler.NewAudioHandler(audioService),
		WsHandler:      handler.NewWsHandler(audioService),
		MediaHandler:   handler.NewMediaHandler(),
		UserHandler:    handler.NewUserHandler(userService),
		AdminHandler:   handler.NewAdminHandler(adminService),
		CleanupHandler: handler.NewCleanupHandler(cleanupService),
		SeoHandler:     handler.NewSeoHandler(newsService),
	}

	router := api.SetupRouter(handlers, auditRepo)

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewPostViewJob(postRepo),
		job.NewCommunityPurgeJob(cleanupService),
		job.NewWeeklyReportJob(recordRepo, reportService),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		ViewProducer: viewProducer,
		CronMgr:      cronMgr,
	}, nil
}
