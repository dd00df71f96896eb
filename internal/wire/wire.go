package wire

import (
	"ReplyKing/internal/api"
	"ReplyKing/internal/api/config"
	"ReplyKing/internal/api/handler"
	"ReplyKing/internal/job"
	"ReplyKing/internal/pkg/cron"
	"ReplyKing/internal/pkg/instagram"
	"ReplyKing/internal/pkg/llm"
	mongoPkg "ReplyKing/internal/pkg/mongo"
	"ReplyKing/internal/repository"
	"ReplyKing/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	accountRepo := repository.NewAccountRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	replyRepo := repository.NewReplyRepo(db)
	templateRepo := repository.NewTemplateRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)
	genLogRepo := mongoPkg.NewGenerationLogRepo(mongoDB)

	igClient := instagram.NewClient(cfg.Instagram)
	generator := llm.NewGenerator(genLogRepo)

	accountService := service.NewAccountService(accountRepo, igClient)
	commentService := service.NewCommentService(accountRepo, commentRepo, templateRepo, analyticsRepo, igClient, generator)
	replyService := service.NewReplyService(replyRepo, commentRepo, analyticsRepo)
	templateService := service.NewTemplateService(templateRepo, accountRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	handlers := &api.HandlersGroup{
		AccountHandler:   handler.NewAccountHandler(accountService),
		CommentHandler:   handler.NewCommentHandler(commentService),
		ReplyHandler:     handler.NewReplyHandler(replyService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		TemplateHandler:  handler.NewTemplateHandler(templateService),
	}

	router := api.SetupRouter(handlers)

	pollJob := job.NewCommentPollJob(accountService, commentService)
	cronMgr := cron.NewCronManager(pollJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
