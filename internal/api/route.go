package api

import (
	"ReplyKing/internal/api/middleware"
	"ReplyKing/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		accountGroup := apiGroup.Group("/accounts")
		{
			accountGroup.POST("/connect", group.AccountHandler.ConnectAccount)
			accountGroup.GET("", group.AccountHandler.GetAccounts)

			accountGroup.POST("/:account_id/process", group.CommentHandler.ProcessComments)
			accountGroup.GET("/:account_id/comments", group.CommentHandler.GetComments)
			accountGroup.GET("/:account_id/pending-replies", group.ReplyHandler.GetPendingReplies)
			accountGroup.GET("/:account_id/analytics", group.AnalyticsHandler.GetAnalytics)

			accountGroup.GET("/:account_id/templates", group.TemplateHandler.GetTemplates)
			accountGroup.POST("/:account_id/templates", group.TemplateHandler.CreateTemplate)
		}

		replyGroup := apiGroup.Group("/replies")
		{
			replyGroup.POST("/:reply_id/approve", group.ReplyHandler.ApproveReply)
		}
	}

	return r
}
