package api

import "ReplyKing/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AccountHandler   *handler.AccountHandler
	CommentHandler   *handler.CommentHandler
	ReplyHandler     *handler.ReplyHandler
	AnalyticsHandler *handler.AnalyticsHandler
	TemplateHandler  *handler.TemplateHandler
}
