package handler

import (
	"ReplyKing/internal/pkg/response"
	"ReplyKing/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

func (s *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("account_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	days, _ := strconv.Atoi(c.Query("days"))

	metrics, err := s.analyticsSvc.GetAnalytics(c.Request.Context(), accountID, days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, metrics)
}
