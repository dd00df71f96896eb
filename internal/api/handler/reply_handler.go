package handler

import (
	"ReplyKing/internal/pkg/response"
	"ReplyKing/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReplyHandler struct {
	replySvc service.ReplyService
}

func NewReplyHandler(replySvc service.ReplyService) *ReplyHandler {
	return &ReplyHandler{
		replySvc: replySvc,
	}
}

func (s *ReplyHandler) GetPendingReplies(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("account_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	replies, err := s.replySvc.GetPendingReplies(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, replies)
}

// ApproveReply 审核通过待发布的回复草稿
func (s *ReplyHandler) ApproveReply(c *gin.Context) {
	replyID, err := strconv.ParseUint(c.Param("reply_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.replySvc.ApproveReply(c.Request.Context(), replyID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
