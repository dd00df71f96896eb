package handler

import (
	"ReplyKing/internal/api/dto"
	"ReplyKing/internal/pkg/response"
	"ReplyKing/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// ProcessComments 手动触发一次该账号的评论拉取与草稿生成
func (s *CommentHandler) ProcessComments(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("account_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	newCount, err := s.commentSvc.ProcessNewComments(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ProcessResultDTO{NewComments: newCount})
}

func (s *CommentHandler) GetComments(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("account_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	comments, err := s.commentSvc.GetComments(c.Request.Context(), accountID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comments)
}
