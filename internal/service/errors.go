package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrAccessTokenRequired = errors.New("缺少访问令牌")
	ErrAccountNotFound     = errors.New("账号不存在或已停用")
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrReplyNotFound       = errors.New("回复不存在")
	ErrReplyAlreadyPosted  = errors.New("回复已发布")
	ErrTemplateInvalid     = errors.New("模板内容不合法")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrAccessTokenRequired: BadRequest,
	ErrAccountNotFound:     NotFound,
	ErrCommentNotFound:     NotFound,
	ErrReplyNotFound:       NotFound,
	ErrReplyAlreadyPosted:  BadRequest,
	ErrTemplateInvalid:     BadRequest,
	UnExpectedError:        InternalServerError,
}
