package handler

import (
	"ReplyKing/internal/api/dto"
	"ReplyKing/internal/pkg/response"
	"ReplyKing/internal/pkg/util"
	"ReplyKing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountSvc: accountSvc,
	}
}

// ConnectAccount 用访问令牌接入账号，已存在则刷新令牌
func (s *AccountHandler) ConnectAccount(c *gin.Context) {
	var req dto.ConnectAccountDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	result, err := s.accountSvc.ConnectAccount(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

func (s *AccountHandler) GetAccounts(c *gin.Context) {
	accounts, err := s.accountSvc.GetAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]*dto.AccountDTO, 0, len(accounts))
	for _, account := range accounts {
		item := &dto.AccountDTO{}
		if err := copier.Copy(item, account); err != nil {
			response.Error(c, err)
			return
		}
		items = append(items, item)
	}

	response.Success(c, items)
}
