package handler

import (
	"ReplyKing/internal/api/dto"
	"ReplyKing/internal/pkg/response"
	"ReplyKing/internal/pkg/util"
	"ReplyKing/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	templateSvc service.TemplateService
}

func NewTemplateHandler(templateSvc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		templateSvc: templateSvc,
	}
}

func (s *TemplateHandler) CreateTemplate(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("account_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CreateTemplateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	templateID, err := s.templateSvc.CreateTemplate(c.Request.Context(), accountID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.CreateTemplateResultDTO{TemplateID: templateID})
}

func (s *TemplateHandler) GetTemplates(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("account_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	templates, err := s.templateSvc.GetTemplates(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, templates)
}
