package dto

// CreateTemplateDTO 新建回复模板
type CreateTemplateDTO struct {
	Category string `json:"category" binding:"required" validate:"max=50"`
	Template string `json:"template" binding:"required" validate:"max=500"`
}

// CreateTemplateResultDTO 新建结果
type CreateTemplateResultDTO struct {
	TemplateID uint64 `json:"template_id"`
}
