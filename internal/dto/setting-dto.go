package dto

type UpdateSettingRequest struct {
	Value       string  `json:"value" validate:"required"`
	Description *string `json:"description,omitempty"`
}

type UpdateTemplateRequest struct {
	Template string `json:"template" validate:"required"`
}

type TemplateResponse struct {
	Template  string `json:"template"`
	IsDefault bool   `json:"is_default"`
}
