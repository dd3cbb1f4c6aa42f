package model

import "github.com/deppfellow/portfolio-backend/internal/validation"

type BlogFields struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Date       string `json:"date"`
	ReadTime   string `json:"readTime"`
	Category   string `json:"category"`
	MediumLink string `json:"mediumLink"`
}

type Blog struct {
	Base
	BlogFields
}

// ------------------------------------------------------------

type CreateBlogPayload struct {
	BlogFields
}

func (p *CreateBlogPayload) Validate() error { return nil }

func (p *CreateBlogPayload) Schema() (string, validation.Mode) {
	return "blog", validation.ModeCreate
}

type UpdateBlogPayload struct {
	IDPayload
	Title      *string `json:"title,omitempty"`
	Excerpt    *string `json:"excerpt,omitempty"`
	Date       *string `json:"date,omitempty"`
	ReadTime   *string `json:"readTime,omitempty"`
	Category   *string `json:"category,omitempty"`
	MediumLink *string `json:"mediumLink,omitempty"`
}

func (p *UpdateBlogPayload) Validate() error { return nil }

func (p *UpdateBlogPayload) Schema() (string, validation.Mode) {
	return "blog", validation.ModePartial
}

func (p *UpdateBlogPayload) IDParam() (string, string) {
	return "id", "blog"
}

type GetBlogPayload struct {
	IDPayload
}

func (p *GetBlogPayload) Validate() error { return nil }

func (p *GetBlogPayload) IDParam() (string, string) {
	return "id", "blog"
}
