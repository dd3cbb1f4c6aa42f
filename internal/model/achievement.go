package model

import "github.com/deppfellow/portfolio-backend/internal/validation"

// MaxAchievementImages bounds Achievement.Images.
const MaxAchievementImages = 2

type AchievementFields struct {
	CompanyLogo       string   `json:"companyLogo"`
	Title             string   `json:"title"`
	TimeLine          string   `json:"timeLine"`
	DescriptionTitle  string   `json:"descriptionTitle"`
	DescriptionPoints []string `json:"descriptionPoints"`
	Images            []string `json:"images"`
}

type Achievement struct {
	Base
	AchievementFields
}

// ------------------------------------------------------------

type CreateAchievementPayload struct {
	AchievementFields
}

func (p *CreateAchievementPayload) Validate() error { return nil }

func (p *CreateAchievementPayload) Schema() (string, validation.Mode) {
	return "achievement", validation.ModeCreate
}

type UpdateAchievementPayload struct {
	IDPayload
	CompanyLogo       *string  `json:"companyLogo,omitempty"`
	Title             *string  `json:"title,omitempty"`
	TimeLine          *string  `json:"timeLine,omitempty"`
	DescriptionTitle  *string  `json:"descriptionTitle,omitempty"`
	DescriptionPoints []string `json:"descriptionPoints,omitempty"`
	Images            []string `json:"images,omitempty"`
}

func (p *UpdateAchievementPayload) Validate() error { return nil }

func (p *UpdateAchievementPayload) Schema() (string, validation.Mode) {
	return "achievement", validation.ModePartial
}

func (p *UpdateAchievementPayload) IDParam() (string, string) {
	return "id", "achievement"
}

type GetAchievementPayload struct {
	IDPayload
}

func (p *GetAchievementPayload) Validate() error { return nil }

func (p *GetAchievementPayload) IDParam() (string, string) {
	return "id", "achievement"
}
