package model

import "github.com/deppfellow/portfolio-backend/internal/validation"

type ExperienceFields struct {
	CompanyLogo      string   `json:"companyLogo"`
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	TimeLine         string   `json:"timeLine"`
	IsCurrent        bool     `json:"isCurrent"`
	KeyAchievements  []string `json:"keyAchievements"`
	TechnologiesUsed []string `json:"technologiesUsed"`
}

type Experience struct {
	Base
	ExperienceFields
}

// ------------------------------------------------------------

type CreateExperiencePayload struct {
	ExperienceFields
}

func (p *CreateExperiencePayload) Validate() error { return nil }

func (p *CreateExperiencePayload) Schema() (string, validation.Mode) {
	return "experience", validation.ModeCreate
}

// UpdateExperiencePayload keeps IsCurrent as a pointer so an explicit false
// is written while an absent field is not.
type UpdateExperiencePayload struct {
	IDPayload
	CompanyLogo      *string  `json:"companyLogo,omitempty"`
	Title            *string  `json:"title,omitempty"`
	Location         *string  `json:"location,omitempty"`
	TimeLine         *string  `json:"timeLine,omitempty"`
	IsCurrent        *bool    `json:"isCurrent,omitempty"`
	KeyAchievements  []string `json:"keyAchievements,omitempty"`
	TechnologiesUsed []string `json:"technologiesUsed,omitempty"`
}

func (p *UpdateExperiencePayload) Validate() error { return nil }

func (p *UpdateExperiencePayload) Schema() (string, validation.Mode) {
	return "experience", validation.ModePartial
}

func (p *UpdateExperiencePayload) IDParam() (string, string) {
	return "id", "experience"
}

type GetExperiencePayload struct {
	IDPayload
}

func (p *GetExperiencePayload) Validate() error { return nil }

func (p *GetExperiencePayload) IDParam() (string, string) {
	return "id", "experience"
}
