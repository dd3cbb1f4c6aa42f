package model

import "github.com/deppfellow/portfolio-backend/internal/validation"

type ProjectTag struct {
	Topic string `json:"topic"`
}

type DevelopmentSummary struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type LanguageUsage struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

type ProjectFields struct {
	Name               string               `json:"name"`
	NavLink            string               `json:"navLink"`
	Description        string               `json:"description"`
	ReadmeContent      string               `json:"readmeContent"`
	GitHubLink         string               `json:"gitHubLink"`
	LiveLink           string               `json:"liveLink"`
	Images             []string             `json:"images"`
	Tags               []ProjectTag         `json:"tags"`
	DevelopmentSummary []DevelopmentSummary `json:"developmentSummary"`
	LanguagesUsed      []LanguageUsage      `json:"languagesUsed"`
}

type Project struct {
	Base
	ProjectFields
}

// Stack lists the tag topics, used by the card projections.
func (p *Project) Stack() []string {
	stack := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		stack = append(stack, tag.Topic)
	}
	return stack
}

// ProjectListItem is one row of GET /projectsList.
type ProjectListItem struct {
	Title       string   `json:"title"`
	NavLink     string   `json:"navLink"`
	Description string   `json:"description"`
	Stack       []string `json:"stack"`
	LiveLink    string   `json:"liveLink"`
	GitHubLink  string   `json:"gitHubLink"`
	Image       string   `json:"image"`
	Languages   []string `json:"languages"`
}

// ------------------------------------------------------------

type CreateProjectPayload struct {
	ProjectFields
}

func (p *CreateProjectPayload) Validate() error { return nil }

func (p *CreateProjectPayload) Schema() (string, validation.Mode) {
	return "project", validation.ModeCreate
}

type UpdateProjectPayload struct {
	IDPayload
	Name               *string              `json:"name,omitempty"`
	NavLink            *string              `json:"navLink,omitempty"`
	Description        *string              `json:"description,omitempty"`
	ReadmeContent      *string              `json:"readmeContent,omitempty"`
	GitHubLink         *string              `json:"gitHubLink,omitempty"`
	LiveLink           *string              `json:"liveLink,omitempty"`
	Images             []string             `json:"images,omitempty"`
	Tags               []ProjectTag         `json:"tags,omitempty"`
	DevelopmentSummary []DevelopmentSummary `json:"developmentSummary,omitempty"`
	LanguagesUsed      []LanguageUsage      `json:"languagesUsed,omitempty"`
}

func (p *UpdateProjectPayload) Validate() error { return nil }

func (p *UpdateProjectPayload) Schema() (string, validation.Mode) {
	return "project", validation.ModePartial
}

type GetProjectBySlugPayload struct {
	NavLink string `param:"navLink" validate:"required"`
}

func (p *GetProjectBySlugPayload) Validate() error {
	return validate.Struct(p)
}

func (p *UpdateProjectPayload) IDParam() (string, string) {
	return "id", "project"
}
