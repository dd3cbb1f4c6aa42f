package model

import "github.com/deppfellow/portfolio-backend/internal/validation"

// OwnerFields is the content of the singleton owner document.
type OwnerFields struct {
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	MiniDescription string   `json:"miniDescription"`
	Description     string   `json:"description"`
	CurrentFocus    string   `json:"currentFocus"`
	Skills          []string `json:"skills"`
	ProfilePic      string   `json:"profilePic"`
	TweetIDs        []string `json:"tweetIds"`
	AboutReadme     string   `json:"aboutReadme"`
}

type Owner struct {
	Base
	OwnerFields
}

// About is the public projection of the owner served by GET /about.
type About struct {
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	MiniDescription string   `json:"miniDescription"`
	Description     string   `json:"description"`
	CurrentFocus    string   `json:"currentFocus"`
	Skills          []string `json:"skills"`
	ProfilePic      string   `json:"profilePic"`
	AboutReadme     string   `json:"aboutReadme"`
}

func (o *Owner) About() About {
	return About{
		Name:            o.Name,
		Role:            o.Role,
		MiniDescription: o.MiniDescription,
		Description:     o.Description,
		CurrentFocus:    o.CurrentFocus,
		Skills:          o.Skills,
		ProfilePic:      o.ProfilePic,
		AboutReadme:     o.AboutReadme,
	}
}

type TweetIDs struct {
	TweetIDs []string `json:"tweetIds"`
}

// ------------------------------------------------------------

type CreateOwnerPayload struct {
	OwnerFields
}

func (p *CreateOwnerPayload) Validate() error { return nil }

func (p *CreateOwnerPayload) Schema() (string, validation.Mode) {
	return "owner", validation.ModeCreate
}

// UpdateOwnerPayload is a partial owner document. Nil fields are left untouched.
type UpdateOwnerPayload struct {
	Name            *string  `json:"name,omitempty"`
	Role            *string  `json:"role,omitempty"`
	MiniDescription *string  `json:"miniDescription,omitempty"`
	Description     *string  `json:"description,omitempty"`
	CurrentFocus    *string  `json:"currentFocus,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ProfilePic      *string  `json:"profilePic,omitempty"`
	TweetIDs        []string `json:"tweetIds,omitempty"`
	AboutReadme     *string  `json:"aboutReadme,omitempty"`
}

func (p *UpdateOwnerPayload) Validate() error { return nil }

func (p *UpdateOwnerPayload) Schema() (string, validation.Mode) {
	return "owner", validation.ModePartial
}

type UpdateTweetIDsPayload struct {
	TweetIDs []string `json:"tweetIds"`
}

func (p *UpdateTweetIDsPayload) Validate() error { return nil }

func (p *UpdateTweetIDsPayload) Schema() (string, validation.Mode) {
	return "tweet_ids", validation.ModeCreate
}
