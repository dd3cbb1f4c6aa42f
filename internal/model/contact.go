package model

import (
	"regexp"
	"strings"

	"github.com/deppfellow/portfolio-backend/internal/validation"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (p *ContactPayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if !emailShape.MatchString(strings.TrimSpace(p.Email)) {
		return validation.CustomValidationErrors{
			{Field: "email", Message: "must be a valid email address"},
		}
	}
	return nil
}
