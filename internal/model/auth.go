package model

type LoginPayload struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (p *LoginPayload) Validate() error {
	return validate.Struct(p)
}

type LogoutPayload struct{}

func (p *LogoutPayload) Validate() error { return nil }
