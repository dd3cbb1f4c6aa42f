// Package model holds the portfolio documents and the request payloads
// bound from the HTTP layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the fields every stored document exposes next to its own content.
// They live in table columns, not inside the JSONB document.
type Base struct {
	ID        uuid.UUID `json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetMeta fills the column-backed fields after a document is scanned.
func (b *Base) SetMeta(id uuid.UUID, createdAt, updatedAt time.Time) {
	b.ID = id
	b.CreatedAt = createdAt
	b.UpdatedAt = updatedAt
}

// Document is implemented by every stored entity.
type Document interface {
	SetMeta(id uuid.UUID, createdAt, updatedAt time.Time)
}

// MediaKind names the resource owning a media field, used in log lines.
type MediaKind string

const (
	KindOwner       MediaKind = "owner"
	KindProject     MediaKind = "project"
	KindBlog        MediaKind = "blog"
	KindExperience  MediaKind = "experience"
	KindAchievement MediaKind = "achievement"
)

// IDPayload is embedded by update payloads addressed by /:id.
type IDPayload struct {
	ID string `param:"id" json:"-"`
}

// UUID returns the parsed path id. BindAndValidate has already checked it.
func (p IDPayload) UUID() uuid.UUID {
	id, _ := uuid.Parse(p.ID)
	return id
}
