package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Author represents an author entity. Created is server-assigned and
// immutable; Avatar is null until an upload sets it.
type Author struct {
	ID        uint        `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Created   time.Time   `json:"created"`
	Avatar    null.String `json:"avatar"`
	Books     []Book      `json:"books"`
}

// CreateAuthorInput represents input for creating an author
type CreateAuthorInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// UpdateAuthorInput represents input for a full replace of the name fields
type UpdateAuthorInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// PatchAuthorInput represents a partial update; only supplied fields change
type PatchAuthorInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}
