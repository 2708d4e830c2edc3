package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"

	"bookrack.backend/internal/domain/entities"
)

// AuthorRepository defines author data operations
type AuthorRepository interface {
	Create(ctx context.Context, author *entities.Author) error
	List(ctx context.Context) ([]*entities.Author, error)
	GetByID(ctx context.Context, id uint) (*entities.Author, error)
	UpdateNames(ctx context.Context, id uint, firstName, lastName string) error
	UpdateAvatar(ctx context.Context, id uint, avatar null.String) error
	Delete(ctx context.Context, id uint) error
}
