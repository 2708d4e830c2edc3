package repositories

import (
	"context"

	"bookrack.backend/internal/domain/entities"
)

// BookRepository defines book data operations
type BookRepository interface {
	Create(ctx context.Context, book *entities.Book) error
	List(ctx context.Context) ([]*entities.Book, error)
	GetByID(ctx context.Context, id uint) (*entities.Book, error)
	Update(ctx context.Context, id uint, title string, year int) error
	Delete(ctx context.Context, id uint) error
}
