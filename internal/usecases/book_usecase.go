package usecases

import (
	"context"
	"errors"
	"strings"

	"bookrack.backend/internal/domain/entities"
	domainerrors "bookrack.backend/internal/domain/errors"
	"bookrack.backend/internal/domain/repositories"
)

// BookUsecase handles book business logic
type BookUsecase struct {
	books repositories.BookRepository
}

// NewBookUsecase creates a new book usecase
func NewBookUsecase(books repositories.BookRepository) *BookUsecase {
	return &BookUsecase{books: books}
}

// Create creates a new book. Title, year and author_id are required; an
// unknown author surfaces as a validation error via the FK constraint.
func (u *BookUsecase) Create(ctx context.Context, input *entities.CreateBookInput) (*entities.Book, error) {
	if strings.TrimSpace(input.Title) == "" || input.Year == 0 || input.AuthorID == 0 {
		return nil, domainerrors.UnprocessableEntity("title, year and author_id are required")
	}

	book := &entities.Book{
		Title:    input.Title,
		Year:     input.Year,
		AuthorID: input.AuthorID,
	}
	if err := u.books.Create(ctx, book); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) {
			return nil, domainerrors.UnprocessableEntity("author_id does not reference an existing author")
		}
		return nil, err
	}
	return book, nil
}

// List lists all books
func (u *BookUsecase) List(ctx context.Context) ([]*entities.Book, error) {
	return u.books.List(ctx)
}

// Get gets a book by ID
func (u *BookUsecase) Get(ctx context.Context, id uint) (*entities.Book, error) {
	return u.books.GetByID(ctx, id)
}

// Update replaces title and year
func (u *BookUsecase) Update(ctx context.Context, id uint, input *entities.UpdateBookInput) (*entities.Book, error) {
	if strings.TrimSpace(input.Title) == "" || input.Year == 0 {
		return nil, domainerrors.UnprocessableEntity("title and year are required")
	}

	if err := u.books.Update(ctx, id, input.Title, input.Year); err != nil {
		return nil, err
	}
	return u.books.GetByID(ctx, id)
}

// Patch changes only the supplied fields
func (u *BookUsecase) Patch(ctx context.Context, id uint, input *entities.PatchBookInput) (*entities.Book, error) {
	book, err := u.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Year != nil {
		book.Year = *input.Year
	}
	if strings.TrimSpace(book.Title) == "" || book.Year == 0 {
		return nil, domainerrors.UnprocessableEntity("title and year must not be empty")
	}

	if err := u.books.Update(ctx, id, book.Title, book.Year); err != nil {
		return nil, err
	}
	return book, nil
}

// Delete deletes a book
func (u *BookUsecase) Delete(ctx context.Context, id uint) error {
	return u.books.Delete(ctx, id)
}
