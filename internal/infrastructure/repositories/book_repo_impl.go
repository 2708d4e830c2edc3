package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bookrack.backend/internal/domain/entities"
	domainerrors "bookrack.backend/internal/domain/errors"
	"bookrack.backend/internal/infrastructure/models"
)

// BookRepository implements book data operations
type BookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Create creates a new book. A foreign key violation on author_id surfaces
// as ErrInvalidInput rather than a raw driver error.
func (r *BookRepository) Create(ctx context.Context, book *entities.Book) error {
	m := &models.Book{
		Title:    book.Title,
		Year:     book.Year,
		AuthorID: book.AuthorID,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domainerrors.ErrInvalidInput
		}
		return err
	}

	book.ID = m.ID
	return nil
}

// List lists all books
func (r *BookRepository) List(ctx context.Context) ([]*entities.Book, error) {
	var bookModels []models.Book
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&bookModels).Error; err != nil {
		return nil, err
	}

	books := make([]*entities.Book, 0, len(bookModels))
	for i := range bookModels {
		books = append(books, toBookEntity(&bookModels[i]))
	}
	return books, nil
}

// GetByID gets a book by ID
func (r *BookRepository) GetByID(ctx context.Context, id uint) (*entities.Book, error) {
	var m models.Book
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toBookEntity(&m), nil
}

// Update updates title and year. The author reference never changes.
func (r *BookRepository) Update(ctx context.Context, id uint, title string, year int) error {
	result := r.db.WithContext(ctx).Model(&models.Book{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title": title,
		"year":  year,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete deletes a book
func (r *BookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Book{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toBookEntity(m *models.Book) *entities.Book {
	return &entities.Book{
		ID:       m.ID,
		Title:    m.Title,
		Year:     m.Year,
		AuthorID: m.AuthorID,
	}
}
