package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"bookrack.backend/internal/domain/entities"
	domainerrors "bookrack.backend/internal/domain/errors"
	"bookrack.backend/internal/infrastructure/models"
)

// AuthorRepository implements author data operations
type AuthorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates a new author repository
func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// Create creates a new author. The created timestamp is assigned by the
// database layer and written back to the entity.
func (r *AuthorRepository) Create(ctx context.Context, author *entities.Author) error {
	m := &models.Author{
		FirstName: author.FirstName,
		LastName:  author.LastName,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	author.ID = m.ID
	author.Created = m.Created
	return nil
}

// List lists all authors with their books
func (r *AuthorRepository) List(ctx context.Context) ([]*entities.Author, error) {
	var authorModels []models.Author
	if err := r.db.WithContext(ctx).Preload("Books").Order("id ASC").Find(&authorModels).Error; err != nil {
		return nil, err
	}

	authors := make([]*entities.Author, 0, len(authorModels))
	for i := range authorModels {
		authors = append(authors, toAuthorEntity(&authorModels[i]))
	}
	return authors, nil
}

// GetByID gets an author by ID with its books
func (r *AuthorRepository) GetByID(ctx context.Context, id uint) (*entities.Author, error) {
	var m models.Author
	if err := r.db.WithContext(ctx).Preload("Books").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAuthorEntity(&m), nil
}

// UpdateNames updates the name fields of an author
func (r *AuthorRepository) UpdateNames(ctx context.Context, id uint, firstName, lastName string) error {
	result := r.db.WithContext(ctx).Model(&models.Author{}).Where("id = ?", id).Updates(map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateAvatar sets or clears the avatar reference
func (r *AuthorRepository) UpdateAvatar(ctx context.Context, id uint, avatar null.String) error {
	result := r.db.WithContext(ctx).Model(&models.Author{}).Where("id = ?", id).Update("avatar", avatar)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete deletes an author and cascades to its books. The explicit book
// delete inside the transaction makes the cascade independent of whether
// the driver enforces the FK constraint; the constraint stays as backstop.
func (r *AuthorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&models.Book{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Author{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}
		return nil
	})
}

func toAuthorEntity(m *models.Author) *entities.Author {
	books := make([]entities.Book, 0, len(m.Books))
	for _, b := range m.Books {
		books = append(books, entities.Book{
			ID:       b.ID,
			Title:    b.Title,
			Year:     b.Year,
			AuthorID: b.AuthorID,
		})
	}

	return &entities.Author{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Created:   m.Created,
		Avatar:    m.Avatar,
		Books:     books,
	}
}
