package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"bookrack.backend/internal/domain/entities"
	domainerrors "bookrack.backend/internal/domain/errors"
	"bookrack.backend/internal/domain/repositories"
	"bookrack.backend/internal/infrastructure/storage"
	"bookrack.backend/pkg/logger"
)

// AuthorUsecase handles author business logic
type AuthorUsecase struct {
	authors repositories.AuthorRepository
	store   *storage.AvatarStore
	baseURL string
}

// NewAuthorUsecase creates a new author usecase
func NewAuthorUsecase(authors repositories.AuthorRepository, store *storage.AvatarStore, baseURL string) *AuthorUsecase {
	return &AuthorUsecase{
		authors: authors,
		store:   store,
		baseURL: baseURL,
	}
}

// Create creates a new author. Both name fields are required.
func (u *AuthorUsecase) Create(ctx context.Context, input *entities.CreateAuthorInput) (*entities.Author, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, domainerrors.UnprocessableEntity("first_name and last_name are required")
	}

	author := &entities.Author{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Books:     []entities.Book{},
	}
	if err := u.authors.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// List lists all authors with their book summaries
func (u *AuthorUsecase) List(ctx context.Context) ([]*entities.Author, error) {
	return u.authors.List(ctx)
}

// Get gets an author by ID
func (u *AuthorUsecase) Get(ctx context.Context, id uint) (*entities.Author, error) {
	return u.authors.GetByID(ctx, id)
}

// Update replaces both name fields
func (u *AuthorUsecase) Update(ctx context.Context, id uint, input *entities.UpdateAuthorInput) (*entities.Author, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, domainerrors.UnprocessableEntity("first_name and last_name are required")
	}

	if err := u.authors.UpdateNames(ctx, id, input.FirstName, input.LastName); err != nil {
		return nil, err
	}
	return u.authors.GetByID(ctx, id)
}

// Patch changes only the supplied fields
func (u *AuthorUsecase) Patch(ctx context.Context, id uint, input *entities.PatchAuthorInput) (*entities.Author, error) {
	author, err := u.authors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		author.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		author.LastName = *input.LastName
	}
	if strings.TrimSpace(author.FirstName) == "" || strings.TrimSpace(author.LastName) == "" {
		return nil, domainerrors.UnprocessableEntity("first_name and last_name must not be empty")
	}

	if err := u.authors.UpdateNames(ctx, id, author.FirstName, author.LastName); err != nil {
		return nil, err
	}
	return author, nil
}

// Delete deletes an author and all owned books
func (u *AuthorUsecase) Delete(ctx context.Context, id uint) error {
	return u.authors.Delete(ctx, id)
}

// UpsertAvatar stores an uploaded image under a generated name, records its
// URL on the author, and removes the previously stored file so repeated
// uploads do not leak storage.
func (u *AuthorUsecase) UpsertAvatar(ctx context.Context, id uint, src io.Reader, originalName string) (*entities.Author, error) {
	author, err := u.authors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, err := u.store.Save(src, originalName)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedExtension) {
			return nil, domainerrors.UnprocessableEntity("avatar must be a png, jpg or jpeg file")
		}
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v1/authors/uploads/%s", u.baseURL, name)
	if err := u.authors.UpdateAvatar(ctx, id, null.StringFrom(url)); err != nil {
		return nil, err
	}

	if author.Avatar.Valid {
		old := path.Base(author.Avatar.String)
		if err := u.store.Remove(old); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn(ctx, "failed to remove previous avatar file",
				zap.String("file", old), zap.Error(err))
		}
	}

	author.Avatar = null.StringFrom(url)
	return author, nil
}

// DeleteAvatar removes the stored file and clears the reference. It reports
// whether there was an avatar to delete; a file already missing on disk is
// logged, not fatal.
func (u *AuthorUsecase) DeleteAvatar(ctx context.Context, id uint) (*entities.Author, bool, error) {
	author, err := u.authors.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if !author.Avatar.Valid {
		return author, false, nil
	}

	name := path.Base(author.Avatar.String)
	if err := u.store.Remove(name); err != nil {
		logger.Warn(ctx, "avatar file could not be removed",
			zap.String("file", name), zap.Error(err))
	}

	if err := u.authors.UpdateAvatar(ctx, id, null.String{}); err != nil {
		return nil, false, err
	}

	author.Avatar = null.String{}
	return author, true, nil
}

// AvatarPath resolves a stored filename to its on-disk path, or NotFound
func (u *AuthorUsecase) AvatarPath(name string) (string, error) {
	if !u.store.Exists(name) {
		return "", domainerrors.ErrNotFound
	}
	return u.store.Path(name), nil
}
