package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"

	"bookrack.backend/internal/domain/entities"
)

// Mock AuthorRepository
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) Create(ctx context.Context, author *entities.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockAuthorRepository) List(ctx context.Context) ([]*entities.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Author), args.Error(1)
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id uint) (*entities.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Author), args.Error(1)
}

func (m *MockAuthorRepository) UpdateNames(ctx context.Context, id uint, firstName, lastName string) error {
	args := m.Called(ctx, id, firstName, lastName)
	return args.Error(0)
}

func (m *MockAuthorRepository) UpdateAvatar(ctx context.Context, id uint, avatar null.String) error {
	args := m.Called(ctx, id, avatar)
	return args.Error(0)
}

func (m *MockAuthorRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book *entities.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) List(ctx context.Context) ([]*entities.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Book), args.Error(1)
}

func (m *MockBookRepository) GetByID(ctx context.Context, id uint) (*entities.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Book), args.Error(1)
}

func (m *MockBookRepository) Update(ctx context.Context, id uint, title string, year int) error {
	args := m.Called(ctx, id, title, year)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerification(to, confirmLink string) error {
	args := m.Called(to, confirmLink)
	return args.Error(0)
}
