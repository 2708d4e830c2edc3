package usecases

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bookrack.backend/internal/domain/entities"
	domainerrors "bookrack.backend/internal/domain/errors"
	"bookrack.backend/internal/domain/repositories"
	"bookrack.backend/internal/infrastructure/email"
	"bookrack.backend/pkg/crypto"
	"bookrack.backend/pkg/jwt"
	"bookrack.backend/pkg/logger"
)

// UserUsecase handles registration, login and email confirmation
type UserUsecase struct {
	users   repositories.UserRepository
	tokens  *jwt.TokenService
	mailer  email.Mailer
	baseURL string
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(users repositories.UserRepository, tokens *jwt.TokenService, mailer email.Mailer, baseURL string) *UserUsecase {
	return &UserUsecase{
		users:   users,
		tokens:  tokens,
		mailer:  mailer,
		baseURL: baseURL,
	}
}

// Register creates an unverified account and dispatches the confirmation
// mail. The duplicate checks run before the insert; the unique constraints
// at the storage layer remain the backstop against concurrent registrations.
func (u *UserUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	if _, err := u.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.UnprocessableEntity("username already exists")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if _, err := u.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.UnprocessableEntity("email already exists")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.UnprocessableEntity("username or email already exists")
		}
		return nil, err
	}

	token, err := u.tokens.GenerateVerificationToken(user.Email)
	if err != nil {
		return nil, err
	}

	confirmLink := fmt.Sprintf("%s/api/v1/users/confirm/%s", u.baseURL, token)
	if err := u.mailer.SendVerification(user.Email, confirmLink); err != nil {
		// Delivery failure is operational, not a client error; the
		// account still exists and can be confirmed later.
		logger.Error(ctx, "failed to send verification email",
			zap.String("email", user.Email), zap.Error(err))
	}

	return user, nil
}

// Login resolves the identifier (email first, then username), requires a
// verified account, checks the password, and issues an access token.
func (u *UserUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, string, error) {
	var (
		user *entities.User
		err  error
	)
	switch {
	case input.Email != "":
		user, err = u.users.GetByEmail(ctx, input.Email)
	case input.Username != "":
		user, err = u.users.GetByUsername(ctx, input.Username)
	default:
		return nil, "", domainerrors.UnprocessableEntity("email or username is required")
	}
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, "", domainerrors.NotFound("user not found")
		}
		return nil, "", err
	}

	// Credentials are deliberately not checked for unverified accounts
	if !user.IsVerified {
		return nil, "", domainerrors.EmailNotVerified("email not verified, please confirm your email first")
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, "", domainerrors.Unauthorized("invalid credentials")
	}

	token, err := u.tokens.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ConfirmEmail validates a verification token and flips the account to
// verified, exactly once.
func (u *UserUsecase) ConfirmEmail(ctx context.Context, token string) (*entities.User, error) {
	address, err := u.tokens.ValidateVerificationToken(token)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid or expired verification token")
	}

	user, err := u.users.GetByEmail(ctx, address)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("no account matches this email")
		}
		return nil, err
	}

	if user.IsVerified {
		return nil, domainerrors.AlreadyVerified("email already verified")
	}

	if err := u.users.MarkVerified(ctx, user.ID); err != nil {
		return nil, err
	}

	user.IsVerified = true
	return user, nil
}
