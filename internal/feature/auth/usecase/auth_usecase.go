package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"trackapp/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer issues signed bearer tokens for authenticated users.
type TokenIssuer interface {
	// IssueToken creates a signed token carrying the given user ID.
	IssueToken(userID uint) (string, error)
}

// dummyHash is a bcrypt hash compared against when the signin email is
// unknown, so both failure paths spend the same time in bcrypt.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Signup registers a new user and returns a signed token for the fresh account.
// The plaintext password is replaced with a bcrypt hash before it reaches the
// repository; hashing happens here and nowhere else.
func (u *authUsecase) Signup(ctx context.Context, email, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.tokens.IssueToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Signin authenticates a user and returns a signed token on success.
// Unknown email and wrong password are reported as distinct errors
// (ErrUserNotFound vs ErrInvalidCredentials) because the API maps them to
// different status codes, but both paths run a bcrypt comparison so the
// distinction is not observable through timing.
func (u *authUsecase) Signin(ctx context.Context, email, password string) (string, error) {
	user, findErr := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if findErr == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if findErr != nil {
		if errors.Is(findErr, ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", findErr
	}
	if compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// VerifyPassword reports whether the candidate plaintext matches the user's
// stored hash. bcrypt re-derives the hash from the salt embedded in the
// stored value and compares in constant time.
func (u *authUsecase) VerifyPassword(user *entity.User, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(candidate)) == nil
}
