// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"notice_board/internal/feature/auth/domain/entity"
	"notice_board/internal/platform/validation"
)

const (
	// minPasswordLength defines the minimum number of characters in a password.
	minPasswordLength = 8
	// maxPasswordBytes is the longest input bcrypt accepts.
	maxPasswordBytes = 72

	minNameLength = 4
	maxNameLength = 12

	// dummyPasswordHash is compared against when the email is unknown so that
	// Login costs one bcrypt comparison on every path.
	dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// JWTGenerator defines the interface for JWT token generation.
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// RegisterInput carries the fields accepted by Register.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// authUsecase implements authentication business logic.
type authUsecase struct {
	users        UserRepository
	hasher       PasswordHasher
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		hasher:       hasher,
		jwtGenerator: jwtGenerator,
	}
}

// normalizeEmail trims and lower-cases email so that uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegistration checks every registration field and returns the cleaned input.
func validateRegistration(in RegisterInput) (RegisterInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	switch n := utf8.RuneCountInString(in.Name); {
	case n == 0:
		return in, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case n < minNameLength || n > maxNameLength:
		return in, fmt.Errorf("%w: name must be %d-%d characters", ErrInvalidInput, minNameLength, maxNameLength)
	}
	if !validation.IsEmail(in.Email) {
		return in, fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	if in.Phone != "" && !validation.IsPhone(in.Phone) {
		return in, fmt.Errorf("%w: phone must be 10 digits", ErrInvalidInput)
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return in, fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, minPasswordLength)
	}
	if len(in.Password) > maxPasswordBytes {
		return in, fmt.Errorf("%w: password must be at most %d bytes long", ErrInvalidInput, maxPasswordBytes)
	}
	return in, nil
}

// Register validates the input, hashes the password and stores a new user.
// Duplicate emails are detected by the store's unique index, not by a prior lookup.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	in, err := validateRegistration(in)
	if err != nil {
		return nil, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login authenticates the user and returns a signed JWT on success.
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	// Always verify to keep timing independent of whether the user exists.
	passwordHash := dummyPasswordHash
	if user != nil {
		passwordHash = user.PasswordHash
	}
	ok := u.hasher.Verify(password, passwordHash)

	if user == nil || !ok {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// Profile returns the user behind an authenticated request.
func (u *authUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return user, nil
}
