package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/repo"
	"github.com/Thonkla/PlaceMate/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// bcrypt ignores input past this length.
const maxPasswordBytes = 72

// UserService registers accounts and checks passwords for the identity endpoints.
type UserService struct {
	repo repo.UserRepo
	cost int
}

func NewUserService(r repo.UserRepo) *UserService {
	return &UserService{repo: r, cost: bcrypt.DefaultCost}
}

// ValidateCredentials returns the user when the password matches.
// Unknown users and wrong passwords both give ErrInvalidCredentials.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return dom.User{}, ErrInvalidCredentials
	case err != nil:
		return dom.User{}, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	username, email = strings.TrimSpace(username), strings.ToLower(strings.TrimSpace(email))
	switch {
	case username == "" || password == "":
		return dom.User{}, invalid("username and password are required")
	case len(password) > maxPasswordBytes:
		return dom.User{}, invalid("password must be at most %d bytes", maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return dom.User{}, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.repo.Create(ctx, username, email, string(hash))
	if utils.IsPGUniqueViolation(err) {
		return dom.User{}, ErrUsernameTaken
	}
	return u, err
}
