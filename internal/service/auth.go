package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/models"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyHash is compared against on the unknown-username login path so a
// failed login costs the same whether or not the username exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("credential-placeholder"), bcrypt.DefaultCost)

// RegisterInput carries the fields required to create a new user account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginResponse is returned to a successfully authenticated caller.
type LoginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthService handles user registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a bcrypt-hashed password. The username
// check runs before the email check and the first failure short-circuits,
// so a duplicate registration never writes anything.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	taken, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateUsername
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race with a concurrent registration after the
			// pre-checks passed. Re-resolve which field collided.
			return nil, s.resolveDuplicate(ctx, input.Username)
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) resolveDuplicate(ctx context.Context, username string) error {
	taken, err := s.userRepo.ExistsByUsername(ctx, username)
	if err == nil && taken {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}

// Login verifies the credentials and issues a bearer token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token:    token,
		Type:     "Bearer",
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
