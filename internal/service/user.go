package service

import (
	"context"
	"errors"
	"time"

	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/models"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUnauthenticated = errors.New("no authenticated identity")
	ErrUserNotFound    = errors.New("user not found")
)

// Identity is the verified identity attached to a request by the auth
// middleware. It is passed explicitly rather than read from ambient state.
type Identity struct {
	UserID   int64
	Username string
}

// UserResponse is the public projection of a User. It never carries the
// password hash.
type UserResponse struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse projects a stored User to its public representation.
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

// UserService resolves the calling user's identity into a response payload.
type UserService interface {
	GetCurrentUser(ctx context.Context, identity *Identity) (*UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetCurrentUser looks up the user behind an already-verified identity.
// The account may have been removed after the token was issued, in which
// case ErrUserNotFound is returned.
func (s *userService) GetCurrentUser(ctx context.Context, identity *Identity) (*UserResponse, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByUsername(ctx, identity.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return NewUserResponse(user), nil
}
