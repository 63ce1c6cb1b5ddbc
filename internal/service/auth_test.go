package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/models"
	"github.com/earlgeraldesparcia/IT342-G6-Esparcia-Lab1/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	testSecret = "this-is-a-test-secret-with-32-bytes!"
	testExpiry = 24 * time.Hour
)

// =============================================================================
// Mock UserRepository
// =============================================================================

type mockUserRepository struct {
	existsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	existsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	findByUsernameFunc   func(ctx context.Context, username string) (*models.User, error)
	findByIDFunc         func(ctx context.Context, id int64) (*models.User, error)
	createFunc           func(ctx context.Context, user *models.User) error
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFunc != nil {
		return m.existsByUsernameFunc(ctx, username)
	}
	return false, errors.New("not implemented")
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFunc != nil {
		return m.existsByEmailFunc(ctx, email)
	}
	return false, errors.New("not implemented")
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestAuthService(t *testing.T) (*authService, *mockUserRepository) {
	t.Helper()

	jwtService := NewJWTService(testSecret, testExpiry)
	mockRepo := &mockUserRepository{}

	service := NewAuthService(mockRepo, jwtService).(*authService)
	return service, mockRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	return string(hash)
}

func testRegisterInput() RegisterInput {
	return RegisterInput{
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Smith",
	}
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewAuthService(t *testing.T) {
	jwtService := NewJWTService(testSecret, testExpiry)
	mockRepo := &mockUserRepository{}

	service := NewAuthService(mockRepo, jwtService)

	if service == nil {
		t.Error("NewAuthService() should return non-nil service")
	}
}

// =============================================================================
// Register Tests
// =============================================================================

func TestRegister_Success(t *testing.T) {
	service, mockRepo := setupTestAuthService(t)

	var created *models.User
	mockRepo.existsByUsernameFunc = func(ctx context.Context, username string) (bool, error) {
		return false, nil
	}
	mockRepo.existsByEmailFunc = func(ctx context.Context, email string) (bool, error) {
		return false, nil
	}
	mockRepo.createFunc = func(ctx context.Context, user *models.User) error {
		user.ID = 1
		created = user
		return nil
	}

	user, err := service.Register(context.Background(), testRegisterInput())

	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.ID != 1 {
		t.Errorf("Register() user ID = %d, want 1", user.ID)
	}

	if user.Username != "alice" || user.Email != "a@x.com" {
		t.Errorf("Register() user = %+v, want username alice, email a@x.com", user)
	}

	if created == nil {
		t.Fatal("Register() should persist the user")
	}

	if created.PasswordHash == "secret1" {
		t.Error("Register() must not store the plaintext password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")); err != nil {
		t.Error("Register() stored hash should verify against the original password")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	service, mockRepo := setupTestAuthService(t)

	emailChecked := false
	mockRepo.existsByUsernameFunc = func(ctx context.Context, username string) (bool, error) {
		return true, nil
	}
	mockRepo.existsByEmailFunc = func(ctx context.Context, email string) (bool, error) {
		emailChecked = true
		return false, nil
	}
	mockRepo.createFunc = func(ctx context.Context, user *models.User) error {
		t.Error("Register() must not persist anything on a duplicate username")
		return nil
	}

	_, err := service.Register(context.Background(), testRegisterInput())

	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Register() error = %v, want %v", err, ErrDuplicateUsername)
	}

	if emailChecked {
		t.Error("Register() should short-circuit before the email check")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, mockRepo := setupTestAuthService(t)

	mockRepo.existsByUsernameFunc = func(ctx context.Context, username string) (bool, error) {
		return false, nil
	}
	mockRepo.existsByEmailFunc = func(ctx context.Context, email string) (bool, error) {
		return true, nil
	}
	mockRepo.createFunc = func(ctx context.Context, user *models.User) error {
		t.Error("Register() must not persist anything on a duplicate email")
		return nil
	}

	_, err := service.Register(context.Background(), testRegisterInput())

	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Register() error = %v, want %v", err, ErrDuplicateEmail)
	}
}

func TestRegister_DuplicateRace(t *testing.T) {
	// The pre-checks pass but the insert loses against a concurrent
	// registration; the constraint violation must still map to the right
	// duplicate error.
	tests := []struct {
		name          string
		usernameTaken bool
		want          error
	}{
		{"username collided", true, ErrDuplicateUsername},
		{"email collided", false, ErrDuplicateEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := setupTestAuthService(t)

			precheck := true
			mockRepo.existsByUsernameFunc = func(ctx context.Context, username string) (bool, error) {
				if precheck {
					return false, nil
				}
				return tt.usernameTaken, nil
			}
			mockRepo.existsByEmailFunc = func(ctx context.Context, email string) (bool, error) {
				return false, nil
			}
			mockRepo.createFunc = func(ctx context.Context, user *models.User) error {
				precheck = false
				return repository.ErrDuplicate
			}

			_, err := service.Register(context.Background(), testRegisterInput())

			if !errors.Is(err, tt.want) {
				t.Errorf("Register() error = %v, want %v", err, tt.want)
			}
		})
	}
}

// =============================================================================
// Login Tests
// =============================================================================

func TestLogin_Success(t *testing.T) {
	service, mockRepo := setupTestAuthService(t)

	passwordHash := hashPassword(t, "secret1")
	mockRepo.findByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
		return &models.User{
			ID:           1,
			Username:     "alice",
			Email:        "a@x.com",
			PasswordHash: passwordHash,
		}, nil
	}

	result, err := service.Login(context.Background(), "alice", "secret1")

	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if result.Token == "" {
		t.Error("Login() should return a token")
	}

	if result.Type != "Bearer" {
		t.Errorf("Login() type = %q, want %q", result.Type, "Bearer")
	}

	if result.UserID != 1 || result.Username != "alice" || result.Email != "a@x.com" {
		t.Errorf("Login() response = %+v, want userId 1, username alice, email a@x.com", result)
	}

	// The token must verify and carry the authenticated identity.
	claims, err := service.jwtService.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 1 || claims.Username != "alice" {
		t.Errorf("token claims = %+v, want userId 1, username alice", claims)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	service, mockRepo := setupTestAuthService(t)

	mockRepo.findByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := service.Login(context.Background(), "nonexistent", "password")

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	service, mockRepo := setupTestAuthService(t)

	passwordHash := hashPassword(t, "correctpassword")
	mockRepo.findByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
		return &models.User{
			ID:           1,
			Username:     "alice",
			PasswordHash: passwordHash,
		}, nil
	}

	_, err := service.Login(context.Background(), "alice", "wrongpassword")

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestLogin_SameErrorForBothFailures(t *testing.T) {
	// Unknown username and wrong password must be indistinguishable.
	service, mockRepo := setupTestAuthService(t)

	passwordHash := hashPassword(t, "correctpassword")
	mockRepo.findByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
		if username == "alice" {
			return &models.User{ID: 1, Username: "alice", PasswordHash: passwordHash}, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	_, errUnknown := service.Login(context.Background(), "nobody", "whatever")
	_, errWrong := service.Login(context.Background(), "alice", "wrongpassword")

	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Errorf("Login() errors = %v / %v, both must be %v", errUnknown, errWrong, ErrInvalidCredentials)
	}

	if errUnknown.Error() != errWrong.Error() {
		t.Errorf("Login() error messages differ: %q vs %q", errUnknown, errWrong)
	}
}
