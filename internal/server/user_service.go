package server

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-platform/internal/config"
	"github.com/jonathan/job-platform/internal/types"
)

// UserService provides in-memory user registration and login. Accounts live
// only for the process lifetime; persistence and auth hardening are out of
// scope for this service.
type UserService struct {
	mu             sync.RWMutex
	byUsername     map[string]*storedUser
	passwordConfig *config.PasswordConfig
}

type storedUser struct {
	user         types.User
	passwordHash string
}

// NewUserService creates a UserService with the given password configuration.
func NewUserService(passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		byUsername:     make(map[string]*storedUser),
		passwordConfig: passwordConfig,
	}
}

// Register creates a new user account.
func (s *UserService) Register(req *types.RegisterRequest) (*types.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[username]; exists {
		return nil, &ErrUsernameTaken{Username: req.Username}
	}
	for _, stored := range s.byUsername {
		if strings.EqualFold(stored.user.Email, email) {
			return nil, &ErrEmailTaken{Email: req.Email}
		}
	}

	hash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := types.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
	}
	s.byUsername[username] = &storedUser{user: user, passwordHash: hash}

	return &user, nil
}

// Login authenticates a user. Unknown usernames and wrong passwords return
// the same generic error.
func (s *UserService) Login(req *types.LoginRequest) (*types.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	s.mu.RLock()
	stored, exists := s.byUsername[username]
	s.mu.RUnlock()

	if !exists {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, stored.passwordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	user := stored.user
	return &user, nil
}
