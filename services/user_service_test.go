package services

import (
	"errors"
	"testing"

	"properties-api/domain"
	"properties-api/dto"
)

// mockUserRepository is an in-memory stand-in for the GORM repository.
// lookupErr, when set, simulates a database failure on GetByUsername.
type mockUserRepository struct {
	users     map[uint]*domain.User
	lookupErr error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*domain.User)}
}

func (m *mockUserRepository) Create(user *domain.User) error {
	user.ID = uint(len(m.users) + 1)
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) GetByID(id uint) (*domain.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetByUsername(username string) (*domain.User, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func TestRegister_Success(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)

	user, err := service.Register(dto.RegisterRequest{
		Username: "alice",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Role != domain.RoleViewer {
		t.Errorf("Expected viewer role, got %s", user.Role)
	}
	if user.Password == "password123" {
		t.Error("Password should be hashed, not plain text")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)

	service.Register(dto.RegisterRequest{Username: "alice", Password: "password123"})

	user, err := service.Register(dto.RegisterRequest{Username: "alice", Password: "other456"})
	if err != domain.ErrUsernameTaken {
		t.Errorf("Expected ErrUsernameTaken, got %v", err)
	}
	if user != nil {
		t.Error("Expected nil user, got one")
	}
}

func TestRegister_LookupFailure(t *testing.T) {
	repo := newMockUserRepository()
	repo.lookupErr = errors.New("connection refused")
	service := NewUserService(repo)

	// A real database failure must propagate, not masquerade as a
	// duplicate username.
	user, err := service.Register(dto.RegisterRequest{Username: "alice", Password: "password123"})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if err == domain.ErrUsernameTaken {
		t.Error("Expected the lookup error, got ErrUsernameTaken")
	}
	if err.Error() != "connection refused" {
		t.Errorf("Expected 'connection refused', got %v", err)
	}
	if user != nil {
		t.Error("Expected nil user, got one")
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)

	service.Register(dto.RegisterRequest{Username: "alice", Password: "password123"})

	response, err := service.Login(dto.LoginRequest{Username: "alice", Password: "password123"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response.Token == "" {
		t.Error("Expected a JWT token, got empty string")
	}
	if response.User.Username != "alice" {
		t.Errorf("Expected username alice, got %s", response.User.Username)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)

	service.Register(dto.RegisterRequest{Username: "alice", Password: "password123"})

	response, err := service.Login(dto.LoginRequest{Username: "alice", Password: "wrongpassword"})
	if err != domain.ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
	if response != nil {
		t.Error("Expected nil response, got one")
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)

	response, err := service.Login(dto.LoginRequest{Username: "nobody", Password: "password123"})
	if err != domain.ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
	if response != nil {
		t.Error("Expected nil response, got one")
	}
}
