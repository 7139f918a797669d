package services

import (
	"errors"

	"properties-api/domain"
	"properties-api/dto"
	"properties-api/repositories"
	"properties-api/utils"
)

// UserService covers the account operations the property API needs:
// registration, login and lookup. Accounts created through Register are
// always viewers.
type UserService interface {
	Register(req dto.RegisterRequest) (*domain.User, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	GetByID(id uint) (*domain.User, error)
}

type userService struct {
	repo repositories.UserRepository
}

// NewUserService creates the service on top of a repository.
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates a viewer account with a bcrypt-hashed password.
func (s *userService) Register(req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.repo.GetByUsername(req.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: req.Username,
		Password: hash,
		Role:     domain.RoleViewer,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and returns a signed token carrying the
// account's role. Lookup and password failures report the same error so a
// caller cannot probe which usernames exist.
func (s *userService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}

// GetByID fetches a single account.
func (s *userService) GetByID(id uint) (*domain.User, error) {
	return s.repo.GetByID(id)
}
