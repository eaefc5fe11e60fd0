package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"leadflow/internal/models"
)

type UserStore interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	UpdateRefresh(id int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, expiresAt time.Time) (*models.User, error)
}

type UserService interface {
	Register(name, email, password string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateRefresh(id int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, expiresAt time.Time) (*models.User, error)
}

type userService struct {
	repo         UserStore
	emailService EmailService
	authService  AuthService
}

func NewUserService(repo UserStore, emailService EmailService, authService AuthService) UserService {
	return &userService{
		repo:         repo,
		emailService: emailService,
		authService:  authService,
	}
}

func (s *userService) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrValidation)
	}
	if strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			// регистрацию из-за почты не валим
			log.Printf("[users][register] warning: welcome email to %s failed: %v", user.Email, err)
		}
	}
	return user, nil
}

func (s *userService) GetByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
}

func (s *userService) UpdateRefresh(id int, token string, expiresAt time.Time) error {
	return s.repo.UpdateRefresh(id, token, expiresAt)
}

func (s *userService) RotateRefresh(oldToken, newToken string, expiresAt time.Time) (*models.User, error) {
	return s.repo.RotateRefresh(oldToken, newToken, expiresAt)
}
