package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	userRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/user"
	"github.com/goatcricket/GCB-BookingService/internal/service/users/models"
)

// Сообщения валидации регистрации, показываются пользователю
const (
	msgEmailInvalid      = "Enter a valid email address."
	msgPasswordTooShort  = "Password must be at least 8 characters long."
	msgFirstNameRequired = "First name is required."
)

// minPasswordLength минимальная длина пароля
const minPasswordLength = 8

// Service сервис для работы с пользователями
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register регистрирует пользователя
// Пароль хешируется bcrypt, email должен быть уникальным.
// Валидатор накапливает все ошибки и отчитывается разом
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: registering user email=%s", req.Email)

	if msgs := validateRegistration(req); len(msgs) > 0 {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, msgs)
		return nil, &ValidationError{Messages: msgs}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - failed to hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         domain.RoleUser,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%d, email=%s", created.ID, created.Email)
	return models.FromDomainUser(created), nil
}

// Login проверяет пару email/пароль
// Неизвестный email и неверный пароль неразличимы для вызывающего
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	s.logger.Info("Login: attempt for email=%s", req.Email)

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: email=%s not found", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: invalid password for email=%s", req.Email)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: successful for user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	s.logger.Info("GetByID: fetching user id=%d", id)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// validateRegistration валидирует запрос и накапливает ВСЕ ошибки
func validateRegistration(req *models.RegisterRequest) []string {
	errs := make([]string, 0)

	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		errs = append(errs, msgEmailInvalid)
	}

	if len(req.Password) < minPasswordLength {
		errs = append(errs, msgPasswordTooShort)
	}

	if strings.TrimSpace(req.FirstName) == "" {
		errs = append(errs, msgFirstNameRequired)
	}

	return errs
}
