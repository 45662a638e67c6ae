package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	userRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/user"
)

// Service сервис аутентификации
// Выдаёт непрозрачные uuid-токены: токен никогда не восстанавливается
// из email или других данных пользователя
type Service struct {
	users    UserRepository
	tokenTTL time.Duration
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(users UserRepository, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		users:    users,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Session результат успешного логина или регистрации
type Session struct {
	Token string
	User  *domain.User
}

// Register создает пользователя и сразу выдаёт сессию
func (s *Service) Register(ctx context.Context, name, email, phone, password string) (*Session, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		s.logger.Warn("Register: missing required fields, email=%s", email)
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email already taken: %s", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	session, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Register: user created, user_id=%d", user.ID)
	return session, nil
}

// Login проверяет пароль и выдаёт новый сессионный токен
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email: %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user_id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	session, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: session issued for user_id=%d", user.ID)
	return session, nil
}

// Authenticate проверяет токен и возвращает пользователя
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	st, err := s.users.GetToken(ctx, token)
	if err != nil {
		if errors.Is(err, userRepo.ErrTokenNotFound) {
			return nil, ErrInvalidToken
		}
		s.logger.Error("Authenticate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if st.IsExpired(time.Now()) {
		s.logger.Warn("Authenticate: expired token for user_id=%d", st.UserID)
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, st.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		s.logger.Error("Authenticate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	return user, nil
}

// CleanupExpiredTokens удаляет протухшие сессии, вызывается планировщиком
func (s *Service) CleanupExpiredTokens(ctx context.Context) error {
	deleted, err := s.users.DeleteExpiredTokens(ctx, time.Now())
	if err != nil {
		s.logger.Error("CleanupExpiredTokens: repository error: %v", err)
		return fmt.Errorf("%w: CleanupExpiredTokens - repository error: %v", ErrInternal, err)
	}
	if deleted > 0 {
		s.logger.Info("CleanupExpiredTokens: removed %d expired tokens", deleted)
	}
	return nil
}

func (s *Service) issueToken(ctx context.Context, user *domain.User) (*Session, error) {
	token := &domain.SessionToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.tokenTTL),
	}

	if err := s.users.CreateToken(ctx, token); err != nil {
		s.logger.Error("issueToken: repository error for user_id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issueToken - repository error: %v", ErrInternal, err)
	}

	return &Session{Token: token.Token, User: user}, nil
}
