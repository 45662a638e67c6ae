package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/beepkz/BEEP-BookingService/internal/domain"
	userRepo "github.com/beepkz/BEEP-BookingService/internal/infra/storage/user"
)

type mockUserRepo struct {
	usersByEmail map[string]*domain.User
	usersByID    map[int64]*domain.User
	tokens       map[string]*domain.SessionToken

	createErr error
	nextID    int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByEmail: make(map[string]*domain.User),
		usersByID:    make(map[int64]*domain.User),
		tokens:       make(map[string]*domain.SessionToken),
		nextID:       1,
	}
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, exists := m.usersByEmail[u.Email]; exists {
		return nil, userRepo.ErrEmailTaken
	}
	created := *u
	created.ID = m.nextID
	m.nextID++
	m.usersByEmail[created.Email] = &created
	m.usersByID[created.ID] = &created
	return &created, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := m.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := m.usersByID[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

func (m *mockUserRepo) CreateToken(ctx context.Context, token *domain.SessionToken) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *mockUserRepo) GetToken(ctx context.Context, token string) (*domain.SessionToken, error) {
	if t, ok := m.tokens[token]; ok {
		return t, nil
	}
	return nil, userRepo.ErrTokenNotFound
}

func (m *mockUserRepo) DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	var deleted int64
	for key, t := range m.tokens {
		if t.IsExpired(now) {
			delete(m.tokens, key)
			deleted++
		}
	}
	return deleted, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *mockUserRepo) *Service {
	return NewService(repo, 24*time.Hour, nopLogger{})
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	session, err := svc.Register(context.Background(), "  Айгуль  ", "  Aigul@BEEP.kz ", "+77001234567", "secret123")

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "Айгуль", session.User.Name)
	assert.Equal(t, "aigul@beep.kz", session.User.Email)

	// Пароль в хранилище только в виде bcrypt-хеша
	stored := repo.usersByEmail["aigul@beep.kz"]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "Первый", "dup@beep.kz", "", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Второй", "dup@beep.kz", "", "secret456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService(newMockUserRepo())

	_, err := svc.Register(context.Background(), "", "a@beep.kz", "", "secret")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), "Имя", "a@beep.kz", "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "Айгуль", "aigul@beep.kz", "", "secret123")
	require.NoError(t, err)

	_, wrongPass := svc.Login(context.Background(), "aigul@beep.kz", "wrong")
	_, noUser := svc.Login(context.Background(), "ghost@beep.kz", "secret123")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, ErrInvalidCredentials)
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	session, err := svc.Register(context.Background(), "Айгуль", "aigul@beep.kz", "", "secret123")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, user.ID)

	_, err = svc.Authenticate(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	session, err := svc.Register(context.Background(), "Айгуль", "aigul@beep.kz", "", "secret123")
	require.NoError(t, err)

	repo.tokens[session.Token].ExpiresAt = time.Now().Add(-time.Minute)

	_, err = svc.Authenticate(context.Background(), session.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCleanupExpiredTokens(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo)

	session, err := svc.Register(context.Background(), "Айгуль", "aigul@beep.kz", "", "secret123")
	require.NoError(t, err)
	repo.tokens[session.Token].ExpiresAt = time.Now().Add(-time.Minute)

	require.NoError(t, svc.CleanupExpiredTokens(context.Background()))
	assert.Empty(t, repo.tokens)
}
