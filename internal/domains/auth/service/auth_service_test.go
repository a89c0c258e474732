package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-api/internal/domains/auth/model"
	usermodel "article-api/internal/domains/user/model"
	"article-api/pkg/jwt"
)

type stubUsers struct {
	byEmail map[string]*usermodel.User
	nextID  int64
}

func newStubUsers() *stubUsers {
	return &stubUsers{byEmail: make(map[string]*usermodel.User), nextID: 1}
}

func (s *stubUsers) GetUserByID(_ context.Context, id int64) (*usermodel.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, usermodel.ErrUserNotFound
}

func (s *stubUsers) FindUserByEmail(_ context.Context, email string) (*usermodel.User, error) {
	return s.byEmail[email], nil
}

func (s *stubUsers) CreateUser(_ context.Context, u *usermodel.User) (int64, error) {
	u.ID = s.nextID
	s.nextID++
	s.byEmail[u.Email] = u
	return u.ID, nil
}

func newTestAuth(t *testing.T) (ServiceInterface, *stubUsers, *jwt.Manager) {
	t.Helper()
	users := newStubUsers()
	manager := jwt.NewManager("test-secret", 15*time.Minute)
	return NewAuthService(users, manager), users, manager
}

func TestRegister_CreatesUserAndIssuesToken(t *testing.T) {
	ctx := context.Background()
	svc, users, manager := newTestAuth(t)

	got, err := svc.Register(ctx, model.RegisterRequest{
		Email:     "ivan@example.com",
		Password:  "correct-horse",
		FirstName: "Ivan",
		LastName:  "Petrov",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ivan Petrov", got.User.FullName)
	assert.NotEmpty(t, got.AccessToken)

	claims, err := manager.ValidateToken(got.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, got.User.ID, claims.UserID)
	assert.Equal(t, "ivan@example.com", claims.Email)

	// The stored hash is never the raw password.
	stored := users.byEmail["ivan@example.com"]
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuth(t)

	req := model.RegisterRequest{
		Email:     "ivan@example.com",
		Password:  "correct-horse",
		FirstName: "Ivan",
		LastName:  "Petrov",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, usermodel.ErrEmailAlreadyExists)
}

func TestLogin_Succeeds(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuth(t)

	_, err := svc.Register(ctx, model.RegisterRequest{
		Email:     "ivan@example.com",
		Password:  "correct-horse",
		FirstName: "Ivan",
		LastName:  "Petrov",
	})
	require.NoError(t, err)

	got, err := svc.Login(ctx, model.LoginRequest{Email: "ivan@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.AccessToken)
}

func TestLogin_BadCredentialsAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuth(t)

	_, err := svc.Register(ctx, model.RegisterRequest{
		Email:     "ivan@example.com",
		Password:  "correct-horse",
		FirstName: "Ivan",
		LastName:  "Petrov",
	})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, model.LoginRequest{Email: "ivan@example.com", Password: "wrong"})
	_, unknownEmail := svc.Login(ctx, model.LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})

	assert.ErrorIs(t, wrongPassword, model.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, model.ErrInvalidCredentials)
}
