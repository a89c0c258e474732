package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"article-api/internal/domains/auth/model"
	usermodel "article-api/internal/domains/user/model"
	userservice "article-api/internal/domains/user/service"
	"article-api/pkg/jwt"
)

type ServiceInterface interface {
	// Register creates a user and returns a signed access token.
	// Returns usermodel.ErrEmailAlreadyExists when the email is taken.
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)

	// Login verifies credentials. Unknown email and wrong password both
	// come back as model.ErrInvalidCredentials.
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
}

type authService struct {
	users userservice.ServiceInterface
	jwt   *jwt.Manager
}

func NewAuthService(users userservice.ServiceInterface, jwtManager *jwt.Manager) ServiceInterface {
	return &authService{users: users, jwt: jwtManager}
}

func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	existing, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, usermodel.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &usermodel.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if req.MiddleName != "" {
		user.MiddleName = &req.MiddleName
	}

	if _, err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *authService) issueToken(user *usermodel.User) (*model.AuthResponse, error) {
	token, err := s.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	return &model.AuthResponse{
		AccessToken: token,
		User: model.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName(),
		},
	}, nil
}
