package service

import (
	"context"
	"fmt"
	"time"

	"ai-support-be/internal/config"
	"ai-support-be/internal/dto"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.AgentRegisterRequest) error
	Login(ctx context.Context, req *dto.AgentLoginRequest) (*dto.AgentLoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	authConfig config.AuthConfig
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, authConfig config.AuthConfig) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		authConfig: authConfig,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.AgentRegisterRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AgentUserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return fmt.Errorf("find agent user: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	agentUser := &entity.AgentUser{
		Id:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uow.AgentUserRepository().Create(ctx, agentUser); err != nil {
		return fmt.Errorf("create agent user: %w", err)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, req *dto.AgentLoginRequest) (*dto.AgentLoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agentUser, err := uow.AgentUserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, fmt.Errorf("find agent user: %w", err)
	}
	if agentUser == nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(agentUser.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	claims := jwt.MapClaims{
		"agent_id": agentUser.Id.String(),
		"email":    agentUser.Email,
		"exp":      time.Now().Add(time.Duration(s.authConfig.TokenTTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.AgentLoginResponse{
		Token: signed,
		Name:  agentUser.Name,
		Email: agentUser.Email,
	}, nil
}
