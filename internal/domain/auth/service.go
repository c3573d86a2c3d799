package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"driveledger/internal/core/apperror"
	"driveledger/pkg/logger"
)

// Service authenticates the single dealer account configured from the
// environment. The password is hashed once at startup; every login attempt
// goes through a bcrypt comparison.
type Service struct {
	username     string
	passwordHash []byte
	jwtService   *JWTService
}

// NewService creates the auth service for one dealer account.
func NewService(username, password string, jwtService *JWTService) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &Service{
		username:     username,
		passwordHash: hash,
		jwtService:   jwtService,
	}, nil
}

// Login authenticates the dealer and returns an access token.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Token, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(creds.Password))
	if !usernameOK || passwordErr != nil {
		logger.Warn(ctx, "login rejected", "username", creds.Username)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	tokenString, expiresAt, err := s.jwtService.GenerateAccessToken(s.username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	logger.Info(ctx, "dealer logged in", "username", s.username)

	return &Token{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
