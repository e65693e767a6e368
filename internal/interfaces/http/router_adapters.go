package http

import (
	"preparos/internal/application/auth/usecases"
	"preparos/internal/infrastructure/auth"
	"preparos/internal/shared/authorization"
)

// jwtServiceAdapter adapts auth.JWTService to usecases.JWTService interface
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userUUID, sessionID string, role authorization.UserRole) (*usecases.AccessToken, error) {
	token, err := a.JWTService.Generate(userUUID, sessionID, role)
	if err != nil {
		return nil, err
	}
	return &usecases.AccessToken{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		ExpiresIn: token.ExpiresIn,
	}, nil
}
