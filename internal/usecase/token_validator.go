package usecase

import (
	"tour-booking-console/internal/domain/operator"
	"tour-booking-console/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Operator is the authenticated company user behind a request.
type Operator struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      operator.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Operator, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Operator, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Operator{}, err
	}

	role, err := operator.NewRole(claims.Role)
	if err != nil {
		return Operator{}, err
	}

	return Operator{
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Role:      role,
	}, nil
}
