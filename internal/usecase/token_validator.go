package usecase

import (
	"gemstore/internal/domain/user"
	"gemstore/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware. Token issuance
// belongs to the external identity service; this core only verifies.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	verifier *jwt.Verifier
}

func NewTokenValidator(verifier *jwt.Verifier) TokenValidator {
	return &tokenValidatorImpl{
		verifier: verifier,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.verifier.Verify(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
