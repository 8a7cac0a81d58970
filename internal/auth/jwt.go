package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/citu-lostit/lostit/internal/model"
)

// SessionUser is the serialized user object carried by the session cookie.
// It is the single client-side copy of "who is logged in"; profile edits
// re-issue the cookie with merged data.
type SessionUser struct {
	AdminID     int64  `json:"adminId"`
	Username    string `json:"username"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Claims represents the session token claims.
type Claims struct {
	SessionUser
	jwt.RegisteredClaims
}

// TokenExpiry is the default session lifetime.
const TokenExpiry = 24 * time.Hour

// NewSessionUser builds the session user from a backend admin record.
func NewSessionUser(admin *model.Admin) SessionUser {
	return SessionUser{
		AdminID:     admin.AdminID,
		Username:    admin.Username,
		FullName:    admin.FullName,
		Email:       admin.Email,
		PhoneNumber: admin.PhoneNumber,
	}
}

// GenerateToken creates a signed session token with a unique JTI so the
// session can be revoked on logout.
func GenerateToken(secret string, user SessionUser) (string, error) {
	claims := Claims{
		SessionUser: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a session token, returning the claims.
func ValidateToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
