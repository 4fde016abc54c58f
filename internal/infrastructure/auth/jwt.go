package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/biztime"
)

// Claims carries the principal identity inside a signed token. The
// authenticated principal is derived entirely from the verified claims;
// no per-request store lookup is performed.
type Claims struct {
	UserID   uint                   `json:"user_id"`
	Username string                 `json:"username"`
	Role     authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret     []byte
	expMinutes int
}

func NewJWTService(secret string, expMinutes int) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expMinutes: expMinutes,
	}
}

// Generate issues a signed, time-bound token for the given identity.
func (s *JWTService) Generate(userID uint, username string, role authorization.UserRole) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.expMinutes) * time.Minute)

	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token, returning its claims. It fails on
// bad signature, malformed structure, or expiry.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ExpMinutes returns the token expiration time in minutes.
func (s *JWTService) ExpMinutes() int {
	return s.expMinutes
}
