package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/biztime"
)

// Claims carries the resolved principal inside the session token.
type Claims struct {
	UserID    string `json:"userId"`
	CompanyID string `json:"companyId"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 session tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	clock  biztime.Clock
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  biztime.SystemClock,
	}
}

// WithClock swaps the time source; tests use it to forge expired tokens.
func (s *JWTService) WithClock(clock biztime.Clock) *JWTService {
	s.clock = clock
	return s
}

func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

func (s *JWTService) Issue(p authorization.Principal) (string, time.Time, error) {
	now := s.clock.Now().UTC()
	exp := now.Add(s.ttl)

	claims := &Claims{
		UserID:    p.UserID,
		CompanyID: p.CompanyID,
		Role:      p.Role,
		Email:     p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, exp, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" || claims.CompanyID == "" {
		return nil, fmt.Errorf("token is missing principal claims")
	}
	return claims, nil
}
