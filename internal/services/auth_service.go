package services

import (
	"context"
	"fmt"
	"time"

	"github.com/RCOSDP/weko-itemtype/config"
	"github.com/RCOSDP/weko-itemtype/internal/repository"
	registry_errors "github.com/RCOSDP/weko-itemtype/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users     repository.UserRepository
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(cfg.JWTSecret),
		jwtExpiry: time.Duration(cfg.JWTExpiryMin) * time.Minute,
	}
}

// AccessClaims are the JWT claims carried by an access token.
type AccessClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	UserID      string
	Role        string
	AccessToken string
	ExpiresAt   time.Time
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == registry_errors.ErrNotFound {
			return nil, registry_errors.ErrInvalidPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, registry_errors.ErrInvalidPassword
	}

	now := time.Now()
	expiresAt := now.Add(s.jwtExpiry)
	claims := AccessClaims{
		UserID: u.ID.String(),
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:      u.ID.String(),
		Role:        u.Role,
		AccessToken: signed,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthService) ParseAccessToken(tokenString string) (*AccessClaims, error) {
	if tokenString == "" {
		return nil, registry_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, registry_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok {
		return nil, registry_errors.ErrUnauthorized
	}
	return claims, nil
}
