package services

import (
	"context"
	"testing"

	"github.com/RCOSDP/weko-itemtype/config"
	"github.com/RCOSDP/weko-itemtype/internal/domain/user"
	"github.com/RCOSDP/weko-itemtype/internal/repository"
	registry_errors "github.com/RCOSDP/weko-itemtype/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryMin: 5}
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func seedUser(t *testing.T, db *gorm.DB, email, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}).Error)
}

func TestLoginAndParseToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	seedUser(t, db, "admin@registry.local", "s3cret", user.RoleAdmin)

	result, err := svc.Login(context.Background(), "admin@registry.local", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	assert.Equal(t, user.RoleAdmin, result.Role)

	claims, err := svc.ParseAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.UserID, claims.UserID)
	assert.Equal(t, user.RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	seedUser(t, db, "admin@registry.local", "s3cret", user.RoleAdmin)

	_, err := svc.Login(context.Background(), "admin@registry.local", "wrong")
	assert.ErrorIs(t, err, registry_errors.ErrInvalidPassword)
}

func TestLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Login(context.Background(), "nobody@registry.local", "s3cret")
	assert.ErrorIs(t, err, registry_errors.ErrInvalidPassword)
}

func TestParseTamperedToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.ParseAccessToken("not.a.token")
	assert.ErrorIs(t, err, registry_errors.ErrUnauthorized)

	_, err = svc.ParseAccessToken("")
	assert.ErrorIs(t, err, registry_errors.ErrUnauthorized)
}
