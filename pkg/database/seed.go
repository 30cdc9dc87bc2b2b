package database

import (
	"fmt"
	"log"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	"github.com/RCOSDP/weko-itemtype/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	AdminEmail       string
	AdminPassword    string
	CreateBaseSchema bool
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		AdminEmail:       "admin@registry.local",
		AdminPassword:    "Admin@123!",
		CreateBaseSchema: true,
	}
}

// Seed inserts the admin account and, when requested, a small set of
// base property definitions so a fresh install has something to list.
func Seed(db *gorm.DB, cfg *SeedConfig) error {
	if cfg == nil {
		cfg = DefaultSeedConfig()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := user.User{
		ID:           uuid.New(),
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	}

	var existing user.User
	err = db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	switch {
	case err == nil:
		log.Printf("Admin account %s already exists, skipping", cfg.AdminEmail)
	case err == gorm.ErrRecordNotFound:
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}
		log.Printf("Created admin account %s", cfg.AdminEmail)
	default:
		return err
	}

	if !cfg.CreateBaseSchema {
		return nil
	}

	return seedBaseProperties(db)
}

func seedBaseProperties(db *gorm.DB) error {
	props := []itemtype.Property{
		{
			Name:   "Title",
			Schema: datatypes.JSONMap{"type": "string", "title": "Title"},
			Form:   datatypes.JSON(`{"key":"title","type":"text"}`),
			Forms:  datatypes.JSON(`{"key":"title[]","type":"text","add":"New"}`),
		},
		{
			Name:   "Creator",
			Schema: datatypes.JSONMap{"type": "string", "title": "Creator"},
			Form:   datatypes.JSON(`{"key":"creator","type":"text"}`),
			Forms:  datatypes.JSON(`{"key":"creator[]","type":"text","add":"New"}`),
		},
		{
			Name:   "Date",
			Schema: datatypes.JSONMap{"type": "string", "format": "date", "title": "Date"},
			Form:   datatypes.JSON(`{"key":"date","type":"template","format":"yyyy-MM-dd"}`),
			Forms:  datatypes.JSON(`{"key":"date[]","type":"template","format":"yyyy-MM-dd","add":"New"}`),
		},
	}

	for _, p := range props {
		var count int64
		if err := db.Model(&itemtype.Property{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to seed property %s: %w", p.Name, err)
		}
		log.Printf("Seeded property %s", p.Name)
	}
	return nil
}
