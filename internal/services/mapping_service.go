package services

import (
	"context"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	"github.com/RCOSDP/weko-itemtype/internal/repository"
	registry_errors "github.com/RCOSDP/weko-itemtype/pkg/errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MappingService struct {
	db   *gorm.DB
	repo repository.MappingRepository

	newMappingRepo func(*gorm.DB) repository.MappingRepository
}

func NewMappingService(db *gorm.DB, repo repository.MappingRepository) *MappingService {
	return &MappingService{
		db:             db,
		repo:           repo,
		newMappingRepo: repository.NewMappingRepository,
	}
}

// GetByItemType returns the stored mapping for an item type, or nil
// when none has been registered yet.
func (s *MappingService) GetByItemType(ctx context.Context, itemTypeID uint) (*itemtype.Mapping, error) {
	m, err := s.repo.GetByItemType(ctx, itemTypeID)
	if err == registry_errors.ErrNotFound {
		return nil, nil
	}
	return m, err
}

// Register stores the parsed mapping document for an item type inside
// a transaction, replacing any previous mapping.
func (s *MappingService) Register(ctx context.Context, itemTypeID uint, mapping map[string]any) error {
	if itemTypeID == 0 {
		return registry_errors.ErrInvalidInput
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.newMappingRepo(tx).Upsert(ctx, &itemtype.Mapping{
			ItemTypeID: itemTypeID,
			Mapping:    datatypes.JSONMap(mapping),
		})
	})
}
