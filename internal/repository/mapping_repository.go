package repository

import (
	"context"
	"errors"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	registry_errors "github.com/RCOSDP/weko-itemtype/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresMappingRepository struct {
	db *gorm.DB
}

func NewMappingRepository(db *gorm.DB) MappingRepository {
	return &PostgresMappingRepository{db: db}
}

func (r *PostgresMappingRepository) GetByItemType(ctx context.Context, itemTypeID uint) (*itemtype.Mapping, error) {
	var m itemtype.Mapping
	err := r.db.WithContext(ctx).Where("item_type_id = ?", itemTypeID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, registry_errors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PostgresMappingRepository) Upsert(ctx context.Context, m *itemtype.Mapping) error {
	if m.ItemTypeID == 0 {
		return registry_errors.ErrInvalidInput
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_type_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mapping", "updated_at"}),
	}).Create(m).Error
}
