package repository

import (
	"context"
	"errors"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	registry_errors "github.com/RCOSDP/weko-itemtype/pkg/errors"

	"gorm.io/gorm"
)

type PostgresPropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &PostgresPropertyRepository{db: db}
}

func (r *PostgresPropertyRepository) GetAll(ctx context.Context) ([]itemtype.Property, error) {
	var props []itemtype.Property
	err := r.db.WithContext(ctx).Order("id ASC").Find(&props).Error
	if err != nil {
		return nil, err
	}
	return props, nil
}

func (r *PostgresPropertyRepository) GetByID(ctx context.Context, id uint) (*itemtype.Property, error) {
	var p itemtype.Property
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, registry_errors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresPropertyRepository) Upsert(ctx context.Context, p *itemtype.Property) error {
	if p.ID == 0 {
		return r.db.WithContext(ctx).Create(p).Error
	}

	res := r.db.WithContext(ctx).Save(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return registry_errors.ErrNotFound
	}
	return nil
}
