package services

import (
	"context"
	"encoding/json"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	"github.com/RCOSDP/weko-itemtype/internal/repository"
	registry_errors "github.com/RCOSDP/weko-itemtype/pkg/errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreatePropertyCommand carries a property definition submitted by the
// property screen. FormSingle is the single-value form layout,
// FormArray the array layout.
type CreatePropertyCommand struct {
	ID         uint
	Name       string
	Schema     map[string]any
	FormSingle json.RawMessage
	FormArray  json.RawMessage
}

type PropertyService struct {
	db   *gorm.DB
	repo repository.PropertyRepository

	newPropertyRepo func(*gorm.DB) repository.PropertyRepository
}

func NewPropertyService(db *gorm.DB, repo repository.PropertyRepository) *PropertyService {
	return &PropertyService{
		db:              db,
		repo:            repo,
		newPropertyRepo: repository.NewPropertyRepository,
	}
}

func (s *PropertyService) GetAll(ctx context.Context) ([]itemtype.Property, error) {
	return s.repo.GetAll(ctx)
}

func (s *PropertyService) GetByID(ctx context.Context, id uint) (*itemtype.Property, error) {
	return s.repo.GetByID(ctx, id)
}

// Create upserts a property definition inside a transaction. A zero id
// creates a new property.
func (s *PropertyService) Create(ctx context.Context, cmd CreatePropertyCommand) error {
	if cmd.Name == "" {
		return registry_errors.ErrInvalidInput
	}

	p := itemtype.Property{
		ID:     cmd.ID,
		Name:   cmd.Name,
		Schema: datatypes.JSONMap(cmd.Schema),
		Form:   datatypes.JSON(cmd.FormSingle),
		Forms:  datatypes.JSON(cmd.FormArray),
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.newPropertyRepo(tx).Upsert(ctx, &p)
	})
}
