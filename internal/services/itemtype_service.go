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

// RegisterItemTypeCommand carries the fields extracted from the
// registration screen's table_row_map plus the full render document.
type RegisterItemTypeCommand struct {
	ID      uint
	Name    string
	Schema  map[string]any
	Form    json.RawMessage
	Render  map[string]any
	Mapping map[string]any
}

type ItemTypeService struct {
	db   *gorm.DB
	repo repository.ItemTypeRepository

	// repo factories are rebound to the transaction handle inside
	// Register; tests swap them to inject failures.
	newItemTypeRepo func(*gorm.DB) repository.ItemTypeRepository
	newMappingRepo  func(*gorm.DB) repository.MappingRepository
}

func NewItemTypeService(db *gorm.DB, repo repository.ItemTypeRepository) *ItemTypeService {
	return &ItemTypeService{
		db:              db,
		repo:            repo,
		newItemTypeRepo: repository.NewItemTypeRepository,
		newMappingRepo:  repository.NewMappingRepository,
	}
}

// GetLatest returns all item types, most recently updated first.
func (s *ItemTypeService) GetLatest(ctx context.Context) ([]itemtype.ItemType, error) {
	return s.repo.GetLatest(ctx)
}

func (s *ItemTypeService) GetAll(ctx context.Context) ([]itemtype.ItemType, error) {
	return s.repo.GetAll(ctx)
}

func (s *ItemTypeService) GetByID(ctx context.Context, id uint) (*itemtype.ItemType, error) {
	return s.repo.GetByID(ctx, id)
}

// Register upserts an item type and its search-index mapping in a
// single transaction. A zero id creates a new item type; the new id is
// returned. When the mapping write fails the item type write is rolled
// back with it.
func (s *ItemTypeService) Register(ctx context.Context, cmd RegisterItemTypeCommand) (uint, error) {
	if cmd.Name == "" {
		return 0, registry_errors.ErrInvalidInput
	}

	it := itemtype.ItemType{
		ID:     cmd.ID,
		Name:   cmd.Name,
		Schema: datatypes.JSONMap(cmd.Schema),
		Form:   datatypes.JSON(cmd.Form),
		Render: datatypes.JSONMap(cmd.Render),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		itemRepo := s.newItemTypeRepo(tx)
		mappingRepo := s.newMappingRepo(tx)

		if err := itemRepo.Upsert(ctx, &it); err != nil {
			return err
		}
		return mappingRepo.Upsert(ctx, &itemtype.Mapping{
			ItemTypeID: it.ID,
			Mapping:    datatypes.JSONMap(cmd.Mapping),
		})
	})
	if err != nil {
		return 0, err
	}
	return it.ID, nil
}
