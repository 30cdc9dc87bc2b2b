package repository

import (
	"context"

	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	"github.com/RCOSDP/weko-itemtype/internal/domain/user"

	"github.com/google/uuid"
)

// ItemTypeRepository persists item type definitions.
type ItemTypeRepository interface {
	// GetLatest returns all item types, most recently updated first.
	GetLatest(ctx context.Context) ([]itemtype.ItemType, error)
	// GetAll returns all item types in id order.
	GetAll(ctx context.Context) ([]itemtype.ItemType, error)
	GetByID(ctx context.Context, id uint) (*itemtype.ItemType, error)
	// Upsert creates the record when its ID is zero and updates it
	// otherwise. On create the generated id is written back.
	Upsert(ctx context.Context, it *itemtype.ItemType) error
}

// PropertyRepository persists reusable field definitions.
type PropertyRepository interface {
	GetAll(ctx context.Context) ([]itemtype.Property, error)
	GetByID(ctx context.Context, id uint) (*itemtype.Property, error)
	Upsert(ctx context.Context, p *itemtype.Property) error
}

// MappingRepository persists item-type to search-index mappings,
// keyed by item type id.
type MappingRepository interface {
	GetByItemType(ctx context.Context, itemTypeID uint) (*itemtype.Mapping, error)
	Upsert(ctx context.Context, m *itemtype.Mapping) error
}

// UserRepository persists operator accounts.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
}
