package itemtype

import (
	"time"

	"gorm.io/datatypes"
)

// ItemType represents the item_types table. It is a named schema/form
// definition describing a class of repository metadata records. The
// render document stores the full UI layout (table rows, schema editor)
// submitted by the registration screen.
type ItemType struct {
	ID     uint              `gorm:"primaryKey" json:"id"`
	Name   string            `gorm:"not null" json:"name"`
	Schema datatypes.JSONMap `gorm:"type:jsonb" json:"schema"`
	Form   datatypes.JSON    `gorm:"type:jsonb" json:"form"`
	Render datatypes.JSONMap `gorm:"type:jsonb" json:"render"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Property represents the item_type_properties table: a reusable field
// definition referenced by item types. Form holds the single-value form
// layout, Forms the array form layout.
type Property struct {
	ID     uint              `gorm:"primaryKey" json:"id"`
	Name   string            `gorm:"not null" json:"name"`
	Schema datatypes.JSONMap `gorm:"type:jsonb" json:"schema"`
	Form   datatypes.JSON    `gorm:"type:jsonb" json:"form"`
	Forms  datatypes.JSON    `gorm:"type:jsonb" json:"forms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Mapping represents the item_type_mappings table: the association
// between an item type's fields and the external search-index schema.
// One row per item type.
type Mapping struct {
	ItemTypeID uint              `gorm:"primaryKey" json:"item_type_id"`
	Mapping    datatypes.JSONMap `gorm:"type:jsonb" json:"mapping"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ItemType) TableName() string {
	return "item_types"
}

func (Property) TableName() string {
	return "item_type_properties"
}

func (Mapping) TableName() string {
	return "item_type_mappings"
}
