package db_models

import (
	"gorm.io/datatypes"
)

// CatalogEntry is one row of the service catalog. The category-specific
// pricing payload is stored as jsonb and decoded into the matching
// pricing payload type when a snapshot is taken.
type CatalogEntry struct {
	BaseModel
	Name     string
	Category string `gorm:"index"`
	Currency string `gorm:"size:3"`
	Unit     string
	Notes    string
	Payload  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
