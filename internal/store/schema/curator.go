package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CuratorGalleryRef is one entry of a curator's denormalized gallery list,
// kept for cheap dashboard rendering. Derived from Gallery rows and
// reconciled whenever a gallery's status changes.
type CuratorGalleryRef struct {
	Address   string    `json:"address"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Curator represents the curators table. The galleries JSONB column and the
// count are a derived cache of Gallery records, not a source of truth.
type Curator struct {
	// ID is the internal primary key (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// WalletAddress is the curator's ledger address, lower-cased, unique
	WalletAddress string `gorm:"column:wallet_address;not null;uniqueIndex;type:text"`
	// DisplayName is the curator's public name
	DisplayName string `gorm:"column:display_name;type:text"`
	// GalleriesCount is the denormalized number of owned galleries
	GalleriesCount int `gorm:"column:galleries_count;not null;default:0"`
	// Galleries is the denormalized {address, name, status} list
	Galleries datatypes.JSON `gorm:"column:galleries;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Curator model
func (Curator) TableName() string {
	return "curators"
}
