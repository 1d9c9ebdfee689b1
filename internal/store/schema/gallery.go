package schema

import (
	"time"

	"github.com/artblock/gallery-reconciler/internal/domain"
)

// Gallery represents the galleries table - the local mirror of one on-chain
// gallery. Financial columns (total_earned, pending_payout, last_claim_date)
// are written only by the event synchronizer; everything else is advisory or
// set once at creation.
type Gallery struct {
	// ID is the internal primary key (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// LedgerAddress is the gallery's on-chain address, lower-cased,
	// immutable once assigned
	LedgerAddress string `gorm:"column:ledger_address;not null;uniqueIndex;type:text"`
	// CuratorID is the owning curator
	CuratorID string `gorm:"column:curator_id;not null;type:uuid;index:idx_galleries_curator_status,priority:1"`
	// Name is the gallery display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description is the gallery description
	Description string `gorm:"column:description;type:text"`
	// Status is the lifecycle status (pending, active, suspended)
	Status domain.GalleryStatus `gorm:"column:status;not null;type:text;index:idx_galleries_curator_status,priority:2;index:idx_galleries_status"`
	// CreationTxHash is the hash of the confirmed creation transaction
	CreationTxHash string `gorm:"column:creation_tx_hash;type:text"`
	// TotalEarned is the lifetime revenue in minor units (string-backed
	// numeric to match on-chain integers exactly)
	TotalEarned string `gorm:"column:total_earned;not null;default:0;type:numeric(78,0)"`
	// PendingPayout is the mirrored unclaimed revenue in minor units.
	// Display and pre-check only; never the authority for a claim amount.
	PendingPayout string `gorm:"column:pending_payout;not null;default:0;type:numeric(78,0)"`
	// LastClaimDate is when the most recent claim event was applied
	LastClaimDate *time.Time `gorm:"column:last_claim_date;type:timestamptz"`
	// ArtworkCount is an advisory display counter
	ArtworkCount int `gorm:"column:artwork_count;not null;default:0"`
	// ArtistCount is an advisory display counter
	ArtistCount int `gorm:"column:artist_count;not null;default:0"`
	// VisitorCount is an advisory display counter
	VisitorCount int `gorm:"column:visitor_count;not null;default:0"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	ClaimRecords []ClaimRecord `gorm:"foreignKey:GalleryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Gallery model
func (Gallery) TableName() string {
	return "galleries"
}
