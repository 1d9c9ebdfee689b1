package schema

import (
	"time"
)

// ClaimRecord represents the claim_records table - the append-only claim
// history of a gallery. Deduplicated by ledger transaction hash.
type ClaimRecord struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// GalleryID references the gallery the claim belongs to
	GalleryID string `gorm:"column:gallery_id;not null;type:uuid;index"`
	// Amount is the claimed amount in minor units
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// LedgerTxHash is the claim transaction hash, unique per claim
	LedgerTxHash string `gorm:"column:ledger_tx_hash;not null;uniqueIndex;type:text"`
	// Timestamp is the on-chain timestamp of the claim
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// CreatedAt is when the claim event was applied to the mirror
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ClaimRecord model
func (ClaimRecord) TableName() string {
	return "claim_records"
}
