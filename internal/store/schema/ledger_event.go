package schema

import (
	"time"
)

// LedgerEventRecord represents the ledger_events table - the processed-event
// set used for idempotent application. Synchronizer windows overlap between
// ticks, so the same event is observed repeatedly; the unique
// (gallery_address, dedup_key) pair guarantees each fact is folded into the
// mirror exactly once.
type LedgerEventRecord struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// GalleryAddress is the emitting gallery's ledger address, lower-cased
	GalleryAddress string `gorm:"column:gallery_address;not null;type:text;uniqueIndex:idx_ledger_events_gallery_dedup,priority:1"`
	// DedupKey is the event's idempotence key (tx hash, or block:logIndex)
	DedupKey string `gorm:"column:dedup_key;not null;type:text;uniqueIndex:idx_ledger_events_gallery_dedup,priority:2"`
	// Kind is the event kind (revenue_received, revenue_claimed)
	Kind string `gorm:"column:kind;not null;type:text"`
	// Amount is the event amount in minor units
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// TxHash is the originating transaction hash
	TxHash string `gorm:"column:tx_hash;type:text"`
	// BlockNumber is the block the event was emitted in
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// LogIndex is the event's log index within the block
	LogIndex uint `gorm:"column:log_index;not null"`
	// Timestamp is the on-chain timestamp of the event
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// CreatedAt is when the event was applied to the mirror
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerEventRecord model
func (LedgerEventRecord) TableName() string {
	return "ledger_events"
}
