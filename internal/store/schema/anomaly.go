package schema

import (
	"time"
)

// ReconciliationAnomaly represents the reconciliation_anomalies table -
// detected inconsistencies between the mirror and the ledger. Never surfaced
// to end users; kept for operator review and resync.
type ReconciliationAnomaly struct {
	// ID is a ULID assigned at detection time
	ID string `gorm:"column:id;primaryKey;type:text"`
	// GalleryAddress is the affected gallery's ledger address
	GalleryAddress string `gorm:"column:gallery_address;not null;type:text;index"`
	// Kind classifies the anomaly (negative_pending, status_divergence)
	Kind string `gorm:"column:kind;not null;type:text"`
	// Detail is a human-readable description with the observed figures
	Detail string `gorm:"column:detail;not null;type:text"`
	// Resolved marks anomalies that an operator has handled
	Resolved bool `gorm:"column:resolved;not null;default:false"`
	// CreatedAt is the detection time
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ReconciliationAnomaly model
func (ReconciliationAnomaly) TableName() string {
	return "reconciliation_anomalies"
}
