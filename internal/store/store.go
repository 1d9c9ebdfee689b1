package store

import (
	"context"

	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/store/schema"
)

// GalleryStats holds the advisory display counters of a gallery. They play
// no part in financial correctness.
type GalleryStats struct {
	ArtworkCount int
	ArtistCount  int
	VisitorCount int
}

// ApplyResult reports the outcome of folding one ledger event into the
// mirror.
type ApplyResult struct {
	// Applied is false when the event's dedup key was already processed
	// and the mirror was left untouched.
	Applied bool
	// NegativePending is true when a claim exceeded the mirrored pending
	// payout. The payout is clamped to zero past the point of detection;
	// the caller must record the anomaly, not swallow it.
	NegativePending bool
}

// Store defines the read and non-financial write operations on the mirror.
// Financial fields are off limits here; they belong to RevenueWriter.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,RevenueWriter=MockRevenueWriter
type Store interface {
	// CreateGallery inserts a new mirrored gallery
	CreateGallery(ctx context.Context, gallery *schema.Gallery) error
	// GetGalleryByID retrieves a gallery by its internal ID
	GetGalleryByID(ctx context.Context, id string) (*schema.Gallery, error)
	// GetGalleryByAddress retrieves a gallery by its ledger address
	GetGalleryByAddress(ctx context.Context, address string) (*schema.Gallery, error)
	// ListGalleriesByStatus retrieves all galleries with the given status
	ListGalleriesByStatus(ctx context.Context, status domain.GalleryStatus) ([]schema.Gallery, error)
	// ListGalleriesByCurator retrieves all galleries owned by a curator
	ListGalleriesByCurator(ctx context.Context, curatorID string) ([]schema.Gallery, error)
	// UpdateGalleryStatus changes a gallery's lifecycle status and rebuilds
	// the owning curator's denormalized gallery list in the same transaction
	UpdateGalleryStatus(ctx context.Context, id string, status domain.GalleryStatus) error
	// UpdateGalleryStats updates the advisory display counters
	UpdateGalleryStats(ctx context.Context, id string, stats GalleryStats) error
	// ListClaimHistory retrieves a gallery's claim records, newest first
	ListClaimHistory(ctx context.Context, galleryID string, limit, offset int) ([]schema.ClaimRecord, error)

	// CreateCurator inserts a new curator
	CreateCurator(ctx context.Context, curator *schema.Curator) error
	// GetCurator retrieves a curator by internal ID
	GetCurator(ctx context.Context, id string) (*schema.Curator, error)
	// GetCuratorByWallet retrieves a curator by wallet address
	GetCuratorByWallet(ctx context.Context, address string) (*schema.Curator, error)
	// AppendCuratorGallery appends one entry to a curator's denormalized
	// gallery list and bumps the count
	AppendCuratorGallery(ctx context.Context, curatorID string, ref schema.CuratorGalleryRef) error
	// SyncCuratorGalleries rebuilds a curator's denormalized gallery list
	// and count from the gallery rows
	SyncCuratorGalleries(ctx context.Context, curatorID string) error

	// CreateAnomaly records a reconciliation anomaly for operator review
	CreateAnomaly(ctx context.Context, anomaly *schema.ReconciliationAnomaly) error
	// ListAnomalies retrieves recorded anomalies, newest first
	ListAnomalies(ctx context.Context, unresolvedOnly bool, limit int) ([]schema.ReconciliationAnomaly, error)
}

// RevenueWriter is the single write path for the mirror's financial fields.
// Only the event synchronizer holds one; handing it to anything else breaks
// the single-writer rule the reconciliation design depends on.
type RevenueWriter interface {
	// ApplyLedgerEvent folds one ledger event into the mirror exactly once.
	// The processed-event insert, revenue mutation and claim-history append
	// happen in a single transaction.
	ApplyLedgerEvent(ctx context.Context, event *domain.LedgerEvent) (*ApplyResult, error)
	// HasProcessedEvent checks the processed-event set for a dedup key
	HasProcessedEvent(ctx context.Context, galleryAddress, dedupKey string) (bool, error)
}
