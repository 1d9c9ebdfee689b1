package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// NewRevenueWriter creates the financial write path over the same database.
// Construct exactly one and hand it to the event synchronizer only.
func NewRevenueWriter(db *gorm.DB) RevenueWriter {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateGallery inserts a new mirrored gallery
func (s *pgStore) CreateGallery(ctx context.Context, gallery *schema.Gallery) error {
	gallery.LedgerAddress = domain.NormalizeAddress(gallery.LedgerAddress)

	err := s.db.WithContext(ctx).Create(gallery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrGalleryAlreadyExists
		}
		return fmt.Errorf("failed to create gallery: %w", err)
	}

	return nil
}

// GetGalleryByID retrieves a gallery by its internal ID
func (s *pgStore) GetGalleryByID(ctx context.Context, id string) (*schema.Gallery, error) {
	var gallery schema.Gallery
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&gallery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGalleryNotFound
		}
		return nil, fmt.Errorf("failed to get gallery %s: %w", id, err)
	}

	return &gallery, nil
}

// GetGalleryByAddress retrieves a gallery by its ledger address
func (s *pgStore) GetGalleryByAddress(ctx context.Context, address string) (*schema.Gallery, error) {
	var gallery schema.Gallery
	err := s.db.WithContext(ctx).
		Where("ledger_address = ?", domain.NormalizeAddress(address)).
		First(&gallery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGalleryNotFound
		}
		return nil, fmt.Errorf("failed to get gallery by address %s: %w", address, err)
	}

	return &gallery, nil
}

// ListGalleriesByStatus retrieves all galleries with the given status
func (s *pgStore) ListGalleriesByStatus(ctx context.Context, status domain.GalleryStatus) ([]schema.Gallery, error) {
	var galleries []schema.Gallery
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&galleries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries by status %s: %w", status, err)
	}

	return galleries, nil
}

// ListGalleriesByCurator retrieves all galleries owned by a curator
func (s *pgStore) ListGalleriesByCurator(ctx context.Context, curatorID string) ([]schema.Gallery, error) {
	var galleries []schema.Gallery
	err := s.db.WithContext(ctx).
		Where("curator_id = ?", curatorID).
		Order("created_at DESC").
		Find(&galleries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries for curator %s: %w", curatorID, err)
	}

	return galleries, nil
}

// UpdateGalleryStatus changes a gallery's lifecycle status and rebuilds the
// owning curator's denormalized gallery list in the same transaction
func (s *pgStore) UpdateGalleryStatus(ctx context.Context, id string, status domain.GalleryStatus) error {
	if !domain.IsValidGalleryStatus(status) {
		return fmt.Errorf("invalid gallery status %q", status)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var gallery schema.Gallery
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&gallery).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrGalleryNotFound
			}
			return fmt.Errorf("failed to load gallery %s: %w", id, err)
		}

		if err := tx.Model(&schema.Gallery{}).
			Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update gallery status: %w", err)
		}

		return syncCuratorGalleries(tx, gallery.CuratorID)
	})
}

// UpdateGalleryStats updates the advisory display counters
func (s *pgStore) UpdateGalleryStats(ctx context.Context, id string, stats GalleryStats) error {
	res := s.db.WithContext(ctx).Model(&schema.Gallery{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"artwork_count": stats.ArtworkCount,
			"artist_count":  stats.ArtistCount,
			"visitor_count": stats.VisitorCount,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update gallery stats: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrGalleryNotFound
	}

	return nil
}

// ListClaimHistory retrieves a gallery's claim records, newest first
func (s *pgStore) ListClaimHistory(ctx context.Context, galleryID string, limit, offset int) ([]schema.ClaimRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var records []schema.ClaimRecord
	err := s.db.WithContext(ctx).
		Where("gallery_id = ?", galleryID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list claim history for gallery %s: %w", galleryID, err)
	}

	return records, nil
}

// CreateCurator inserts a new curator
func (s *pgStore) CreateCurator(ctx context.Context, curator *schema.Curator) error {
	curator.WalletAddress = domain.NormalizeAddress(curator.WalletAddress)
	if curator.Galleries == nil {
		curator.Galleries = []byte("[]")
	}

	if err := s.db.WithContext(ctx).Create(curator).Error; err != nil {
		return fmt.Errorf("failed to create curator: %w", err)
	}

	return nil
}

// GetCurator retrieves a curator by internal ID
func (s *pgStore) GetCurator(ctx context.Context, id string) (*schema.Curator, error) {
	var curator schema.Curator
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&curator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCuratorNotFound
		}
		return nil, fmt.Errorf("failed to get curator %s: %w", id, err)
	}

	return &curator, nil
}

// GetCuratorByWallet retrieves a curator by wallet address
func (s *pgStore) GetCuratorByWallet(ctx context.Context, address string) (*schema.Curator, error) {
	var curator schema.Curator
	err := s.db.WithContext(ctx).
		Where("wallet_address = ?", domain.NormalizeAddress(address)).
		First(&curator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCuratorNotFound
		}
		return nil, fmt.Errorf("failed to get curator by wallet %s: %w", address, err)
	}

	return &curator, nil
}

// AppendCuratorGallery appends one entry to a curator's denormalized gallery
// list and bumps the count
func (s *pgStore) AppendCuratorGallery(ctx context.Context, curatorID string, ref schema.CuratorGalleryRef) error {
	ref.Address = domain.NormalizeAddress(ref.Address)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var curator schema.Curator
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", curatorID).First(&curator).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCuratorNotFound
			}
			return fmt.Errorf("failed to load curator %s: %w", curatorID, err)
		}

		var refs []schema.CuratorGalleryRef
		if len(curator.Galleries) > 0 {
			if err := json.Unmarshal(curator.Galleries, &refs); err != nil {
				return fmt.Errorf("failed to decode curator gallery list: %w", err)
			}
		}
		refs = append(refs, ref)

		data, err := json.Marshal(refs)
		if err != nil {
			return fmt.Errorf("failed to encode curator gallery list: %w", err)
		}

		return tx.Model(&schema.Curator{}).
			Where("id = ?", curatorID).
			Updates(map[string]interface{}{
				"galleries":       data,
				"galleries_count": len(refs),
			}).Error
	})
}

// SyncCuratorGalleries rebuilds a curator's denormalized gallery list and
// count from the gallery rows
func (s *pgStore) SyncCuratorGalleries(ctx context.Context, curatorID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return syncCuratorGalleries(tx, curatorID)
	})
}

func syncCuratorGalleries(tx *gorm.DB, curatorID string) error {
	var galleries []schema.Gallery
	if err := tx.Where("curator_id = ?", curatorID).
		Order("created_at ASC").
		Find(&galleries).Error; err != nil {
		return fmt.Errorf("failed to list galleries for curator %s: %w", curatorID, err)
	}

	refs := make([]schema.CuratorGalleryRef, 0, len(galleries))
	for _, g := range galleries {
		refs = append(refs, schema.CuratorGalleryRef{
			Address:   g.LedgerAddress,
			Name:      g.Name,
			Status:    string(g.Status),
			CreatedAt: g.CreatedAt,
		})
	}

	data, err := json.Marshal(refs)
	if err != nil {
		return fmt.Errorf("failed to encode curator gallery list: %w", err)
	}

	res := tx.Model(&schema.Curator{}).
		Where("id = ?", curatorID).
		Updates(map[string]interface{}{
			"galleries":       data,
			"galleries_count": len(refs),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to sync curator gallery list: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCuratorNotFound
	}

	return nil
}

// CreateAnomaly records a reconciliation anomaly for operator review
func (s *pgStore) CreateAnomaly(ctx context.Context, anomaly *schema.ReconciliationAnomaly) error {
	anomaly.GalleryAddress = domain.NormalizeAddress(anomaly.GalleryAddress)

	if err := s.db.WithContext(ctx).Create(anomaly).Error; err != nil {
		return fmt.Errorf("failed to create anomaly: %w", err)
	}

	return nil
}

// ListAnomalies retrieves recorded anomalies, newest first
func (s *pgStore) ListAnomalies(ctx context.Context, unresolvedOnly bool, limit int) ([]schema.ReconciliationAnomaly, error) {
	if limit <= 0 {
		limit = 100
	}

	q := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if unresolvedOnly {
		q = q.Where("resolved = false")
	}

	var anomalies []schema.ReconciliationAnomaly
	if err := q.Find(&anomalies).Error; err != nil {
		return nil, fmt.Errorf("failed to list anomalies: %w", err)
	}

	return anomalies, nil
}

// HasProcessedEvent checks the processed-event set for a dedup key
func (s *pgStore) HasProcessedEvent(ctx context.Context, galleryAddress, dedupKey string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.LedgerEventRecord{}).
		Where("gallery_address = ? AND dedup_key = ?", domain.NormalizeAddress(galleryAddress), dedupKey).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check processed event: %w", err)
	}

	return count > 0, nil
}

// ApplyLedgerEvent folds one ledger event into the mirror exactly once
func (s *pgStore) ApplyLedgerEvent(ctx context.Context, event *domain.LedgerEvent) (*ApplyResult, error) {
	if event.Amount == nil {
		return nil, fmt.Errorf("ledger event without amount")
	}

	address := domain.NormalizeAddress(event.GalleryAddress)
	result := &ApplyResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Processed-set insert doubles as the idempotence gate: a conflict
		// means another observation of the same event already got here.
		record := schema.LedgerEventRecord{
			GalleryAddress: address,
			DedupKey:       event.DedupKey(),
			Kind:           string(event.Kind),
			Amount:         event.Amount.String(),
			TxHash:         event.TxHash,
			BlockNumber:    event.BlockNumber,
			LogIndex:       event.LogIndex,
			Timestamp:      event.Timestamp,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
		if res.Error != nil {
			return fmt.Errorf("failed to record ledger event: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil // already applied
		}

		var gallery schema.Gallery
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("ledger_address = ?", address).
			First(&gallery).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrGalleryNotFound
			}
			return fmt.Errorf("failed to load gallery %s: %w", address, err)
		}

		totalEarned, err := domain.ParseAmount(gallery.TotalEarned)
		if err != nil {
			return fmt.Errorf("corrupt total_earned for gallery %s: %w", address, err)
		}
		pendingPayout, err := domain.ParseAmount(gallery.PendingPayout)
		if err != nil {
			return fmt.Errorf("corrupt pending_payout for gallery %s: %w", address, err)
		}

		updates := map[string]interface{}{}

		switch event.Kind {
		case domain.EventRevenueReceived:
			updates["total_earned"] = totalEarned.Add(event.Amount).String()
			updates["pending_payout"] = pendingPayout.Add(event.Amount).String()

		case domain.EventRevenueClaimed:
			claim := schema.ClaimRecord{
				GalleryID:    gallery.ID,
				Amount:       event.Amount.String(),
				LedgerTxHash: event.TxHash,
				Timestamp:    event.Timestamp,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&claim).Error; err != nil {
				return fmt.Errorf("failed to append claim record: %w", err)
			}

			newPending, ok := pendingPayout.Sub(event.Amount)
			if !ok {
				// A claim larger than the mirrored pending means a missed
				// or reordered RevenueReceived. Clamp, but report so the
				// caller records the anomaly.
				result.NegativePending = true
			}
			updates["pending_payout"] = newPending.String()
			updates["last_claim_date"] = event.Timestamp

		default:
			return fmt.Errorf("unknown ledger event kind %q", event.Kind)
		}

		if err := tx.Model(&schema.Gallery{}).
			Where("id = ?", gallery.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to apply %s to gallery %s: %w", event.Kind, address, err)
		}

		result.Applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
