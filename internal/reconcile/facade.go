package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artblock/gallery-reconciler/internal/adapter"
	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/guard"
	"github.com/artblock/gallery-reconciler/internal/ledger"
	"github.com/artblock/gallery-reconciler/internal/logger"
	"github.com/artblock/gallery-reconciler/internal/messaging"
	"github.com/artblock/gallery-reconciler/internal/store"
	"github.com/artblock/gallery-reconciler/internal/store/schema"
)

// GalleryView is a read model of one gallery: the mirror row, optionally
// augmented with a live ledger read. Live figures are display-only and never
// written back to the mirror.
type GalleryView struct {
	Gallery *schema.Gallery
	Live    *domain.GalleryDetails
}

// Service is the curator-facing surface of the reconciliation facade.
// Transport handlers depend on this interface rather than the concrete
// facade.
//
//go:generate mockgen -source=facade.go -destination=../mocks/service.go -package=mocks -mock_names=Service=MockService
type Service interface {
	// EnsureCurator returns the curator mirrored for a wallet address,
	// creating the row on first sight
	EnsureCurator(ctx context.Context, walletAddress, displayName string) (*schema.Curator, error)
	// RegisterGallery creates a gallery on the ledger and mirrors it locally
	RegisterGallery(ctx context.Context, curatorID, name, description string) (*schema.Gallery, error)
	// GetGalleryView reads a gallery from the mirror, optionally augmented
	// with a live ledger read
	GetGalleryView(ctx context.Context, galleryID string, live bool) (*GalleryView, error)
	// ListCuratorGalleries lists a curator's mirrored galleries
	ListCuratorGalleries(ctx context.Context, curatorID string) ([]schema.Gallery, error)
	// ClaimRevenue validates and submits a revenue claim for a gallery
	ClaimRevenue(ctx context.Context, galleryID, curatorID string) (*domain.ClaimReceipt, error)
	// GetClaimHistory lists a gallery's past claims, newest first
	GetClaimHistory(ctx context.Context, galleryID, curatorID string, limit, offset int) ([]domain.ClaimHistoryEntry, error)
	// UpdateGalleryStats updates a gallery's advisory display counters
	UpdateGalleryStats(ctx context.Context, galleryID, curatorID string, stats store.GalleryStats) error
	// SetGalleryStatus transitions a gallery's lifecycle status
	SetGalleryStatus(ctx context.Context, galleryID string, status domain.GalleryStatus) error
	// ListAnomalies lists recorded reconciliation anomalies
	ListAnomalies(ctx context.Context, unresolvedOnly bool, limit int) ([]schema.ReconciliationAnomaly, error)
	// PreviewSaleSplit computes the artist/gallery/platform division of a
	// sale at the given minor-unit price
	PreviewSaleSplit(ctx context.Context, price string) (*domain.SaleSplit, error)
}

// Facade is the application service tying the mirror, the ledger gateway,
// the claim guard and the message broker together. All curator-facing
// operations go through here.
type Facade struct {
	store     store.Store
	gateway   ledger.Gateway
	guard     *guard.ClaimGuard
	locker    *guard.AddressLocker
	publisher messaging.Publisher
	clock     adapter.Clock
}

var _ Service = (*Facade)(nil)

// NewFacade creates a reconciliation facade
func NewFacade(
	st store.Store,
	gateway ledger.Gateway,
	claimGuard *guard.ClaimGuard,
	locker *guard.AddressLocker,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Facade {
	return &Facade{
		store:     st,
		gateway:   gateway,
		guard:     claimGuard,
		locker:    locker,
		publisher: publisher,
		clock:     clock,
	}
}

// EnsureCurator returns the curator mirrored for a wallet address, creating
// the row on first sight
func (f *Facade) EnsureCurator(ctx context.Context, walletAddress, displayName string) (*schema.Curator, error) {
	if !domain.IsValidAddress(walletAddress) {
		return nil, fmt.Errorf("invalid wallet address %q", walletAddress)
	}

	curator, err := f.store.GetCuratorByWallet(ctx, walletAddress)
	if err == nil {
		return curator, nil
	}
	if !errors.Is(err, domain.ErrCuratorNotFound) {
		return nil, err
	}

	curator = &schema.Curator{
		ID:            uuid.NewString(),
		WalletAddress: domain.NormalizeAddress(walletAddress),
		DisplayName:   displayName,
	}
	if err := f.store.CreateCurator(ctx, curator); err != nil {
		// Lost a race with a concurrent first request for the same wallet
		if existing, getErr := f.store.GetCuratorByWallet(ctx, walletAddress); getErr == nil {
			return existing, nil
		}
		return nil, err
	}

	return curator, nil
}

// RegisterGallery creates a gallery on the ledger and mirrors it locally.
// The mirror row is written only after the creation transaction is
// confirmed, with zeroed financial fields; the synchronizer takes it from
// there.
func (f *Facade) RegisterGallery(ctx context.Context, curatorID, name, description string) (*schema.Gallery, error) {
	if name == "" {
		return nil, fmt.Errorf("gallery name is required")
	}

	curator, err := f.store.GetCurator(ctx, curatorID)
	if err != nil {
		return nil, err
	}

	creation, err := f.gateway.CreateGallery(ctx, curator.WalletAddress, name, description)
	if err != nil {
		return nil, err
	}

	gallery := &schema.Gallery{
		ID:             uuid.NewString(),
		LedgerAddress:  domain.NormalizeAddress(creation.Address),
		CuratorID:      curator.ID,
		Name:           name,
		Description:    description,
		Status:         domain.GalleryStatusActive,
		CreationTxHash: creation.TxHash,
		TotalEarned:    "0",
		PendingPayout:  "0",
	}
	if err := f.store.CreateGallery(ctx, gallery); err != nil {
		// The on-chain gallery exists either way; surface the mirror
		// failure rather than pretending nothing happened.
		return nil, fmt.Errorf("gallery %s created on ledger but mirroring failed: %w", creation.Address, err)
	}

	if err := f.store.AppendCuratorGallery(ctx, curator.ID, schema.CuratorGalleryRef{
		Address:   gallery.LedgerAddress,
		Name:      gallery.Name,
		Status:    string(gallery.Status),
		CreatedAt: f.clock.Now(),
	}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to append gallery to curator list: %w", err),
			zap.String("curator_id", curator.ID),
			zap.String("gallery", gallery.LedgerAddress),
		)
	}

	f.publish(ctx, &domain.GalleryMessage{
		Kind:           domain.MessageGalleryCreated,
		GalleryAddress: gallery.LedgerAddress,
		CuratorID:      curator.ID,
		Status:         gallery.Status,
		TxHash:         creation.TxHash,
		Timestamp:      f.clock.Now(),
	})

	return gallery, nil
}

// GetGalleryView reads a gallery from the mirror, optionally augmented with
// a live ledger read for display
func (f *Facade) GetGalleryView(ctx context.Context, galleryID string, live bool) (*GalleryView, error) {
	gallery, err := f.store.GetGalleryByID(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	view := &GalleryView{Gallery: gallery}
	if !live {
		return view, nil
	}

	details, err := f.gateway.GetGalleryDetails(ctx, gallery.LedgerAddress)
	if err != nil {
		// The mirror is the fallback; a live read failure degrades the
		// view, it does not fail it.
		logger.WarnCtx(ctx, "Live gallery read failed, serving mirror only",
			zap.String("gallery", gallery.LedgerAddress),
			zap.Error(err),
		)
		return view, nil
	}

	view.Live = details
	return view, nil
}

// ListCuratorGalleries lists a curator's mirrored galleries
func (f *Facade) ListCuratorGalleries(ctx context.Context, curatorID string) ([]schema.Gallery, error) {
	if _, err := f.store.GetCurator(ctx, curatorID); err != nil {
		return nil, err
	}
	return f.store.ListGalleriesByCurator(ctx, curatorID)
}

// ClaimRevenue validates and submits a revenue claim for a gallery. The
// per-gallery lock is held from the first guard check through transaction
// confirmation so concurrent claims for the same gallery serialize. The
// mirror is deliberately not touched on success; the synchronizer folds the
// resulting RevenueClaimed event in on its next pass.
func (f *Facade) ClaimRevenue(ctx context.Context, galleryID, curatorID string) (*domain.ClaimReceipt, error) {
	gallery, err := f.store.GetGalleryByID(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	release := f.locker.Lock(gallery.LedgerAddress)
	defer release()

	// Re-read under the lock; a serialized earlier claim may have changed
	// the picture.
	gallery, err = f.store.GetGalleryByID(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	live, err := f.guard.Validate(ctx, gallery, curatorID)
	if err != nil {
		return nil, err
	}

	curator, err := f.store.GetCurator(ctx, curatorID)
	if err != nil {
		return nil, err
	}

	receipt, err := f.gateway.SubmitClaim(ctx, gallery.LedgerAddress, curator.WalletAddress)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Revenue claim confirmed",
		zap.String("gallery", gallery.LedgerAddress),
		zap.String("curator_id", curatorID),
		zap.String("tx_hash", receipt.TxHash),
		zap.String("claimed_amount", live.PendingRevenue.String()),
	)

	f.publish(ctx, &domain.GalleryMessage{
		Kind:           domain.MessageClaimSubmitted,
		GalleryAddress: gallery.LedgerAddress,
		CuratorID:      curatorID,
		Amount:         live.PendingRevenue.String(),
		TxHash:         receipt.TxHash,
		Timestamp:      f.clock.Now(),
	})

	return receipt, nil
}

// GetClaimHistory lists a gallery's past claims, newest first, for its
// owning curator
func (f *Facade) GetClaimHistory(ctx context.Context, galleryID, curatorID string, limit, offset int) ([]domain.ClaimHistoryEntry, error) {
	gallery, err := f.store.GetGalleryByID(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	if gallery.CuratorID != curatorID {
		return nil, domain.ErrNotAuthorized
	}

	records, err := f.store.ListClaimHistory(ctx, galleryID, limit, offset)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ClaimHistoryEntry, 0, len(records))
	for _, record := range records {
		amount, err := domain.ParseAmount(record.Amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt claim record %d: %w", record.ID, err)
		}
		entries = append(entries, domain.ClaimHistoryEntry{
			Amount:    amount,
			TxHash:    record.LedgerTxHash,
			Timestamp: record.Timestamp,
		})
	}

	return entries, nil
}

// UpdateGalleryStats updates a gallery's advisory display counters on behalf
// of its owning curator
func (f *Facade) UpdateGalleryStats(ctx context.Context, galleryID, curatorID string, stats store.GalleryStats) error {
	gallery, err := f.store.GetGalleryByID(ctx, galleryID)
	if err != nil {
		return err
	}
	if gallery.CuratorID != curatorID {
		return domain.ErrNotAuthorized
	}

	return f.store.UpdateGalleryStats(ctx, galleryID, stats)
}

// SetGalleryStatus transitions a gallery's lifecycle status and announces
// the change. Suspension blocks claims immediately through the guard.
func (f *Facade) SetGalleryStatus(ctx context.Context, galleryID string, status domain.GalleryStatus) error {
	if !domain.IsValidGalleryStatus(status) {
		return fmt.Errorf("invalid gallery status %q", status)
	}

	gallery, err := f.store.GetGalleryByID(ctx, galleryID)
	if err != nil {
		return err
	}
	if gallery.Status == status {
		return nil
	}

	if err := f.store.UpdateGalleryStatus(ctx, galleryID, status); err != nil {
		return err
	}

	f.publish(ctx, &domain.GalleryMessage{
		Kind:           domain.MessageStatusChanged,
		GalleryAddress: gallery.LedgerAddress,
		CuratorID:      gallery.CuratorID,
		Status:         status,
		Timestamp:      f.clock.Now(),
	})

	return nil
}

// ListAnomalies lists recorded reconciliation anomalies for operator review
func (f *Facade) ListAnomalies(ctx context.Context, unresolvedOnly bool, limit int) ([]schema.ReconciliationAnomaly, error) {
	return f.store.ListAnomalies(ctx, unresolvedOnly, limit)
}

// PreviewSaleSplit computes the artist/gallery/platform division a sale at
// the given price would settle at, using the contract's default shares. The
// figures mirror the on-chain arithmetic exactly; the remainder after the
// truncated artist and gallery shares goes to the platform.
func (f *Facade) PreviewSaleSplit(_ context.Context, price string) (*domain.SaleSplit, error) {
	amount, err := domain.ParseAmount(price)
	if err != nil {
		return nil, fmt.Errorf("invalid sale price: %w", err)
	}

	return domain.SplitSale(amount, domain.DefaultArtistShareBps, domain.DefaultGalleryShareBps)
}

// publish sends a message to the broker; a broker outage never fails the
// user-facing operation
func (f *Facade) publish(ctx context.Context, msg *domain.GalleryMessage) {
	if err := f.publisher.PublishGalleryMessage(ctx, msg); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish gallery message: %w", err),
			zap.String("gallery", msg.GalleryAddress),
			zap.String("kind", string(msg.Kind)),
		)
	}
}
