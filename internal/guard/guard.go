package guard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/ledger"
	"github.com/artblock/gallery-reconciler/internal/logger"
	"github.com/artblock/gallery-reconciler/internal/store/schema"
)

// ClaimGuard validates a revenue claim before anything is submitted to the
// ledger. The checks run in a fixed order and short-circuit on the first
// failure: ownership, ledger registration, lifecycle status, and finally
// pending revenue. The pending check consults the mirror first as a cheap
// rejection, then reads the ledger live; the live figure is the one that
// counts.
type ClaimGuard struct {
	gateway ledger.Gateway
}

// NewClaimGuard creates a claim guard backed by the given ledger gateway
func NewClaimGuard(gateway ledger.Gateway) *ClaimGuard {
	return &ClaimGuard{gateway: gateway}
}

// Validate runs the claim check chain for a gallery on behalf of a curator.
// On success it returns the gallery's live details so the caller does not
// need a second ledger read before submitting.
func (g *ClaimGuard) Validate(ctx context.Context, gallery *schema.Gallery, curatorID string) (*domain.GalleryDetails, error) {
	if gallery.CuratorID != curatorID {
		logger.WarnCtx(ctx, "Claim attempt by non-owner",
			zap.String("gallery", gallery.LedgerAddress),
			zap.String("curator_id", curatorID),
		)
		return nil, domain.ErrNotAuthorized
	}

	registered, err := g.gateway.IsRegistered(ctx, gallery.LedgerAddress)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, domain.ErrGalleryInvalid
	}

	if gallery.Status != domain.GalleryStatusActive {
		return nil, &domain.GalleryNotActiveError{Status: gallery.Status}
	}

	mirrorPending, err := domain.ParseAmount(gallery.PendingPayout)
	if err != nil {
		return nil, fmt.Errorf("corrupt mirrored pending payout for gallery %s: %w", gallery.LedgerAddress, err)
	}
	if mirrorPending.IsZero() {
		return nil, domain.ErrNoRevenueAvailable
	}

	details, err := g.gateway.GetGalleryDetails(ctx, gallery.LedgerAddress)
	if err != nil {
		return nil, err
	}
	if details.PendingRevenue.IsZero() {
		// The mirror lags the ledger; the ledger wins.
		return nil, domain.ErrNoRevenueAvailable
	}

	return details, nil
}
