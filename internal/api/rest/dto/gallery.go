package dto

import (
	"time"

	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/reconcile"
	"github.com/artblock/gallery-reconciler/internal/store/schema"
)

// RegisterGalleryRequest is the payload for creating a gallery
type RegisterGalleryRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	// CuratorName names the curator on first registration; ignored once the
	// curator exists
	CuratorName string `json:"curator_name" binding:"max=200"`
}

// UpdateStatsRequest is the payload for updating display counters
type UpdateStatsRequest struct {
	ArtworkCount int `json:"artwork_count" binding:"min=0"`
	ArtistCount  int `json:"artist_count" binding:"min=0"`
	VisitorCount int `json:"visitor_count" binding:"min=0"`
}

// SetStatusRequest is the payload for a gallery lifecycle transition
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// LiveFigures carries display-only figures read straight from the ledger
type LiveFigures struct {
	TotalRevenue   string `json:"total_revenue"`
	PendingRevenue string `json:"pending_revenue"`
	IsActive       bool   `json:"is_active"`
}

// GalleryResponse is the API representation of a mirrored gallery
type GalleryResponse struct {
	ID             string       `json:"id"`
	LedgerAddress  string       `json:"ledger_address"`
	CuratorID      string       `json:"curator_id"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	Status         string       `json:"status"`
	CreationTxHash string       `json:"creation_tx_hash,omitempty"`
	TotalEarned    string       `json:"total_earned"`
	PendingPayout  string       `json:"pending_payout"`
	LastClaimDate  *time.Time   `json:"last_claim_date,omitempty"`
	ArtworkCount   int          `json:"artwork_count"`
	ArtistCount    int          `json:"artist_count"`
	VisitorCount   int          `json:"visitor_count"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Live           *LiveFigures `json:"live,omitempty"`
}

// SaleSplitResponse is the three-way division of a hypothetical sale
type SaleSplitResponse struct {
	Price    string `json:"price"`
	Artist   string `json:"artist"`
	Gallery  string `json:"gallery"`
	Platform string `json:"platform"`
}

// ClaimResponse is returned after a confirmed revenue claim
type ClaimResponse struct {
	TxHash string `json:"tx_hash"`
}

// ClaimHistoryEntryResponse is one past claim
type ClaimHistoryEntryResponse struct {
	Amount    string    `json:"amount"`
	TxHash    string    `json:"tx_hash"`
	Timestamp time.Time `json:"timestamp"`
}

// AnomalyResponse is one recorded reconciliation anomaly
type AnomalyResponse struct {
	ID             string    `json:"id"`
	GalleryAddress string    `json:"gallery_address"`
	Kind           string    `json:"kind"`
	Detail         string    `json:"detail"`
	Resolved       bool      `json:"resolved"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromGallery maps a mirrored gallery row to its API representation
func FromGallery(gallery *schema.Gallery) GalleryResponse {
	return GalleryResponse{
		ID:             gallery.ID,
		LedgerAddress:  gallery.LedgerAddress,
		CuratorID:      gallery.CuratorID,
		Name:           gallery.Name,
		Description:    gallery.Description,
		Status:         string(gallery.Status),
		CreationTxHash: gallery.CreationTxHash,
		TotalEarned:    gallery.TotalEarned,
		PendingPayout:  gallery.PendingPayout,
		LastClaimDate:  gallery.LastClaimDate,
		ArtworkCount:   gallery.ArtworkCount,
		ArtistCount:    gallery.ArtistCount,
		VisitorCount:   gallery.VisitorCount,
		CreatedAt:      gallery.CreatedAt,
		UpdatedAt:      gallery.UpdatedAt,
	}
}

// FromGalleryView maps a gallery view, carrying live figures when present
func FromGalleryView(view *reconcile.GalleryView) GalleryResponse {
	response := FromGallery(view.Gallery)
	if view.Live != nil {
		response.Live = &LiveFigures{
			TotalRevenue:   view.Live.TotalRevenue.String(),
			PendingRevenue: view.Live.PendingRevenue.String(),
			IsActive:       view.Live.IsActive,
		}
	}
	return response
}

// FromClaimHistory maps claim history entries to their API representation
func FromClaimHistory(entries []domain.ClaimHistoryEntry) []ClaimHistoryEntryResponse {
	responses := make([]ClaimHistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ClaimHistoryEntryResponse{
			Amount:    entry.Amount.String(),
			TxHash:    entry.TxHash,
			Timestamp: entry.Timestamp,
		})
	}
	return responses
}

// FromAnomalies maps anomaly rows to their API representation
func FromAnomalies(anomalies []schema.ReconciliationAnomaly) []AnomalyResponse {
	responses := make([]AnomalyResponse, 0, len(anomalies))
	for _, anomaly := range anomalies {
		responses = append(responses, AnomalyResponse{
			ID:             anomaly.ID,
			GalleryAddress: anomaly.GalleryAddress,
			Kind:           anomaly.Kind,
			Detail:         anomaly.Detail,
			Resolved:       anomaly.Resolved,
			CreatedAt:      anomaly.CreatedAt,
		})
	}
	return responses
}
