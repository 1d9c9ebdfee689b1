package domain

import "time"

// GalleryMessageKind identifies the kind of a published gallery message.
type GalleryMessageKind string

const (
	// MessageGalleryCreated announces a newly confirmed gallery
	MessageGalleryCreated GalleryMessageKind = "created"
	// MessageStatusChanged announces a gallery lifecycle transition
	MessageStatusChanged GalleryMessageKind = "status_changed"
	// MessageRevenueApplied announces a ledger financial event folded into
	// the mirror
	MessageRevenueApplied GalleryMessageKind = "revenue_applied"
	// MessageClaimSubmitted announces a confirmed revenue claim submission
	MessageClaimSubmitted GalleryMessageKind = "claim_submitted"
	// MessageAnomalyDetected announces a recorded reconciliation anomaly
	MessageAnomalyDetected GalleryMessageKind = "anomaly_detected"
)

// GalleryMessage is the payload published to downstream consumers for every
// notable gallery event. Amounts are minor-unit decimal strings; fields not
// relevant to a kind are left empty.
type GalleryMessage struct {
	Kind           GalleryMessageKind `json:"kind"`
	GalleryAddress string             `json:"gallery_address"`
	CuratorID      string             `json:"curator_id,omitempty"`
	Status         GalleryStatus      `json:"status,omitempty"`
	Amount         string             `json:"amount,omitempty"`
	TxHash         string             `json:"tx_hash,omitempty"`
	Detail         string             `json:"detail,omitempty"`
	Timestamp      time.Time          `json:"timestamp"`
}
