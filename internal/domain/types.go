package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// GalleryStatus is the lifecycle status of a mirrored gallery.
type GalleryStatus string

const (
	// GalleryStatusPending marks a gallery whose on-chain creation has not
	// been confirmed yet.
	GalleryStatusPending GalleryStatus = "pending"
	// GalleryStatusActive marks a confirmed gallery eligible for financial
	// operations.
	GalleryStatusActive GalleryStatus = "active"
	// GalleryStatusSuspended blocks all financial operations until the
	// gallery is reactivated.
	GalleryStatusSuspended GalleryStatus = "suspended"
)

// IsValidGalleryStatus checks if a status is one of the known values.
func IsValidGalleryStatus(s GalleryStatus) bool {
	return s == GalleryStatusPending || s == GalleryStatusActive || s == GalleryStatusSuspended
}

// LedgerEventKind identifies the kind of a gallery financial event.
type LedgerEventKind string

const (
	EventRevenueReceived LedgerEventKind = "revenue_received"
	EventRevenueClaimed  LedgerEventKind = "revenue_claimed"
)

// LedgerEvent is one immutable financial fact read from the ledger. Events
// are folded into the mirror exactly once, keyed by DedupKey.
type LedgerEvent struct {
	Kind           LedgerEventKind
	GalleryAddress string
	Amount         *Amount
	Timestamp      time.Time
	TxHash         string
	BlockNumber    uint64
	LogIndex       uint
}

// DedupKey returns the idempotence key for applying this event. Claims are
// keyed by transaction hash (one claim per transaction); revenue receipts
// use the block number / log index pair since several receipts can share a
// transaction.
func (e *LedgerEvent) DedupKey() string {
	if e.Kind == EventRevenueClaimed && e.TxHash != "" {
		return e.TxHash
	}
	return fmt.Sprintf("%d:%d", e.BlockNumber, e.LogIndex)
}

// GalleryCreation is the confirmed result of creating a gallery on the
// ledger.
type GalleryCreation struct {
	Address string
	TxHash  string
}

// GalleryDetails is a live read of a gallery's on-chain state.
type GalleryDetails struct {
	Name           string
	Description    string
	Curator        string
	TotalRevenue   *Amount
	PendingRevenue *Amount
	IsActive       bool
}

// ClaimReceipt is the confirmed result of a revenue claim.
type ClaimReceipt struct {
	TxHash string
}

// ClaimHistoryEntry is one past claim, ordered by application time and
// deduplicated by transaction hash.
type ClaimHistoryEntry struct {
	Amount    *Amount
	TxHash    string
	Timestamp time.Time
}

// NormalizeAddress lower-cases a ledger address for comparison and storage.
// Addresses are checksummed in transit but compared case-insensitively.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// IsValidAddress checks that a string is a well-formed ledger address.
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// AnomalyKind classifies a detected mirror/ledger inconsistency.
type AnomalyKind string

const (
	// AnomalyNegativePending is recorded when applying a claim would drive
	// the mirrored pending payout below zero, indicating a missed or
	// reordered RevenueReceived event.
	AnomalyNegativePending AnomalyKind = "negative_pending"
	// AnomalyStatusDivergence is recorded when a live read disagrees with
	// the mirror beyond what the unprocessed-event window explains.
	AnomalyStatusDivergence AnomalyKind = "status_divergence"
)
