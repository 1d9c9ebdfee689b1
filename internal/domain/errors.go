package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLedgerUnavailable is returned when a ledger call failed
	// transiently. Callers may retry explicitly; the gateway never retries
	// state-mutating calls on its own.
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// ErrNotAuthorized is returned when the requesting curator does not own
	// the gallery.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrGalleryInvalid is returned when the gallery address is no longer
	// registered on the ledger.
	ErrGalleryInvalid = errors.New("gallery is not registered on the ledger")

	// ErrNoRevenueAvailable is returned when there is no pending revenue to
	// claim, per the ledger's live figure.
	ErrNoRevenueAvailable = errors.New("no revenue available to claim")

	// ErrGalleryNotFound is returned when a gallery is not in the mirror.
	ErrGalleryNotFound = errors.New("gallery not found")

	// ErrCuratorNotFound is returned when a curator is not in the mirror.
	ErrCuratorNotFound = errors.New("curator not found")

	// ErrGalleryAlreadyExists is returned when a gallery with the same
	// ledger address is already mirrored.
	ErrGalleryAlreadyExists = errors.New("gallery already exists")
)

// GalleryNotActiveError is returned when a financial operation is attempted
// against a gallery that is not active. It carries the current status so the
// caller can surface it.
type GalleryNotActiveError struct {
	Status GalleryStatus
}

func (e *GalleryNotActiveError) Error() string {
	return fmt.Sprintf("gallery is not active (current status: %s)", e.Status)
}

// ClaimAmbiguousError is returned when a claim submission was interrupted by
// caller cancellation after the transaction may have been sent. The claim
// may or may not have landed on the ledger; the caller must not assume
// failure.
type ClaimAmbiguousError struct {
	GalleryAddress string
	Err            error
}

func (e *ClaimAmbiguousError) Error() string {
	return fmt.Sprintf("claim for gallery %s interrupted, outcome unknown: %v", e.GalleryAddress, e.Err)
}

func (e *ClaimAmbiguousError) Unwrap() error {
	return e.Err
}
