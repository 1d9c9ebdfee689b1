package synchronizer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/artblock/gallery-reconciler/internal/adapter"
	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/ledger"
	"github.com/artblock/gallery-reconciler/internal/logger"
	"github.com/artblock/gallery-reconciler/internal/messaging"
	"github.com/artblock/gallery-reconciler/internal/store"
	"github.com/artblock/gallery-reconciler/internal/store/schema"
)

const (
	DEFAULT_POLL_INTERVAL   = 30 * time.Second // Time to sleep between sync cycles
	DEFAULT_BLOCK_WINDOW    = 10               // Blocks to look back per cycle
	DEFAULT_GALLERY_TIMEOUT = 20 * time.Second // Per-gallery fetch budget within a cycle
	DEFAULT_WORKER_POOL     = 8                // Concurrent gallery fetches
)

// Config holds configuration for the event synchronizer
type Config struct {
	PollInterval   time.Duration
	BlockWindow    uint64
	GalleryTimeout time.Duration
	WorkerPoolSize int
}

// applyDefaults fills zero-valued fields with the documented defaults
func (c *Config) applyDefaults() {
	if c.PollInterval <= 0 {
		c.PollInterval = DEFAULT_POLL_INTERVAL
	}
	if c.BlockWindow == 0 {
		c.BlockWindow = DEFAULT_BLOCK_WINDOW
	}
	if c.GalleryTimeout <= 0 {
		c.GalleryTimeout = DEFAULT_GALLERY_TIMEOUT
	}
	if c.WorkerPoolSize <= 0 {
		c.WorkerPoolSize = DEFAULT_WORKER_POOL
	}
}

// Synchronizer defines the interface for the background reconciliation loop
//
//go:generate mockgen -source=synchronizer.go -destination=../mocks/synchronizer.go -package=mocks -mock_names=Synchronizer=MockSynchronizer
type Synchronizer interface {
	// Start begins the synchronizer's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the synchronizer
	// This should wait for the in-progress cycle to complete
	Stop(ctx context.Context) error

	// Name returns the synchronizer's name for logging and identification
	Name() string
}

// galleryFetch is the result of one gallery's concurrent ledger read. Events
// are fetched in parallel but applied serially; this struct carries them from
// the pool to the single writer.
type galleryFetch struct {
	gallery schema.Gallery
	events  []domain.LedgerEvent
	live    *domain.GalleryDetails
	err     error
}

// eventSynchronizer implements Synchronizer. It is the only component in the
// process holding a store.RevenueWriter: every financial mutation of the
// mirror flows through its serial apply phase.
type eventSynchronizer struct {
	config    *Config
	store     store.Store
	writer    store.RevenueWriter
	gateway   ledger.Gateway
	publisher messaging.Publisher
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}

	// reportedAnomalies dedups anomaly records within a process run so a
	// persistent divergence does not produce a new row every cycle
	reportedMu        sync.Mutex
	reportedAnomalies map[string]struct{}
}

// NewEventSynchronizer creates a new event synchronizer
func NewEventSynchronizer(
	config *Config,
	st store.Store,
	writer store.RevenueWriter,
	gateway ledger.Gateway,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Synchronizer {
	config.applyDefaults()

	return &eventSynchronizer{
		config:            config,
		store:             st,
		writer:            writer,
		gateway:           gateway,
		publisher:         publisher,
		clock:             clock,
		stopChan:          make(chan struct{}),
		stoppedCh:         make(chan struct{}),
		reportedAnomalies: make(map[string]struct{}),
	}
}

// Name returns the synchronizer's name
func (s *eventSynchronizer) Name() string {
	return "event-synchronizer"
}

// Start begins the synchronizer's main loop
func (s *eventSynchronizer) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("synchronizer already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting event synchronizer",
		zap.Duration("poll_interval", s.config.PollInterval),
		zap.Uint64("block_window", s.config.BlockWindow),
		zap.Duration("gallery_timeout", s.config.GalleryTimeout),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Event synchronizer stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Event synchronizer stop requested")
			return nil
		default:
			if err := s.runSyncCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}

			// Use context-aware sleep so we can be interrupted
			if !s.sleep(ctx, s.config.PollInterval) {
				continue // Stop or cancellation will be picked up by select
			}
		}
	}
}

// Stop gracefully stops the synchronizer with timeout support
func (s *eventSynchronizer) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping event synchronizer")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Event synchronizer stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Event synchronizer stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSyncCycle runs one reconciliation cycle: fetch every active gallery's
// recent event window in parallel, then fold the results into the mirror
// serially.
func (s *eventSynchronizer) runSyncCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	latest, err := s.gateway.LatestBlock(ctx)
	if err != nil {
		// Transient ledger trouble skips the cycle; the next one re-covers
		// the window.
		return fmt.Errorf("failed to read latest block: %w", err)
	}

	fromBlock := uint64(0)
	if latest > s.config.BlockWindow {
		fromBlock = latest - s.config.BlockWindow
	}

	galleries, err := s.store.ListGalleriesByStatus(ctx, domain.GalleryStatusActive)
	if err != nil {
		return fmt.Errorf("failed to list active galleries: %w", err)
	}
	if len(galleries) == 0 {
		return nil
	}

	logger.DebugCtx(ctx, "Starting sync cycle",
		zap.Uint64("from_block", fromBlock),
		zap.Uint64("to_block", latest),
		zap.Int("galleries", len(galleries)),
	)

	fetches := s.fetchGalleries(ctx, galleries, fromBlock, latest)

	var applied, skipped, failed int
	for i := range fetches {
		fetch := &fetches[i]
		if fetch.err != nil {
			// One gallery's failure never blocks the others
			failed++
			logger.ErrorCtx(ctx, fetch.err, zap.String("gallery", fetch.gallery.LedgerAddress))
			continue
		}

		a, sk := s.applyGalleryEvents(ctx, fetch)
		applied += a
		skipped += sk

		s.checkStatusDivergence(ctx, &fetch.gallery, fetch.live)
	}

	logger.InfoCtx(ctx, "Sync cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("galleries", len(galleries)),
		zap.Int("events_applied", applied),
		zap.Int("events_skipped", skipped),
		zap.Int("galleries_failed", failed),
	)

	return nil
}

// fetchGalleries reads each gallery's event window and live details
// concurrently. Only reads happen here; the mirror is untouched.
func (s *eventSynchronizer) fetchGalleries(ctx context.Context, galleries []schema.Gallery, fromBlock, toBlock uint64) []galleryFetch {
	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(len(galleries)),
		pond.WithContext(ctx),
	)

	fetches := make([]galleryFetch, len(galleries))
	for i := range galleries {
		fetches[i].gallery = galleries[i]

		pool.Submit(func() {
			fetchCtx, cancel := context.WithTimeout(ctx, s.config.GalleryTimeout)
			defer cancel()

			address := fetches[i].gallery.LedgerAddress

			events, err := s.gateway.QueryEvents(fetchCtx, address, fromBlock, toBlock)
			if err != nil {
				fetches[i].err = fmt.Errorf("failed to query events: %w", err)
				return
			}
			fetches[i].events = events

			live, err := s.gateway.GetGalleryDetails(fetchCtx, address)
			if err != nil {
				// Events are still applicable without the live read; only
				// the divergence check is lost this cycle.
				logger.WarnCtx(ctx, "Failed to read live gallery details",
					zap.String("gallery", address),
					zap.Error(err),
				)
				return
			}
			fetches[i].live = live
		})
	}

	pool.StopAndWait()
	return fetches
}

// applyGalleryEvents folds one gallery's fetched events into the mirror in
// (block, log index) order. Returns applied and skipped-as-duplicate counts.
func (s *eventSynchronizer) applyGalleryEvents(ctx context.Context, fetch *galleryFetch) (applied, skipped int) {
	for i := range fetch.events {
		event := &fetch.events[i]

		result, err := s.writer.ApplyLedgerEvent(ctx, event)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to apply ledger event: %w", err),
				zap.String("gallery", event.GalleryAddress),
				zap.String("dedup_key", event.DedupKey()),
			)
			continue
		}

		if !result.Applied {
			skipped++
			continue
		}
		applied++

		if result.NegativePending {
			s.recordAnomaly(ctx, event.GalleryAddress, domain.AnomalyNegativePending,
				fmt.Sprintf("claim of %s at %s exceeds mirrored pending payout; payout clamped to zero",
					event.Amount.String(), event.TxHash))
		}

		s.publish(ctx, &domain.GalleryMessage{
			Kind:           domain.MessageRevenueApplied,
			GalleryAddress: event.GalleryAddress,
			Amount:         event.Amount.String(),
			TxHash:         event.TxHash,
			Detail:         string(event.Kind),
			Timestamp:      event.Timestamp,
		})
	}

	return applied, skipped
}

// checkStatusDivergence compares the live activation flag against the mirror
// status. The mirror says active for every gallery in the cycle, so a live
// read saying otherwise is an inconsistency no unprocessed event explains.
func (s *eventSynchronizer) checkStatusDivergence(ctx context.Context, gallery *schema.Gallery, live *domain.GalleryDetails) {
	if live == nil || live.IsActive {
		return
	}

	s.recordAnomaly(ctx, gallery.LedgerAddress, domain.AnomalyStatusDivergence,
		fmt.Sprintf("mirror status is %s but ledger reports the gallery inactive", gallery.Status))
}

// recordAnomaly persists and publishes a reconciliation anomaly, at most once
// per (gallery, kind) per process run
func (s *eventSynchronizer) recordAnomaly(ctx context.Context, address string, kind domain.AnomalyKind, detail string) {
	key := address + ":" + string(kind)

	s.reportedMu.Lock()
	if _, seen := s.reportedAnomalies[key]; seen {
		s.reportedMu.Unlock()
		return
	}
	s.reportedAnomalies[key] = struct{}{}
	s.reportedMu.Unlock()

	logger.ErrorCtx(ctx, fmt.Errorf("reconciliation anomaly detected: %s", detail),
		zap.String("gallery", address),
		zap.String("kind", string(kind)),
	)

	anomaly := &schema.ReconciliationAnomaly{
		ID:             ulid.MustNewDefault(s.clock.Now()).String(),
		GalleryAddress: address,
		Kind:           string(kind),
		Detail:         detail,
	}
	if err := s.store.CreateAnomaly(ctx, anomaly); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record anomaly: %w", err),
			zap.String("gallery", address),
		)
	}

	s.publish(ctx, &domain.GalleryMessage{
		Kind:           domain.MessageAnomalyDetected,
		GalleryAddress: address,
		Detail:         detail,
		Timestamp:      s.clock.Now(),
	})
}

// publish sends a message to the broker, logging instead of failing the
// cycle when the broker is down
func (s *eventSynchronizer) publish(ctx context.Context, msg *domain.GalleryMessage) {
	if err := s.publisher.PublishGalleryMessage(ctx, msg); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish gallery message: %w", err),
			zap.String("gallery", msg.GalleryAddress),
			zap.String("kind", string(msg.Kind)),
		)
	}
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if sleep completed normally.
func (s *eventSynchronizer) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-s.stopChan:
		return false // Interrupted by stop signal
	}
}
