package synchronizer

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artblock/gallery-reconciler/internal/adapter"
	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/mocks"
	"github.com/artblock/gallery-reconciler/internal/store"
	"github.com/artblock/gallery-reconciler/internal/store/schema"
)

const (
	galleryOne = "0x1000000000000000000000000000000000000001"
	galleryTwo = "0x2000000000000000000000000000000000000002"
)

type syncFixture struct {
	store     *mocks.MockStore
	writer    *mocks.MockRevenueWriter
	gateway   *mocks.MockGateway
	publisher *mocks.MockPublisher
	sync      *eventSynchronizer
}

func newSyncFixture(t *testing.T, ctrl *gomock.Controller) *syncFixture {
	t.Helper()

	f := &syncFixture{
		store:     mocks.NewMockStore(ctrl),
		writer:    mocks.NewMockRevenueWriter(ctrl),
		gateway:   mocks.NewMockGateway(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}

	s := NewEventSynchronizer(&Config{
		PollInterval:   time.Second,
		BlockWindow:    10,
		GalleryTimeout: 5 * time.Second,
		WorkerPoolSize: 2,
	}, f.store, f.writer, f.gateway, f.publisher, adapter.NewClock())

	f.sync = s.(*eventSynchronizer)
	return f
}

func activeGallery(address string) schema.Gallery {
	return schema.Gallery{
		ID:            "a26e1bb3-9c0b-4f9e-9a57-0f1f7d9f1b01",
		LedgerAddress: address,
		CuratorID:     "b6a4c2f0-1111-4222-8333-944455566677",
		Status:        domain.GalleryStatusActive,
		TotalEarned:   "1000",
		PendingPayout: "400",
	}
}

func receivedEvent(address string, amount string, block uint64, index uint) domain.LedgerEvent {
	return domain.LedgerEvent{
		Kind:           domain.EventRevenueReceived,
		GalleryAddress: address,
		Amount:         domain.MustParseAmount(amount),
		Timestamp:      time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
		TxHash:         "0xaaa",
		BlockNumber:    block,
		LogIndex:       index,
	}
}

func claimedEvent(address string, amount string, block uint64, index uint) domain.LedgerEvent {
	return domain.LedgerEvent{
		Kind:           domain.EventRevenueClaimed,
		GalleryAddress: address,
		Amount:         domain.MustParseAmount(amount),
		Timestamp:      time.Date(2025, 7, 1, 9, 5, 0, 0, time.UTC),
		TxHash:         "0xbbb",
		BlockNumber:    block,
		LogIndex:       index,
	}
}

func liveActive() *domain.GalleryDetails {
	return &domain.GalleryDetails{
		TotalRevenue:   domain.MustParseAmount("1000"),
		PendingRevenue: domain.MustParseAmount("400"),
		IsActive:       true,
	}
}

func TestRunSyncCycleAppliesEventsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)

	events := []domain.LedgerEvent{
		receivedEvent(galleryOne, "100", 92, 0),
		claimedEvent(galleryOne, "100", 95, 1),
	}

	f.gateway.EXPECT().LatestBlock(gomock.Any()).Return(uint64(100), nil)
	f.store.EXPECT().ListGalleriesByStatus(gomock.Any(), domain.GalleryStatusActive).
		Return([]schema.Gallery{activeGallery(galleryOne)}, nil)
	f.gateway.EXPECT().QueryEvents(gomock.Any(), galleryOne, uint64(90), uint64(100)).Return(events, nil)
	f.gateway.EXPECT().GetGalleryDetails(gomock.Any(), galleryOne).Return(liveActive(), nil)

	gomock.InOrder(
		f.writer.EXPECT().ApplyLedgerEvent(gomock.Any(), &events[0]).Return(&store.ApplyResult{Applied: true}, nil),
		f.writer.EXPECT().ApplyLedgerEvent(gomock.Any(), &events[1]).Return(&store.ApplyResult{Applied: true}, nil),
	)
	f.publisher.EXPECT().PublishGalleryMessage(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.NoError(t, f.sync.runSyncCycle(context.Background()))
}

func TestRunSyncCycleSkipsDuplicateEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)

	event := receivedEvent(galleryOne, "100", 92, 0)

	f.gateway.EXPECT().LatestBlock(gomock.Any()).Return(uint64(100), nil)
	f.store.EXPECT().ListGalleriesByStatus(gomock.Any(), domain.GalleryStatusActive).
		Return([]schema.Gallery{activeGallery(galleryOne)}, nil)
	f.gateway.EXPECT().QueryEvents(gomock.Any(), galleryOne, uint64(90), uint64(100)).
		Return([]domain.LedgerEvent{event}, nil)
	f.gateway.EXPECT().GetGalleryDetails(gomock.Any(), galleryOne).Return(liveActive(), nil)

	// already processed in an earlier cycle; nothing is published
	f.writer.EXPECT().ApplyLedgerEvent(gomock.Any(), &event).Return(&store.ApplyResult{Applied: false}, nil)

	require.NoError(t, f.sync.runSyncCycle(context.Background()))
}

func TestRunSyncCycleRecordsNegativePendingAnomaly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)

	event := claimedEvent(galleryOne, "900", 95, 0)

	runCycle := func() {
		f.gateway.EXPECT().LatestBlock(gomock.Any()).Return(uint64(100), nil)
		f.store.EXPECT().ListGalleriesByStatus(gomock.Any(), domain.GalleryStatusActive).
			Return([]schema.Gallery{activeGallery(galleryOne)}, nil)
		f.gateway.EXPECT().QueryEvents(gomock.Any(), galleryOne, uint64(90), uint64(100)).
			Return([]domain.LedgerEvent{event}, nil)
		f.gateway.EXPECT().GetGalleryDetails(gomock.Any(), galleryOne).Return(liveActive(), nil)
		f.writer.EXPECT().ApplyLedgerEvent(gomock.Any(), &event).
			Return(&store.ApplyResult{Applied: true, NegativePending: true}, nil)
	}

	// anomaly row + anomaly message + revenue message on the first cycle
	runCycle()
	f.store.EXPECT().CreateAnomaly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, anomaly *schema.ReconciliationAnomaly) error {
			assert.Equal(t, galleryOne, anomaly.GalleryAddress)
			assert.Equal(t, string(domain.AnomalyNegativePending), anomaly.Kind)
			assert.NotEmpty(t, anomaly.ID)
			assert.Contains(t, anomaly.Detail, "clamped")
			return nil
		})
	f.publisher.EXPECT().PublishGalleryMessage(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.NoError(t, f.sync.runSyncCycle(context.Background()))

	// the same anomaly is not recorded again within the process run
	runCycle()
	f.publisher.EXPECT().PublishGalleryMessage(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.sync.runSyncCycle(context.Background()))
}

func TestRunSyncCycleIsolatesGalleryFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)

	event := receivedEvent(galleryTwo, "50", 93, 0)

	f.gateway.EXPECT().LatestBlock(gomock.Any()).Return(uint64(100), nil)
	f.store.EXPECT().ListGalleriesByStatus(gomock.Any(), domain.GalleryStatusActive).
		Return([]schema.Gallery{activeGallery(galleryOne), activeGallery(galleryTwo)}, nil)

	f.gateway.EXPECT().QueryEvents(gomock.Any(), galleryOne, uint64(90), uint64(100)).
		Return(nil, domain.ErrLedgerUnavailable)
	f.gateway.EXPECT().QueryEvents(gomock.Any(), galleryTwo, uint64(90), uint64(100)).
		Return([]domain.LedgerEvent{event}, nil)
	f.gateway.EXPECT().GetGalleryDetails(gomock.Any(), galleryTwo).Return(liveActive(), nil)

	f.writer.EXPECT().ApplyLedgerEvent(gomock.Any(), &event).Return(&store.ApplyResult{Applied: true}, nil)
	f.publisher.EXPECT().PublishGalleryMessage(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.sync.runSyncCycle(context.Background()))
}

func TestRunSyncCycleRecordsStatusDivergence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)

	inactive := liveActive()
	inactive.IsActive = false

	f.gateway.EXPECT().LatestBlock(gomock.Any()).Return(uint64(100), nil)
	f.store.EXPECT().ListGalleriesByStatus(gomock.Any(), domain.GalleryStatusActive).
		Return([]schema.Gallery{activeGallery(galleryOne)}, nil)
	f.gateway.EXPECT().QueryEvents(gomock.Any(), galleryOne, uint64(90), uint64(100)).Return(nil, nil)
	f.gateway.EXPECT().GetGalleryDetails(gomock.Any(), galleryOne).Return(inactive, nil)

	f.store.EXPECT().CreateAnomaly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, anomaly *schema.ReconciliationAnomaly) error {
			assert.Equal(t, string(domain.AnomalyStatusDivergence), anomaly.Kind)
			return nil
		})
	f.publisher.EXPECT().PublishGalleryMessage(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.sync.runSyncCycle(context.Background()))
}

func TestRunSyncCycleSkipsWhenLedgerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)

	f.gateway.EXPECT().LatestBlock(gomock.Any()).Return(uint64(0), domain.ErrLedgerUnavailable)

	err := f.sync.runSyncCycle(context.Background())
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestRunSyncCycleSmallChainWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)

	// fewer blocks than the window: start from genesis
	f.gateway.EXPECT().LatestBlock(gomock.Any()).Return(uint64(6), nil)
	f.store.EXPECT().ListGalleriesByStatus(gomock.Any(), domain.GalleryStatusActive).
		Return([]schema.Gallery{activeGallery(galleryOne)}, nil)
	f.gateway.EXPECT().QueryEvents(gomock.Any(), galleryOne, uint64(0), uint64(6)).Return(nil, nil)
	f.gateway.EXPECT().GetGalleryDetails(gomock.Any(), galleryOne).Return(liveActive(), nil)

	require.NoError(t, f.sync.runSyncCycle(context.Background()))
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)

	f.gateway.EXPECT().LatestBlock(gomock.Any()).Return(uint64(100), nil).AnyTimes()
	f.store.EXPECT().ListGalleriesByStatus(gomock.Any(), domain.GalleryStatusActive).
		Return(nil, nil).AnyTimes()

	started := make(chan error, 1)
	go func() {
		started <- f.sync.Start(context.Background())
	}()

	// give the loop a moment to enter its first cycle
	time.Sleep(100 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.sync.Stop(stopCtx))

	select {
	case err := <-started:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("synchronizer did not stop")
	}
}

func TestStartRejectsDoubleStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	f.sync.running.Store(true)

	err := f.sync.Start(context.Background())
	assert.EqualError(t, err, "synchronizer already running")
}
