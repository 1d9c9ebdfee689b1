package reconcile_test

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artblock/gallery-reconciler/internal/adapter"
	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/guard"
	"github.com/artblock/gallery-reconciler/internal/mocks"
	"github.com/artblock/gallery-reconciler/internal/reconcile"
	"github.com/artblock/gallery-reconciler/internal/store"
	"github.com/artblock/gallery-reconciler/internal/store/schema"
)

const (
	testCuratorID  = "b6a4c2f0-1111-4222-8333-944455566677"
	testGalleryID  = "a26e1bb3-9c0b-4f9e-9a57-0f1f7d9f1b01"
	testAddress    = "0x8ba1f109551bd432803012645ac136ddd64dba72"
	testWallet     = "0x00000000219ab540356cbb839cbe05303d7705fa"
	otherCuratorID = "deadbeef-0000-4000-8000-000000000000"
)

type facadeFixture struct {
	store     *mocks.MockStore
	gateway   *mocks.MockGateway
	publisher *mocks.MockPublisher
	facade    *reconcile.Facade
}

func newFacadeFixture(t *testing.T, ctrl *gomock.Controller) *facadeFixture {
	t.Helper()

	f := &facadeFixture{
		store:     mocks.NewMockStore(ctrl),
		gateway:   mocks.NewMockGateway(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}

	f.facade = reconcile.NewFacade(
		f.store,
		f.gateway,
		guard.NewClaimGuard(f.gateway),
		guard.NewAddressLocker(),
		f.publisher,
		adapter.NewClock(),
	)
	return f
}

func testCurator() *schema.Curator {
	return &schema.Curator{
		ID:            testCuratorID,
		WalletAddress: testWallet,
		DisplayName:   "Ada",
	}
}

func testGallery(pending string) *schema.Gallery {
	return &schema.Gallery{
		ID:            testGalleryID,
		LedgerAddress: testAddress,
		CuratorID:     testCuratorID,
		Name:          "Modern Light",
		Status:        domain.GalleryStatusActive,
		TotalEarned:   "1000",
		PendingPayout: pending,
	}
}

func TestRegisterGallery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetCurator(gomock.Any(), testCuratorID).Return(testCurator(), nil)
	f.gateway.EXPECT().CreateGallery(gomock.Any(), testWallet, "Modern Light", "Contemporary art").
		Return(&domain.GalleryCreation{
			Address: "0x8Ba1f109551bD432803012645Ac136ddd64DBA72",
			TxHash:  "0xfeed",
		}, nil)

	f.store.EXPECT().CreateGallery(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, gallery *schema.Gallery) error {
			assert.NotEmpty(t, gallery.ID)
			assert.Equal(t, testAddress, gallery.LedgerAddress, "address must be normalized")
			assert.Equal(t, domain.GalleryStatusActive, gallery.Status)
			assert.Equal(t, "0", gallery.TotalEarned)
			assert.Equal(t, "0", gallery.PendingPayout)
			assert.Equal(t, "0xfeed", gallery.CreationTxHash)
			return nil
		})
	f.store.EXPECT().AppendCuratorGallery(gomock.Any(), testCuratorID, gomock.Any()).Return(nil)
	f.publisher.EXPECT().PublishGalleryMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *domain.GalleryMessage) error {
			assert.Equal(t, domain.MessageGalleryCreated, msg.Kind)
			assert.Equal(t, testAddress, msg.GalleryAddress)
			return nil
		})

	gallery, err := f.facade.RegisterGallery(context.Background(), testCuratorID, "Modern Light", "Contemporary art")
	require.NoError(t, err)
	assert.Equal(t, testAddress, gallery.LedgerAddress)
}

func TestRegisterGalleryLedgerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetCurator(gomock.Any(), testCuratorID).Return(testCurator(), nil)
	f.gateway.EXPECT().CreateGallery(gomock.Any(), testWallet, "Modern Light", "").
		Return(nil, domain.ErrLedgerUnavailable)

	// no mirror row is written when the ledger call fails
	_, err := f.facade.RegisterGallery(context.Background(), testCuratorID, "Modern Light", "")
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestRegisterGalleryRequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	_, err := f.facade.RegisterGallery(context.Background(), testCuratorID, "", "")
	assert.ErrorContains(t, err, "name is required")
}

func TestClaimRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetGalleryByID(gomock.Any(), testGalleryID).Return(testGallery("500"), nil).Times(2)
	f.gateway.EXPECT().IsRegistered(gomock.Any(), testAddress).Return(true, nil)
	f.gateway.EXPECT().GetGalleryDetails(gomock.Any(), testAddress).Return(&domain.GalleryDetails{
		TotalRevenue:   domain.MustParseAmount("1000"),
		PendingRevenue: domain.MustParseAmount("500"),
		IsActive:       true,
	}, nil)
	f.store.EXPECT().GetCurator(gomock.Any(), testCuratorID).Return(testCurator(), nil)
	f.gateway.EXPECT().SubmitClaim(gomock.Any(), testAddress, testWallet).
		Return(&domain.ClaimReceipt{TxHash: "0xclaim"}, nil)
	f.publisher.EXPECT().PublishGalleryMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *domain.GalleryMessage) error {
			assert.Equal(t, domain.MessageClaimSubmitted, msg.Kind)
			assert.Equal(t, "500", msg.Amount)
			assert.Equal(t, "0xclaim", msg.TxHash)
			return nil
		})

	// the store mock has no expectations for financial writes: a mirror
	// mutation here would fail the test
	receipt, err := f.facade.ClaimRevenue(context.Background(), testGalleryID, testCuratorID)
	require.NoError(t, err)
	assert.Equal(t, "0xclaim", receipt.TxHash)
}

func TestClaimRevenueNotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetGalleryByID(gomock.Any(), testGalleryID).Return(testGallery("500"), nil).Times(2)

	_, err := f.facade.ClaimRevenue(context.Background(), testGalleryID, otherCuratorID)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestClaimRevenueSerializesConcurrentClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetGalleryByID(gomock.Any(), testGalleryID).Return(testGallery("500"), nil).AnyTimes()
	f.store.EXPECT().GetCurator(gomock.Any(), testCuratorID).Return(testCurator(), nil).AnyTimes()
	f.gateway.EXPECT().IsRegistered(gomock.Any(), testAddress).Return(true, nil).AnyTimes()

	// whichever claim wins the lock sees revenue; the serialized second
	// claim reads the post-claim state and bails out
	gomock.InOrder(
		f.gateway.EXPECT().GetGalleryDetails(gomock.Any(), testAddress).Return(&domain.GalleryDetails{
			TotalRevenue:   domain.MustParseAmount("1000"),
			PendingRevenue: domain.MustParseAmount("500"),
			IsActive:       true,
		}, nil),
		f.gateway.EXPECT().GetGalleryDetails(gomock.Any(), testAddress).Return(&domain.GalleryDetails{
			TotalRevenue:   domain.MustParseAmount("1000"),
			PendingRevenue: domain.ZeroAmount(),
			IsActive:       true,
		}, nil),
	)
	f.gateway.EXPECT().SubmitClaim(gomock.Any(), testAddress, testWallet).
		Return(&domain.ClaimReceipt{TxHash: "0xclaim"}, nil).Times(1)
	f.publisher.EXPECT().PublishGalleryMessage(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.facade.ClaimRevenue(context.Background(), testGalleryID, testCuratorID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, noRevenue int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domain.ErrNoRevenueAvailable):
			noRevenue++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, noRevenue)
}

func TestGetGalleryView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetGalleryByID(gomock.Any(), testGalleryID).Return(testGallery("500"), nil)

	view, err := f.facade.GetGalleryView(context.Background(), testGalleryID, false)
	require.NoError(t, err)
	assert.Equal(t, testAddress, view.Gallery.LedgerAddress)
	assert.Nil(t, view.Live)
}

func TestGetGalleryViewLiveDegradesToMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetGalleryByID(gomock.Any(), testGalleryID).Return(testGallery("500"), nil)
	f.gateway.EXPECT().GetGalleryDetails(gomock.Any(), testAddress).Return(nil, domain.ErrLedgerUnavailable)

	view, err := f.facade.GetGalleryView(context.Background(), testGalleryID, true)
	require.NoError(t, err)
	assert.NotNil(t, view.Gallery)
	assert.Nil(t, view.Live)
}

func TestEnsureCurator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetCuratorByWallet(gomock.Any(), testWallet).Return(nil, domain.ErrCuratorNotFound)
	f.store.EXPECT().CreateCurator(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, curator *schema.Curator) error {
			assert.NotEmpty(t, curator.ID)
			assert.Equal(t, testWallet, curator.WalletAddress)
			assert.Equal(t, "Ada", curator.DisplayName)
			return nil
		})

	curator, err := f.facade.EnsureCurator(context.Background(), testWallet, "Ada")
	require.NoError(t, err)
	assert.Equal(t, testWallet, curator.WalletAddress)
}

func TestEnsureCuratorExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetCuratorByWallet(gomock.Any(), testWallet).Return(testCurator(), nil)

	curator, err := f.facade.EnsureCurator(context.Background(), testWallet, "ignored")
	require.NoError(t, err)
	assert.Equal(t, testCuratorID, curator.ID)
}

func TestEnsureCuratorLosesCreateRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetCuratorByWallet(gomock.Any(), testWallet).Return(nil, domain.ErrCuratorNotFound)
	f.store.EXPECT().CreateCurator(gomock.Any(), gomock.Any()).Return(domain.ErrGalleryAlreadyExists)
	f.store.EXPECT().GetCuratorByWallet(gomock.Any(), testWallet).Return(testCurator(), nil)

	curator, err := f.facade.EnsureCurator(context.Background(), testWallet, "Ada")
	require.NoError(t, err)
	assert.Equal(t, testCuratorID, curator.ID)
}

func TestSetGalleryStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetGalleryByID(gomock.Any(), testGalleryID).Return(testGallery("500"), nil)
	f.store.EXPECT().UpdateGalleryStatus(gomock.Any(), testGalleryID, domain.GalleryStatusSuspended).Return(nil)
	f.publisher.EXPECT().PublishGalleryMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *domain.GalleryMessage) error {
			assert.Equal(t, domain.MessageStatusChanged, msg.Kind)
			assert.Equal(t, domain.GalleryStatusSuspended, msg.Status)
			return nil
		})

	require.NoError(t, f.facade.SetGalleryStatus(context.Background(), testGalleryID, domain.GalleryStatusSuspended))
}

func TestSetGalleryStatusNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetGalleryByID(gomock.Any(), testGalleryID).Return(testGallery("500"), nil)

	// same status: no write, no message
	require.NoError(t, f.facade.SetGalleryStatus(context.Background(), testGalleryID, domain.GalleryStatusActive))
}

func TestSetGalleryStatusRejectsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	err := f.facade.SetGalleryStatus(context.Background(), testGalleryID, domain.GalleryStatus("archived"))
	assert.ErrorContains(t, err, "invalid gallery status")
}

func TestGetClaimHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetGalleryByID(gomock.Any(), testGalleryID).Return(testGallery("0"), nil)
	f.store.EXPECT().ListClaimHistory(gomock.Any(), testGalleryID, 20, 0).Return([]schema.ClaimRecord{
		{ID: 2, GalleryID: testGalleryID, Amount: "300", LedgerTxHash: "0x2"},
		{ID: 1, GalleryID: testGalleryID, Amount: "200", LedgerTxHash: "0x1"},
	}, nil)

	entries, err := f.facade.GetClaimHistory(context.Background(), testGalleryID, testCuratorID, 20, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "300", entries[0].Amount.String())
	assert.Equal(t, "0x2", entries[0].TxHash)
}

func TestGetClaimHistoryNotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetGalleryByID(gomock.Any(), testGalleryID).Return(testGallery("0"), nil)

	_, err := f.facade.GetClaimHistory(context.Background(), testGalleryID, otherCuratorID, 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestUpdateGalleryStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	f.store.EXPECT().GetGalleryByID(gomock.Any(), testGalleryID).Return(testGallery("0"), nil)
	f.store.EXPECT().UpdateGalleryStats(gomock.Any(), testGalleryID, gomock.Any()).Return(nil)

	err := f.facade.UpdateGalleryStats(context.Background(), testGalleryID, testCuratorID,
		store.GalleryStats{ArtworkCount: 12, ArtistCount: 4, VisitorCount: 900})
	require.NoError(t, err)
}

func TestPreviewSaleSplit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	split, err := f.facade.PreviewSaleSplit(context.Background(), "10000")
	require.NoError(t, err)
	assert.Equal(t, "8500", split.Artist.String())
	assert.Equal(t, "1000", split.Gallery.String())
	assert.Equal(t, "500", split.Platform.String())
}

func TestPreviewSaleSplitRejectsInvalidPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFacadeFixture(t, ctrl)

	_, err := f.facade.PreviewSaleSplit(context.Background(), "12.5")
	assert.ErrorContains(t, err, "invalid sale price")
}
