package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artblock/gallery-reconciler/internal/domain"
)

const testGalleryAddress = "0x8Ba1f109551bD432803012645Ac136ddd64DBA72"

func newTestGateway(t *testing.T) *gateway {
	t.Helper()
	return &gateway{
		factoryABI: mustParseABI(galleryFactoryABI),
		galleryABI: mustParseABI(galleryABI),
	}
}

func packRevenueEvent(t *testing.T, g *gateway, name string, amount int64, ts int64) []byte {
	t.Helper()
	data, err := g.galleryABI.Events[name].Inputs.Pack(big.NewInt(amount), big.NewInt(ts))
	require.NoError(t, err)
	return data
}

func TestParseEventLogs(t *testing.T) {
	g := newTestGateway(t)

	receivedID := g.galleryABI.Events["RevenueReceived"].ID
	claimedID := g.galleryABI.Events["RevenueClaimed"].ID
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	logs := []types.Log{
		{
			// later block first to prove ordering
			Topics:      []common.Hash{claimedID},
			Data:        packRevenueEvent(t, g, "RevenueClaimed", 400, ts.Add(time.Minute).Unix()),
			TxHash:      common.HexToHash("0x02"),
			BlockNumber: 120,
			Index:       0,
		},
		{
			Topics:      []common.Hash{receivedID},
			Data:        packRevenueEvent(t, g, "RevenueReceived", 1000, ts.Unix()),
			TxHash:      common.HexToHash("0x01"),
			BlockNumber: 118,
			Index:       3,
		},
		{
			Topics:      []common.Hash{receivedID},
			Data:        packRevenueEvent(t, g, "RevenueReceived", 250, ts.Unix()),
			TxHash:      common.HexToHash("0x03"),
			BlockNumber: 118,
			Index:       1,
		},
	}

	events, err := g.parseEventLogs(context.Background(), testGalleryAddress, logs)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, domain.EventRevenueReceived, events[0].Kind)
	assert.Equal(t, "250", events[0].Amount.String())
	assert.Equal(t, uint64(118), events[0].BlockNumber)
	assert.Equal(t, uint(1), events[0].LogIndex)

	assert.Equal(t, domain.EventRevenueReceived, events[1].Kind)
	assert.Equal(t, "1000", events[1].Amount.String())
	assert.Equal(t, uint(3), events[1].LogIndex)

	assert.Equal(t, domain.EventRevenueClaimed, events[2].Kind)
	assert.Equal(t, "400", events[2].Amount.String())
	assert.Equal(t, uint64(120), events[2].BlockNumber)
	assert.Equal(t, ts.Add(time.Minute), events[2].Timestamp)

	for _, event := range events {
		assert.Equal(t, domain.NormalizeAddress(testGalleryAddress), event.GalleryAddress)
	}

	// claims dedup by tx hash, receipts by position
	assert.Equal(t, "118:1", events[0].DedupKey())
	assert.Equal(t, common.HexToHash("0x02").Hex(), events[2].DedupKey())
}

func TestParseEventLogsSkipsIrrelevantLogs(t *testing.T) {
	g := newTestGateway(t)

	receivedID := g.galleryABI.Events["RevenueReceived"].ID
	valid := types.Log{
		Topics:      []common.Hash{receivedID},
		Data:        packRevenueEvent(t, g, "RevenueReceived", 500, time.Now().Unix()),
		TxHash:      common.HexToHash("0x01"),
		BlockNumber: 10,
	}

	logs := []types.Log{
		// reorged-out log
		{Topics: []common.Hash{receivedID}, Data: valid.Data, Removed: true, BlockNumber: 9},
		// unrelated event from the same contract
		{Topics: []common.Hash{common.HexToHash("0xdead")}, BlockNumber: 9},
		// truncated payload
		{Topics: []common.Hash{receivedID}, Data: []byte{0x01, 0x02}, BlockNumber: 9},
		// anonymous log
		{Topics: nil, BlockNumber: 9},
		valid,
	}

	events, err := g.parseEventLogs(context.Background(), testGalleryAddress, logs)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "500", events[0].Amount.String())
	assert.Equal(t, uint64(10), events[0].BlockNumber)
}

func TestGalleryAddressFromReceipt(t *testing.T) {
	g := newTestGateway(t)

	createdEvent := g.factoryABI.Events["GalleryCreated"]
	gallery := common.HexToAddress(testGalleryAddress)
	curator := common.HexToAddress("0x0000000000000000000000000000000000000abc")

	data, err := createdEvent.Inputs.Pack(gallery, curator, "Modern Light")
	require.NoError(t, err)

	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			{Topics: []common.Hash{common.HexToHash("0xbeef")}},
			{Topics: []common.Hash{createdEvent.ID}, Data: data},
		},
	}

	address, err := g.galleryAddressFromReceipt(receipt)
	require.NoError(t, err)
	assert.Equal(t, gallery.Hex(), address)
}

func TestGalleryAddressFromReceiptMissingEvent(t *testing.T) {
	g := newTestGateway(t)

	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			{Topics: []common.Hash{common.HexToHash("0xbeef")}},
		},
	}

	_, err := g.galleryAddressFromReceipt(receipt)
	assert.ErrorContains(t, err, "gallery creation event not found")
}

func TestWrapTransient(t *testing.T) {
	g := newTestGateway(t)

	t.Run("transport failure maps to unavailable", func(t *testing.T) {
		err := g.wrapTransient("getGalleryDetails", fmt.Errorf("dial tcp 127.0.0.1:8545: connection refused"))
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})

	t.Run("context deadline maps to unavailable", func(t *testing.T) {
		err := g.wrapTransient("latestBlock", context.DeadlineExceeded)
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})

	t.Run("revert is not transient", func(t *testing.T) {
		err := g.wrapTransient("claimRevenue", errors.New("execution reverted: no revenue"))
		assert.NotErrorIs(t, err, domain.ErrLedgerUnavailable)
		assert.ErrorContains(t, err, "reverted")
	})

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, g.wrapTransient("latestBlock", nil))
	})
}

func TestRetryReadStopsOnRevert(t *testing.T) {
	g := newTestGateway(t)

	calls := 0
	err := g.retryRead(context.Background(), func() error {
		calls++
		return errors.New("execution reverted: not registered")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
