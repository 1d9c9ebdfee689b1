package ledger

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/logger"
)

// parseEventLogs decodes raw gallery logs into domain events, skipping logs
// that fail to decode. The result is ordered by (block, log index) so
// callers can apply it deterministically.
func (g *gateway) parseEventLogs(ctx context.Context, address string, logs []types.Log) ([]domain.LedgerEvent, error) {
	receivedID := g.galleryABI.Events["RevenueReceived"].ID
	claimedID := g.galleryABI.Events["RevenueClaimed"].ID

	events := make([]domain.LedgerEvent, 0, len(logs))
	for _, vLog := range logs {
		if vLog.Removed || len(vLog.Topics) == 0 {
			continue
		}

		var kind domain.LedgerEventKind
		var name string
		switch vLog.Topics[0] {
		case receivedID:
			kind = domain.EventRevenueReceived
			name = "RevenueReceived"
		case claimedID:
			kind = domain.EventRevenueClaimed
			name = "RevenueClaimed"
		default:
			continue
		}

		event, err := g.decodeGalleryEvent(name, kind, address, vLog)
		if err != nil {
			// A malformed log is unexpected from our own contracts. Skip it
			// rather than stall the whole window, but keep a trace.
			logger.WarnCtx(ctx, "Failed to decode gallery event log",
				zap.String("gallery", address),
				zap.String("event", name),
				zap.String("tx_hash", vLog.TxHash.Hex()),
				zap.Error(err),
			)
			continue
		}

		events = append(events, *event)
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].BlockNumber != events[j].BlockNumber {
			return events[i].BlockNumber < events[j].BlockNumber
		}
		return events[i].LogIndex < events[j].LogIndex
	})

	return events, nil
}

func (g *gateway) decodeGalleryEvent(name string, kind domain.LedgerEventKind, address string, vLog types.Log) (*domain.LedgerEvent, error) {
	vals, err := g.galleryABI.Unpack(name, vLog.Data)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, fmt.Errorf("unexpected %s payload arity %d", name, len(vals))
	}

	rawAmount, ok := vals[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s amount type %T", name, vals[0])
	}
	amount, err := domain.NewAmountFromBig(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid %s amount: %w", name, err)
	}

	rawTimestamp, ok := vals[1].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s timestamp type %T", name, vals[1])
	}

	return &domain.LedgerEvent{
		Kind:           kind,
		GalleryAddress: domain.NormalizeAddress(address),
		Amount:         amount,
		Timestamp:      time.Unix(rawTimestamp.Int64(), 0).UTC(),
		TxHash:         vLog.TxHash.Hex(),
		BlockNumber:    vLog.BlockNumber,
		LogIndex:       vLog.Index,
	}, nil
}
