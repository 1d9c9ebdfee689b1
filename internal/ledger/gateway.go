package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/artblock/gallery-reconciler/internal/adapter"
	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/logger"
)

const readRetryMax = 3

// Gateway is the thin client wrapping all calls to the ledger. Read-only
// calls retry transient failures internally with bounded backoff;
// state-mutating calls (CreateGallery, SubmitClaim) never retry on their
// own, since a blind retry risks a duplicate submission. Mutating calls
// return only after the underlying transaction is confirmed.
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// CreateGallery deploys a new gallery through the factory and waits
	// for confirmation
	CreateGallery(ctx context.Context, curatorAddress, name, description string) (*domain.GalleryCreation, error)

	// GetGalleryDetails reads a gallery's live on-chain state
	GetGalleryDetails(ctx context.Context, address string) (*domain.GalleryDetails, error)

	// SubmitClaim submits a revenue claim for a gallery and waits for
	// confirmation
	SubmitClaim(ctx context.Context, address, claimantAddress string) (*domain.ClaimReceipt, error)

	// IsRegistered checks whether an address is a factory-registered gallery
	IsRegistered(ctx context.Context, address string) (bool, error)

	// QueryEvents fetches a gallery's financial events in a block range,
	// ordered by (block, log index)
	QueryEvents(ctx context.Context, address string, fromBlock, toBlock uint64) ([]domain.LedgerEvent, error)

	// LatestBlock returns the current head block number
	LatestBlock(ctx context.Context) (uint64, error)

	// Close closes the underlying connection
	Close()
}

type gateway struct {
	client     adapter.LedgerClient
	signer     *bind.TransactOpts
	factoryABI abi.ABI
	galleryABI abi.ABI
	factory    *bind.BoundContract
	clock      adapter.Clock
}

// NewGateway creates a gateway bound to a factory contract. The signer is
// constructed by process bootstrap (key management is not this package's
// business) and injected here.
func NewGateway(client adapter.LedgerClient, signer *bind.TransactOpts, factoryAddress string, clock adapter.Clock) (Gateway, error) {
	if !domain.IsValidAddress(factoryAddress) {
		return nil, fmt.Errorf("invalid factory address %q", factoryAddress)
	}

	factoryABI := mustParseABI(galleryFactoryABI)
	addr := common.HexToAddress(factoryAddress)

	return &gateway{
		client:     client,
		signer:     signer,
		factoryABI: factoryABI,
		galleryABI: mustParseABI(galleryABI),
		factory:    bind.NewBoundContract(addr, factoryABI, client, client, client),
		clock:      clock,
	}, nil
}

// CreateGallery deploys a new gallery through the factory and waits for
// confirmation
func (g *gateway) CreateGallery(ctx context.Context, curatorAddress, name, description string) (*domain.GalleryCreation, error) {
	logger.InfoCtx(ctx, "Creating gallery on ledger",
		zap.String("curator", curatorAddress),
		zap.String("name", name),
	)

	tx, err := g.factory.Transact(g.txOpts(ctx), "createGallery", name, description)
	if err != nil {
		return nil, g.wrapTransient("createGallery", err)
	}

	receipt, err := bind.WaitMined(ctx, g.client, tx)
	if err != nil {
		return nil, g.wrapTransient("createGallery confirmation", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("gallery creation transaction %s reverted", tx.Hash().Hex())
	}

	address, err := g.galleryAddressFromReceipt(receipt)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Gallery created on ledger",
		zap.String("address", address),
		zap.String("tx_hash", tx.Hash().Hex()),
	)

	return &domain.GalleryCreation{
		Address: address,
		TxHash:  tx.Hash().Hex(),
	}, nil
}

// galleryAddressFromReceipt extracts the new gallery address from the
// factory's GalleryCreated log
func (g *gateway) galleryAddressFromReceipt(receipt *types.Receipt) (string, error) {
	createdID := g.factoryABI.Events["GalleryCreated"].ID

	for _, vLog := range receipt.Logs {
		if len(vLog.Topics) == 0 || vLog.Topics[0] != createdID {
			continue
		}

		vals, err := g.factoryABI.Unpack("GalleryCreated", vLog.Data)
		if err != nil {
			return "", fmt.Errorf("failed to decode GalleryCreated log: %w", err)
		}
		address, ok := vals[0].(common.Address)
		if !ok {
			return "", fmt.Errorf("unexpected GalleryCreated payload")
		}

		return address.Hex(), nil
	}

	return "", fmt.Errorf("gallery creation event not found in receipt")
}

// GetGalleryDetails reads a gallery's live on-chain state
func (g *gateway) GetGalleryDetails(ctx context.Context, address string) (*domain.GalleryDetails, error) {
	if !domain.IsValidAddress(address) {
		return nil, fmt.Errorf("invalid gallery address %q", address)
	}

	contract := g.galleryContract(address)

	var out []interface{}
	err := g.retryRead(ctx, func() error {
		out = out[:0]
		return contract.Call(&bind.CallOpts{Context: ctx}, &out, "getGalleryDetails")
	})
	if err != nil {
		return nil, g.wrapTransient("getGalleryDetails", err)
	}
	if len(out) != 6 {
		return nil, fmt.Errorf("unexpected getGalleryDetails output arity %d", len(out))
	}

	totalRevenue, err := domain.NewAmountFromBig(out[3].(*big.Int))
	if err != nil {
		return nil, fmt.Errorf("invalid total revenue: %w", err)
	}
	pendingRevenue, err := domain.NewAmountFromBig(out[4].(*big.Int))
	if err != nil {
		return nil, fmt.Errorf("invalid pending revenue: %w", err)
	}

	return &domain.GalleryDetails{
		Name:           out[0].(string),
		Description:    out[1].(string),
		Curator:        out[2].(common.Address).Hex(),
		TotalRevenue:   totalRevenue,
		PendingRevenue: pendingRevenue,
		IsActive:       out[5].(bool),
	}, nil
}

// SubmitClaim submits a revenue claim for a gallery and waits for
// confirmation
func (g *gateway) SubmitClaim(ctx context.Context, address, claimantAddress string) (*domain.ClaimReceipt, error) {
	if !domain.IsValidAddress(address) {
		return nil, fmt.Errorf("invalid gallery address %q", address)
	}

	logger.InfoCtx(ctx, "Submitting revenue claim",
		zap.String("gallery", address),
		zap.String("claimant", claimantAddress),
	)

	contract := g.galleryContract(address)

	tx, err := contract.Transact(g.txOpts(ctx), "claimRevenue")
	if err != nil {
		if ctx.Err() != nil {
			// Cancelled while sending: the transaction may still have
			// reached the network. The caller must not assume failure.
			return nil, &domain.ClaimAmbiguousError{GalleryAddress: address, Err: err}
		}
		return nil, g.wrapTransient("claimRevenue", err)
	}

	receipt, err := bind.WaitMined(ctx, g.client, tx)
	if err != nil {
		// The transaction was sent; losing the wait means the outcome is
		// unknown, not failed.
		return nil, &domain.ClaimAmbiguousError{GalleryAddress: address, Err: err}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("claim transaction %s reverted", tx.Hash().Hex())
	}

	return &domain.ClaimReceipt{TxHash: tx.Hash().Hex()}, nil
}

// IsRegistered checks whether an address is a factory-registered gallery
func (g *gateway) IsRegistered(ctx context.Context, address string) (bool, error) {
	if !domain.IsValidAddress(address) {
		return false, nil
	}

	var out []interface{}
	err := g.retryRead(ctx, func() error {
		out = out[:0]
		return g.factory.Call(&bind.CallOpts{Context: ctx}, &out, "validateGallery", common.HexToAddress(address))
	})
	if err != nil {
		return false, g.wrapTransient("validateGallery", err)
	}
	if len(out) != 1 {
		return false, fmt.Errorf("unexpected validateGallery output arity %d", len(out))
	}

	registered, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected validateGallery payload")
	}

	return registered, nil
}

// QueryEvents fetches a gallery's financial events in a block range
func (g *gateway) QueryEvents(ctx context.Context, address string, fromBlock, toBlock uint64) ([]domain.LedgerEvent, error) {
	if !domain.IsValidAddress(address) {
		return nil, fmt.Errorf("invalid gallery address %q", address)
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{common.HexToAddress(address)},
		Topics: [][]common.Hash{{
			g.galleryABI.Events["RevenueReceived"].ID,
			g.galleryABI.Events["RevenueClaimed"].ID,
		}},
	}

	var logs []types.Log
	err := g.retryRead(ctx, func() error {
		var ferr error
		logs, ferr = g.client.FilterLogs(ctx, query)
		return ferr
	})
	if err != nil {
		return nil, g.wrapTransient("queryEvents", err)
	}

	return g.parseEventLogs(ctx, address, logs)
}

// LatestBlock returns the current head block number
func (g *gateway) LatestBlock(ctx context.Context) (uint64, error) {
	var header *types.Header
	err := g.retryRead(ctx, func() error {
		var herr error
		header, herr = g.client.HeaderByNumber(ctx, nil)
		return herr
	})
	if err != nil {
		return 0, g.wrapTransient("latestBlock", err)
	}

	return header.Number.Uint64(), nil
}

// Close closes the underlying connection
func (g *gateway) Close() {
	g.client.Close()
}

func (g *gateway) galleryContract(address string) *bind.BoundContract {
	return bind.NewBoundContract(common.HexToAddress(address), g.galleryABI, g.client, g.client, g.client)
}

// txOpts returns a per-call copy of the signer options with the caller's
// context attached
func (g *gateway) txOpts(ctx context.Context) *bind.TransactOpts {
	opts := *g.signer
	opts.Context = ctx
	return &opts
}

// retryRead runs a read-only operation with bounded exponential backoff.
// Reverts are permanent; everything else is assumed transient.
func (g *gateway) retryRead(ctx context.Context, op func() error) error {
	wrapped := func() error {
		err := op()
		if err != nil && isRevertError(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), readRetryMax), ctx)
	return backoff.Retry(wrapped, b)
}

// wrapTransient classifies a ledger call failure. Transport-level failures
// map to ErrLedgerUnavailable so callers can decide to retry explicitly;
// reverts and decode failures pass through as-is.
func (g *gateway) wrapTransient(call string, err error) error {
	if err == nil {
		return nil
	}
	if isRevertError(err) {
		return fmt.Errorf("%s reverted: %w", call, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", call, domain.ErrLedgerUnavailable, err)
	}

	return fmt.Errorf("%s: %w: %v", call, domain.ErrLedgerUnavailable, err)
}

func isRevertError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "execution reverted") || strings.Contains(msg, "revert")
}
