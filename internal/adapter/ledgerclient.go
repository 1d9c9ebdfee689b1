package adapter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// LedgerClient is the transport-level client the ledger gateway is built
// on. It combines the bind backends needed to call views, send transactions
// and wait for receipts, plus the raw log and header reads used for event
// polling.
//
//go:generate mockgen -source=ledgerclient.go -destination=../mocks/ledgerclient.go -package=mocks -mock_names=LedgerClient=MockLedgerClient
type LedgerClient interface {
	bind.ContractBackend
	bind.DeployBackend

	// FilterLogs retrieves logs matching the filter query
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)

	// HeaderByNumber returns a header by number (nil for latest)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// ChainID returns the chain ID of the connected ledger
	ChainID(ctx context.Context) (*big.Int, error)

	// Close closes the connection
	Close()
}

// LedgerClientDialer defines an interface for dialing ledger clients
//
//go:generate mockgen -source=ledgerclient.go -destination=../mocks/ledgerclient.go -package=mocks -mock_names=LedgerClientDialer=MockLedgerClientDialer
type LedgerClientDialer interface {
	Dial(ctx context.Context, rawurl string) (LedgerClient, error)
}

// RealLedgerClientDialer implements LedgerClientDialer using the standard
// ethclient package
type RealLedgerClientDialer struct{}

// NewLedgerClientDialer creates a new real ledger client dialer
func NewLedgerClientDialer() LedgerClientDialer {
	return &RealLedgerClientDialer{}
}

func (d *RealLedgerClientDialer) Dial(ctx context.Context, rawurl string) (LedgerClient, error) {
	return ethclient.DialContext(ctx, rawurl)
}
