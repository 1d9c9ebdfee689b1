package domain

import (
	"fmt"
	"math/big"
)

// Default sale split in basis points, matching the Gallery contract:
// 85% artist, 10% gallery, 5% platform.
const (
	DefaultArtistShareBps  = 8500
	DefaultGalleryShareBps = 1000
	BpsDenominator         = 10000
)

// SaleSplit holds the three-way division of a sale price. The shares always
// sum exactly to the price: artist and gallery shares are computed by
// truncating division in minor units and the platform takes the remainder,
// so no rounding loss can accumulate against the ledger.
type SaleSplit struct {
	Artist   *Amount
	Gallery  *Amount
	Platform *Amount
}

// SplitSale divides a sale price between artist, gallery and platform.
// artistBps + galleryBps must be at most BpsDenominator.
func SplitSale(price *Amount, artistBps, galleryBps int64) (*SaleSplit, error) {
	if artistBps < 0 || galleryBps < 0 || artistBps+galleryBps > BpsDenominator {
		return nil, fmt.Errorf("invalid share split: artist=%d gallery=%d bps", artistBps, galleryBps)
	}

	p := price.BigInt()
	den := big.NewInt(BpsDenominator)

	artist := new(big.Int).Mul(p, big.NewInt(artistBps))
	artist.Quo(artist, den)

	gallery := new(big.Int).Mul(p, big.NewInt(galleryBps))
	gallery.Quo(gallery, den)

	platform := new(big.Int).Sub(p, artist)
	platform.Sub(platform, gallery)

	artistAmt, err := NewAmountFromBig(artist)
	if err != nil {
		return nil, err
	}
	galleryAmt, err := NewAmountFromBig(gallery)
	if err != nil {
		return nil, err
	}
	platformAmt, err := NewAmountFromBig(platform)
	if err != nil {
		return nil, err
	}

	return &SaleSplit{
		Artist:   artistAmt,
		Gallery:  galleryAmt,
		Platform: platformAmt,
	}, nil
}
