package ledger

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Minimal ABI fragments for the GalleryFactory and Gallery contracts. Only
// the functions and events this service touches are declared; the deployed
// contracts carry more.
const galleryFactoryABI = `[
	{"type":"function","name":"createGallery","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"},{"name":"description","type":"string"}],"outputs":[]},
	{"type":"function","name":"validateGallery","stateMutability":"view","inputs":[{"name":"gallery","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getCuratorGalleries","stateMutability":"view","inputs":[{"name":"curator","type":"address"}],"outputs":[{"name":"","type":"address[]"}]},
	{"type":"event","name":"GalleryCreated","inputs":[{"name":"gallery","type":"address","indexed":false},{"name":"curator","type":"address","indexed":false},{"name":"name","type":"string","indexed":false}],"anonymous":false}
]`

const galleryABI = `[
	{"type":"function","name":"getGalleryDetails","stateMutability":"view","inputs":[],"outputs":[{"name":"_name","type":"string"},{"name":"_description","type":"string"},{"name":"_curator","type":"address"},{"name":"_totalRevenue","type":"uint256"},{"name":"_pendingRevenue","type":"uint256"},{"name":"_isActive","type":"bool"}]},
	{"type":"function","name":"claimRevenue","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"event","name":"RevenueReceived","inputs":[{"name":"amount","type":"uint256","indexed":false},{"name":"timestamp","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"RevenueClaimed","inputs":[{"name":"amount","type":"uint256","indexed":false},{"name":"timestamp","type":"uint256","indexed":false}],"anonymous":false}
]`

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}
