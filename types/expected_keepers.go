package types

import (
	"context"

	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// FeatureFlagKeeper gates which market maturities accept orders.
type FeatureFlagKeeper interface {
	IsMarketEnabled(ctx context.Context, marketID uint64, maturity int64) bool
}

// BankKeeper provides the quote token metadata used to scale amounts.
type BankKeeper interface {
	GetDenomMetaData(ctx context.Context, denom string) (banktypes.Metadata, bool)
}

// AllMarketsEnabled is a FeatureFlagKeeper that enables every market.
type AllMarketsEnabled struct{}

func (AllMarketsEnabled) IsMarketEnabled(context.Context, uint64, int64) bool { return true }

// DenomDecimals returns the exponent of the display unit of a denom's metadata.
func DenomDecimals(md banktypes.Metadata) (uint32, bool) {
	for _, unit := range md.DenomUnits {
		if unit != nil && unit.Denom == md.Display {
			return unit.Exponent, true
		}
	}
	return 0, false
}
