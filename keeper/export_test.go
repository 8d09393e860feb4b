package keeper

import (
	"testing"

	"cosmossdk.io/math"

	"github.com/provlabs/datedirs/types"
)

// TestAccessor_adjustPrice exposes this keeper's adjustPrice function for unit tests.
func (k *Keeper) TestAccessor_adjustPrice(t *testing.T, price math.LegacyDec, orderSize math.Int, decimals uint32, cfg types.VammMutableConfig) (math.LegacyDec, error) {
	t.Helper()
	return adjustPrice(price, orderSize, decimals, cfg)
}

// TestAccessor_creditSpread exposes this keeper's creditSpread function for unit tests.
// It returns the credit of each maker for the given base fills.
func (k *Keeper) TestAccessor_creditSpread(t *testing.T, charge math.Int, makerBase map[uint64]math.Int) (map[uint64]math.Int, error) {
	t.Helper()
	fills := make(map[uint64]*fill, len(makerBase))
	for id, base := range makerBase {
		fills[id] = &fill{base: base, quote: math.ZeroInt(), credit: math.ZeroInt()}
	}
	if err := creditSpread(charge, fills); err != nil {
		return nil, err
	}
	credits := make(map[uint64]math.Int, len(fills))
	for id, f := range fills {
		credits[id] = f.credit
	}
	return credits, nil
}
