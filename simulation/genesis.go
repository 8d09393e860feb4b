package simulation

import (
	"encoding/json"
	"fmt"
	"math/rand"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/provlabs/datedirs/types"
)

const (
	MaxNumMarkets            = 4
	ChanceOfCompounding      = 2 // 1 in X
	MaxApyBasisPoints        = 1500
	MaxIndexGrowthBps        = 2000
	MaxCachingWindow         = 7200
	ChanceOfTwapWindow       = 2 // 1 in X
	MaxTwapLookbackWindow    = 600
	ChanceOfPositionLimits   = 4 // 1 in X
	MaxPositionsPerAccount   = 8
	ChanceOfOpenInterestCap  = 4 // 1 in X
	MinOpenInterestUpperBase = 50_000_000_000
	SimQuoteDenom            = "usdc"
	SimQuoteDecimals         = 6
)

// RandomizedGenState generates a random GenesisState for the datedirs module.
// Every market gets its own initialized rate oracle; pools are opened by the
// simulation operations.
func RandomizedGenState(simState *module.SimulationState) {
	oracles, markets := randomMarkets(simState.Rand, simState.GenTimestamp.Unix())

	genesis := types.GenesisState{
		NextAccountID: 1,
		RateOracles:   oracles,
		Markets:       markets,
	}

	bz, err := json.MarshalIndent(&genesis, "", " ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Selected randomly generated datedirs parameters: %s\n", bz)

	simState.GenState[types.ModuleName] = simState.Cdc.MustMarshalJSON(&genesis)
}

func randomMarkets(r *rand.Rand, now int64) ([]types.RateOracle, []types.Market) {
	n := r.Intn(MaxNumMarkets) + 1
	oracles := make([]types.RateOracle, 0, n)
	markets := make([]types.Market, 0, n)

	for i := 0; i < n; i++ {
		model := types.RateModelLinear
		if r.Intn(ChanceOfCompounding) == 0 {
			model = types.RateModelCompounding
		}

		oracle := types.RateOracle{
			ID:          fmt.Sprintf("oracle%d", i+1),
			Model:       model,
			Apy:         sdkmath.LegacyNewDecWithPrec(randomInt63(r, MaxApyBasisPoints+1), 4),
			LastIndex:   sdkmath.LegacyOneDec().Add(sdkmath.LegacyNewDecWithPrec(randomInt63(r, MaxIndexGrowthBps+1), 4)),
			LastUpdated: now,
		}
		oracles = append(oracles, oracle)

		markets = append(markets, types.Market{
			ID:                         uint64(i + 1),
			QuoteDenom:                 SimQuoteDenom,
			QuoteDecimals:              SimQuoteDecimals,
			Type:                       model,
			OracleID:                   oracle.ID,
			MaturityIndexCachingWindow: randomInt63(r, MaxCachingWindow+1),
			Config:                     randomMarketConfiguration(r),
		})
	}

	return oracles, markets
}

func randomMarketConfiguration(r *rand.Rand) types.MarketConfiguration {
	config := types.DefaultMarketConfiguration()
	if r.Intn(ChanceOfTwapWindow) == 0 {
		config.TwapLookbackWindow = randomInt63Between(r, 1, MaxTwapLookbackWindow)
	}
	if r.Intn(ChanceOfPositionLimits) == 0 {
		config.TakerPositionsPerAccountLimit = uint32(r.Intn(MaxPositionsPerAccount) + 1)
		config.MakerPositionsPerAccountLimit = uint32(r.Intn(MaxPositionsPerAccount) + 1)
	}
	if r.Intn(ChanceOfOpenInterestCap) == 0 {
		config.OpenInterestUpperLimit = sdkmath.NewInt(MinOpenInterestUpperBase + randomInt63(r, MinOpenInterestUpperBase))
	}
	return config
}
