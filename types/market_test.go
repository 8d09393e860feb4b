package types_test

import (
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/types"
)

func TestRateModelText(t *testing.T) {
	for _, m := range []types.RateModel{types.RateModelCompounding, types.RateModelLinear} {
		parsed, err := types.ParseRateModel(m.String())
		require.NoError(t, err, "ParseRateModel(%s)", m)
		require.Equal(t, m, parsed, "ParseRateModel(%s)", m)
	}

	parsed, err := types.ParseRateModel("LINEAR")
	require.NoError(t, err, "ParseRateModel is case insensitive")
	require.Equal(t, types.RateModelLinear, parsed, "ParseRateModel(LINEAR)")

	_, err = types.ParseRateModel("unspecified")
	require.ErrorContains(t, err, "unknown rate model", "unspecified is not selectable")
	require.Equal(t, "9", types.RateModel(9).String(), "unknown model string")
	require.Equal(t, "RATE_MODEL_LINEAR", types.RateModelLinear.String(), "proto enum name")

	text, err := types.RateModelLinear.MarshalText()
	require.NoError(t, err, "MarshalText")
	require.Equal(t, "linear", string(text), "short name")
	_, err = types.RateModel(9).MarshalText()
	require.ErrorContains(t, err, "invalid rate model 9", "MarshalText of unknown model")

	var market struct {
		Type types.RateModel `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"compounding"}`), &market), "unmarshal model")
	require.Equal(t, types.RateModelCompounding, market.Type, "unmarshalled model")
	require.Error(t, json.Unmarshal([]byte(`{"type":"simple"}`), &market), "unmarshal unknown model")
}

func TestMarketConfiguration_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *types.MarketConfiguration)
		expErrStr string
	}{
		{name: "default"},
		{name: "negative lookback", mutate: func(c *types.MarketConfiguration) { c.TwapLookbackWindow = -1 }, expErrStr: "twap lookback window -1"},
		{name: "negative band", mutate: func(c *types.MarketConfiguration) { c.MarkPriceBand = sdkmath.LegacyNewDec(-1) }, expErrStr: "mark price band"},
		{name: "unset open interest limit", mutate: func(c *types.MarketConfiguration) { c.OpenInterestUpperLimit = sdkmath.Int{} }, expErrStr: "open interest upper limit"},
		{
			name: "lower limit above upper limit",
			mutate: func(c *types.MarketConfiguration) {
				c.PositionSizeLowerLimit = sdkmath.NewInt(10)
				c.PositionSizeUpperLimit = sdkmath.NewInt(5)
			},
			expErrStr: "exceeds upper limit",
		},
		{
			name:   "lower limit with unlimited upper limit",
			mutate: func(c *types.MarketConfiguration) { c.PositionSizeLowerLimit = sdkmath.NewInt(10) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := types.DefaultMarketConfiguration()
			if tc.mutate != nil {
				tc.mutate(&c)
			}
			err := c.Validate()
			if tc.expErrStr == "" {
				require.NoError(t, err, "Validate")
				return
			}
			require.ErrorContains(t, err, tc.expErrStr, "Validate")
		})
	}
}

func TestMarketConfiguration_CheckPositionSize(t *testing.T) {
	c := types.DefaultMarketConfiguration()
	require.NoError(t, c.CheckPositionSize(sdkmath.NewInt(-1_000_000_000_000)), "unlimited")

	c.PositionSizeLowerLimit = sdkmath.NewInt(100)
	c.PositionSizeUpperLimit = sdkmath.NewInt(1_000)
	require.NoError(t, c.CheckPositionSize(sdkmath.NewInt(-100)), "at the lower limit")
	require.NoError(t, c.CheckPositionSize(sdkmath.NewInt(1_000)), "at the upper limit")
	require.ErrorIs(t, c.CheckPositionSize(sdkmath.NewInt(-99)), types.ErrLimitExceeded, "below the lower limit")
	require.ErrorIs(t, c.CheckPositionSize(sdkmath.NewInt(1_001)), types.ErrLimitExceeded, "above the upper limit")
}
