package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/types"
	"github.com/provlabs/datedirs/utils"
)

func TestMsgExecuteMakerOrderRequest_ValidateBasic(t *testing.T) {
	owner := utils.TestAddress().Bech32
	valid := func() types.MsgExecuteMakerOrderRequest {
		return types.MsgExecuteMakerOrderRequest{
			Owner:      owner,
			AccountID:  1,
			MarketID:   1,
			Maturity:   1_800_000_000,
			TickLower:  -600,
			TickUpper:  600,
			BaseAmount: sdkmath.NewInt(-5),
		}
	}

	tests := []struct {
		name      string
		mutate    func(m *types.MsgExecuteMakerOrderRequest)
		expErrStr string
	}{
		{name: "valid burn"},
		{name: "bad owner", mutate: func(m *types.MsgExecuteMakerOrderRequest) { m.Owner = "bad" }, expErrStr: "invalid owner address"},
		{name: "zero market", mutate: func(m *types.MsgExecuteMakerOrderRequest) { m.MarketID = 0 }, expErrStr: "market id must be positive"},
		{name: "zero maturity", mutate: func(m *types.MsgExecuteMakerOrderRequest) { m.Maturity = 0 }, expErrStr: "maturity 0 must be positive"},
		{name: "empty range", mutate: func(m *types.MsgExecuteMakerOrderRequest) { m.TickUpper = m.TickLower }, expErrStr: "must be below upper tick"},
		{name: "nil base", mutate: func(m *types.MsgExecuteMakerOrderRequest) { m.BaseAmount = sdkmath.Int{} }, expErrStr: "base amount must be non-zero"},
		{name: "zero base", mutate: func(m *types.MsgExecuteMakerOrderRequest) { m.BaseAmount = sdkmath.ZeroInt() }, expErrStr: "base amount must be non-zero"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := valid()
			if tc.mutate != nil {
				tc.mutate(&msg)
			}
			err := msg.ValidateBasic()
			if tc.expErrStr == "" {
				require.NoError(t, err, "ValidateBasic")
				return
			}
			require.ErrorContains(t, err, tc.expErrStr, "ValidateBasic")
		})
	}
}

func TestMsgExecuteTakerOrderRequest_ValidateBasic(t *testing.T) {
	owner := utils.TestAddress().Bech32
	tests := []struct {
		name      string
		msg       types.MsgExecuteTakerOrderRequest
		expErrStr string
	}{
		{
			name: "valid without limit",
			msg:  types.MsgExecuteTakerOrderRequest{Owner: owner, AccountID: 1, MarketID: 1, Maturity: 10, BaseAmount: sdkmath.NewInt(1)},
		},
		{
			name: "valid with limit",
			msg:  types.MsgExecuteTakerOrderRequest{Owner: owner, AccountID: 1, MarketID: 1, Maturity: 10, BaseAmount: sdkmath.NewInt(-1), SqrtPriceLimitX96: sdkmath.NewInt(1 << 40)},
		},
		{
			name:      "zero base",
			msg:       types.MsgExecuteTakerOrderRequest{Owner: owner, AccountID: 1, MarketID: 1, Maturity: 10, BaseAmount: sdkmath.ZeroInt()},
			expErrStr: "base amount must be non-zero",
		},
		{
			name:      "negative limit",
			msg:       types.MsgExecuteTakerOrderRequest{Owner: owner, AccountID: 1, MarketID: 1, Maturity: 10, BaseAmount: sdkmath.NewInt(1), SqrtPriceLimitX96: sdkmath.NewInt(-1)},
			expErrStr: "sqrt price limit cannot be negative",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.expErrStr == "" {
				require.NoError(t, err, "ValidateBasic")
				return
			}
			require.ErrorContains(t, err, tc.expErrStr, "ValidateBasic")
		})
	}
}

func TestMsgCreateVammRequest_ValidateBasic(t *testing.T) {
	authority := utils.TestAddress().Bech32
	valid := func() types.MsgCreateVammRequest {
		return types.MsgCreateVammRequest{
			Authority:           authority,
			MarketID:            1,
			Maturity:            1_800_000_000,
			InitTick:            -16096,
			MaxLiquidityPerTick: sdkmath.NewInt(1_000_000),
			TickSpacing:         60,
			Config:              types.DefaultVammMutableConfig(),
			ObservedTimes:       []int64{100, 200},
			ObservedTicks:       []int32{-16096, -16000},
		}
	}

	tests := []struct {
		name      string
		mutate    func(m *types.MsgCreateVammRequest)
		expErrStr string
	}{
		{name: "valid"},
		{name: "bad authority", mutate: func(m *types.MsgCreateVammRequest) { m.Authority = "" }, expErrStr: "invalid authority address"},
		{name: "zero spacing", mutate: func(m *types.MsgCreateVammRequest) { m.TickSpacing = 0 }, expErrStr: "tick spacing 0 must be positive"},
		{name: "unset max liquidity", mutate: func(m *types.MsgCreateVammRequest) { m.MaxLiquidityPerTick = sdkmath.Int{} }, expErrStr: "max liquidity per tick must be positive"},
		{name: "negative spread", mutate: func(m *types.MsgCreateVammRequest) { m.Config.Spread = sdkmath.LegacyNewDec(-1) }, expErrStr: "spread must be non-negative"},
		{
			name: "initial tick outside allowed range",
			mutate: func(m *types.MsgCreateVammRequest) {
				m.Config.MinTickAllowed = -16000
				m.Config.MaxTickAllowed = 0
			},
			expErrStr: "initial tick -16096 outside",
		},
		{name: "mismatched history", mutate: func(m *types.MsgCreateVammRequest) { m.ObservedTicks = m.ObservedTicks[:1] }, expErrStr: "2 observed times but 1 observed ticks"},
		{name: "unordered history", mutate: func(m *types.MsgCreateVammRequest) { m.ObservedTimes = []int64{200, 200} }, expErrStr: "strictly increasing"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := valid()
			if tc.mutate != nil {
				tc.mutate(&msg)
			}
			err := msg.ValidateBasic()
			if tc.expErrStr == "" {
				require.NoError(t, err, "ValidateBasic")
				return
			}
			require.ErrorContains(t, err, tc.expErrStr, "ValidateBasic")
		})
	}
}

func TestMsgRecordRateIndexRequest_ValidateBasic(t *testing.T) {
	authority := utils.TestAddress().Bech32
	tests := []struct {
		name      string
		msg       types.MsgRecordRateIndexRequest
		expErrStr string
	}{
		{name: "valid without apy", msg: types.MsgRecordRateIndexRequest{Authority: authority, OracleID: "aave", Index: sdkmath.LegacyOneDec()}},
		{name: "valid with apy", msg: types.MsgRecordRateIndexRequest{Authority: authority, OracleID: "aave", Index: sdkmath.LegacyOneDec(), Apy: decPtr(sdkmath.LegacyNewDecWithPrec(5, 2))}},
		{name: "empty oracle", msg: types.MsgRecordRateIndexRequest{Authority: authority, Index: sdkmath.LegacyOneDec()}, expErrStr: "oracle id cannot be empty"},
		{name: "unset index", msg: types.MsgRecordRateIndexRequest{Authority: authority, OracleID: "aave"}, expErrStr: "index must be positive"},
		{name: "negative apy", msg: types.MsgRecordRateIndexRequest{Authority: authority, OracleID: "aave", Index: sdkmath.LegacyOneDec(), Apy: decPtr(sdkmath.LegacyNewDec(-1))}, expErrStr: "apy cannot be negative"},
		{name: "unset apy pointer", msg: types.MsgRecordRateIndexRequest{Authority: authority, OracleID: "aave", Index: sdkmath.LegacyOneDec(), Apy: &sdkmath.LegacyDec{}}, expErrStr: "apy cannot be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.expErrStr == "" {
				require.NoError(t, err, "ValidateBasic")
				return
			}
			require.ErrorContains(t, err, tc.expErrStr, "ValidateBasic")
		})
	}
}

func TestMsgCreateMarketRequest_ValidateBasic(t *testing.T) {
	authority := utils.TestAddress().Bech32
	require.NoError(t, types.MsgCreateMarketRequest{Authority: authority, MarketID: 1, QuoteDenom: "usdc", Type: types.RateModelLinear}.ValidateBasic(), "valid")
	require.ErrorContains(t, types.MsgCreateMarketRequest{Authority: authority, QuoteDenom: "usdc", Type: types.RateModelLinear}.ValidateBasic(), "market id must be positive", "zero id")
	require.ErrorContains(t, types.MsgCreateMarketRequest{Authority: authority, MarketID: 1, QuoteDenom: "!", Type: types.RateModelLinear}.ValidateBasic(), "invalid quote denom", "bad denom")
	require.ErrorContains(t, types.MsgCreateMarketRequest{Authority: authority, MarketID: 1, QuoteDenom: "usdc"}.ValidateBasic(), "invalid rate model", "unspecified model")
}

func decPtr(d sdkmath.LegacyDec) *sdkmath.LegacyDec {
	return &d
}
