package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/datedirs/types"
)

func TestRegisterInterfaces_UnpackEveryMsg(t *testing.T) {
	reg := codectypes.NewInterfaceRegistry()
	sdk.RegisterInterfaces(reg)
	types.RegisterInterfaces(reg)
	cdc := codec.NewProtoCodec(reg)

	impls := reg.ListImplementations(sdk.MsgInterfaceProtoName)
	for _, msg := range types.AllRequestMsgs {
		typeURL := sdk.MsgTypeURL(msg)
		require.Contains(t, impls, typeURL, "registered implementations")

		resolved, err := reg.Resolve(typeURL)
		require.NoError(t, err, "Resolve(%s)", typeURL)

		packed, err := codectypes.NewAnyWithValue(resolved)
		require.NoError(t, err, "NewAnyWithValue(%s)", typeURL)
		var unpacked sdk.Msg
		require.NoError(t, cdc.UnpackAny(packed, &unpacked), "UnpackAny(%s)", typeURL)
		require.Equal(t, typeURL, sdk.MsgTypeURL(unpacked), "unpacked type")
	}
}

func TestProtoCodec_MarketRoundTrip(t *testing.T) {
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	market := types.Market{
		ID:                         7,
		QuoteDenom:                 "usdc",
		QuoteDecimals:              6,
		Type:                       types.RateModelCompounding,
		OracleID:                   "aave",
		MaturityIndexCachingWindow: 3600,
		Config:                     types.DefaultMarketConfiguration(),
	}
	market.Config.PositionSizeUpperLimit = sdkmath.NewInt(5_000_000_000)

	bz, err := cdc.Marshal(&market)
	require.NoError(t, err, "Marshal")
	var decoded types.Market
	require.NoError(t, cdc.Unmarshal(bz, &decoded), "Unmarshal")
	require.Equal(t, market.String(), decoded.String(), "decoded market")

	jsonBz, err := cdc.MarshalJSON(&market)
	require.NoError(t, err, "MarshalJSON")
	require.Contains(t, string(jsonBz), `"type":"RATE_MODEL_COMPOUNDING"`, "json enum name")
	require.Contains(t, string(jsonBz), `"oracle_id":"aave"`, "json field name")
}

func TestMsgRecordRateIndexRequest_OptionalApy(t *testing.T) {
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())

	msg := types.MsgRecordRateIndexRequest{OracleID: "aave", Index: sdkmath.LegacyOneDec()}
	bz, err := cdc.Marshal(&msg)
	require.NoError(t, err, "Marshal without apy")
	var decoded types.MsgRecordRateIndexRequest
	require.NoError(t, cdc.Unmarshal(bz, &decoded), "Unmarshal without apy")
	require.Nil(t, decoded.Apy, "absent apy stays nil")

	apy := sdkmath.LegacyZeroDec()
	msg.Apy = &apy
	bz, err = cdc.Marshal(&msg)
	require.NoError(t, err, "Marshal with zero apy")
	require.NoError(t, cdc.Unmarshal(bz, &decoded), "Unmarshal with zero apy")
	require.NotNil(t, decoded.Apy, "zero apy is kept")
	require.True(t, decoded.Apy.IsZero(), "zero apy value")
}
