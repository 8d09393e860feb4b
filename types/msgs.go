package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	proto "github.com/cosmos/gogoproto/proto"
)

// AllRequestMsgs lists every Msg handled by the module's Msg service.
var AllRequestMsgs = []proto.Message{
	(*MsgCreateAccountRequest)(nil),
	(*MsgCreateRateOracleRequest)(nil),
	(*MsgRecordRateIndexRequest)(nil),
	(*MsgCreateMarketRequest)(nil),
	(*MsgSetMarketConfigurationRequest)(nil),
	(*MsgSetRateOracleConfigurationRequest)(nil),
	(*MsgCreateVammRequest)(nil),
	(*MsgSetMarketMaturityConfigurationRequest)(nil),
	(*MsgIncreaseObservationCardinalityNextRequest)(nil),
	(*MsgExecuteMakerOrderRequest)(nil),
	(*MsgExecuteTakerOrderRequest)(nil),
	(*MsgSettleRequest)(nil),
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return fmt.Errorf("invalid %s address: %q: %w", field, addr, err)
	}
	return nil
}

func validateMarketMaturity(marketID uint64, maturity int64) error {
	if marketID == 0 {
		return fmt.Errorf("market id must be positive")
	}
	if maturity <= 0 {
		return fmt.Errorf("maturity %d must be positive", maturity)
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgCreateAccountRequest.
func (m MsgCreateAccountRequest) ValidateBasic() error {
	return validateAddress("owner", m.Owner)
}

// ValidateBasic performs stateless validation of MsgCreateRateOracleRequest.
func (m MsgCreateRateOracleRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	return RateOracle{ID: m.OracleID, Model: m.Model, Apy: m.Apy}.Validate()
}

// ValidateBasic performs stateless validation of MsgRecordRateIndexRequest.
func (m MsgRecordRateIndexRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if m.OracleID == "" {
		return fmt.Errorf("oracle id cannot be empty")
	}
	if m.Index.IsNil() || !m.Index.IsPositive() {
		return fmt.Errorf("index must be positive")
	}
	if m.Apy != nil && (m.Apy.IsNil() || m.Apy.IsNegative()) {
		return fmt.Errorf("apy cannot be negative")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgCreateMarketRequest.
func (m MsgCreateMarketRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if m.MarketID == 0 {
		return fmt.Errorf("market id must be positive")
	}
	if err := sdk.ValidateDenom(m.QuoteDenom); err != nil {
		return fmt.Errorf("invalid quote denom: %q: %w", m.QuoteDenom, err)
	}
	return m.Type.Validate()
}

// ValidateBasic performs stateless validation of MsgSetMarketConfigurationRequest.
func (m MsgSetMarketConfigurationRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if m.MarketID == 0 {
		return fmt.Errorf("market id must be positive")
	}
	return m.Config.Validate()
}

// ValidateBasic performs stateless validation of MsgSetRateOracleConfigurationRequest.
func (m MsgSetRateOracleConfigurationRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if m.MarketID == 0 {
		return fmt.Errorf("market id must be positive")
	}
	if m.OracleID == "" {
		return fmt.Errorf("oracle id cannot be empty")
	}
	if m.MaturityIndexCachingWindow < 0 {
		return fmt.Errorf("caching window cannot be negative")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgCreateVammRequest.
func (m MsgCreateVammRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	immutable := VammImmutableConfig{
		MarketID:            m.MarketID,
		Maturity:            m.Maturity,
		MaxLiquidityPerTick: m.MaxLiquidityPerTick,
		TickSpacing:         m.TickSpacing,
	}
	if err := immutable.Validate(); err != nil {
		return err
	}
	if err := m.Config.Validate(); err != nil {
		return err
	}
	if m.InitTick < m.Config.MinTickAllowed || m.InitTick > m.Config.MaxTickAllowed {
		return ErrInvalidTick.Wrapf("initial tick %d outside [%d, %d]", m.InitTick, m.Config.MinTickAllowed, m.Config.MaxTickAllowed)
	}
	if len(m.ObservedTimes) != len(m.ObservedTicks) {
		return fmt.Errorf("%d observed times but %d observed ticks", len(m.ObservedTimes), len(m.ObservedTicks))
	}
	for i := 1; i < len(m.ObservedTimes); i++ {
		if m.ObservedTimes[i] <= m.ObservedTimes[i-1] {
			return fmt.Errorf("observed times must be strictly increasing")
		}
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSetMarketMaturityConfigurationRequest.
func (m MsgSetMarketMaturityConfigurationRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if err := validateMarketMaturity(m.MarketID, m.Maturity); err != nil {
		return err
	}
	return m.Config.Validate()
}

// ValidateBasic performs stateless validation of MsgIncreaseObservationCardinalityNextRequest.
func (m MsgIncreaseObservationCardinalityNextRequest) ValidateBasic() error {
	if err := validateAddress("sender", m.Sender); err != nil {
		return err
	}
	if err := validateMarketMaturity(m.MarketID, m.Maturity); err != nil {
		return err
	}
	if m.CardinalityNext == 0 {
		return fmt.Errorf("cardinality must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgExecuteMakerOrderRequest.
func (m MsgExecuteMakerOrderRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	if err := validateMarketMaturity(m.MarketID, m.Maturity); err != nil {
		return err
	}
	if m.TickLower >= m.TickUpper {
		return ErrInvalidTick.Wrapf("lower tick %d must be below upper tick %d", m.TickLower, m.TickUpper)
	}
	if m.BaseAmount.IsNil() || m.BaseAmount.IsZero() {
		return fmt.Errorf("base amount must be non-zero")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgExecuteTakerOrderRequest.
func (m MsgExecuteTakerOrderRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	if err := validateMarketMaturity(m.MarketID, m.Maturity); err != nil {
		return err
	}
	if m.BaseAmount.IsNil() || m.BaseAmount.IsZero() {
		return fmt.Errorf("base amount must be non-zero")
	}
	if !m.SqrtPriceLimitX96.IsNil() && m.SqrtPriceLimitX96.IsNegative() {
		return ErrInvalidPriceLimit.Wrap("sqrt price limit cannot be negative")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSettleRequest.
func (m MsgSettleRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	return validateMarketMaturity(m.MarketID, m.Maturity)
}
