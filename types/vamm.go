package types

import (
	"fmt"

	"cosmossdk.io/math"
)

const (
	// MinTick is the lowest tick representable by a Q64.96 sqrt price.
	MinTick int32 = -887272
	// MaxTick is the highest tick representable by a Q64.96 sqrt price.
	MaxTick int32 = -MinTick
)

// Validate performs stateless validation of the immutable configuration.
func (c VammImmutableConfig) Validate() error {
	if c.MarketID == 0 {
		return fmt.Errorf("market id must be positive")
	}
	if c.Maturity <= 0 {
		return fmt.Errorf("maturity %d must be positive", c.Maturity)
	}
	if c.TickSpacing <= 0 {
		return fmt.Errorf("tick spacing %d must be positive", c.TickSpacing)
	}
	if c.MaxLiquidityPerTick.IsNil() || !c.MaxLiquidityPerTick.IsPositive() {
		return fmt.Errorf("max liquidity per tick must be positive")
	}
	return nil
}

// DefaultVammMutableConfig returns a configuration without spread or price impact
// spanning the whole tick range.
func DefaultVammMutableConfig() VammMutableConfig {
	return VammMutableConfig{
		Spread:          math.LegacyZeroDec(),
		PriceImpactPhi:  math.LegacyZeroDec(),
		PriceImpactBeta: math.LegacyZeroDec(),
		MinTickAllowed:  MinTick,
		MaxTickAllowed:  MaxTick,
	}
}

// Validate performs stateless validation of the mutable configuration.
func (c VammMutableConfig) Validate() error {
	for _, d := range []struct {
		name  string
		value math.LegacyDec
	}{
		{"spread", c.Spread},
		{"price impact phi", c.PriceImpactPhi},
		{"price impact beta", c.PriceImpactBeta},
	} {
		if d.value.IsNil() || d.value.IsNegative() {
			return fmt.Errorf("%s must be non-negative", d.name)
		}
	}
	if c.MinSecondsBetweenOracleObservations < 0 {
		return fmt.Errorf("min seconds between observations cannot be negative")
	}
	if c.InactiveWindowBeforeMaturity < 0 {
		return fmt.Errorf("inactive window before maturity cannot be negative")
	}
	if c.MinTickAllowed < MinTick || c.MaxTickAllowed > MaxTick || c.MinTickAllowed >= c.MaxTickAllowed {
		return ErrInvalidTick.Wrapf("allowed tick range [%d, %d] must be ordered and within [%d, %d]",
			c.MinTickAllowed, c.MaxTickAllowed, MinTick, MaxTick)
	}
	return nil
}

// Validate performs stateless validation of the pool.
func (v Vamm) Validate() error {
	if err := v.Immutable.Validate(); err != nil {
		return err
	}
	if err := v.Mutable.Validate(); err != nil {
		return err
	}
	if v.State.SqrtPriceX96.IsNil() || !v.State.SqrtPriceX96.IsPositive() {
		return fmt.Errorf("sqrt price must be positive")
	}
	if v.State.Liquidity.IsNil() || v.State.Liquidity.IsNegative() {
		return fmt.Errorf("liquidity must be non-negative")
	}
	if v.State.Tick < v.Mutable.MinTickAllowed || v.State.Tick > v.Mutable.MaxTickAllowed {
		return ErrInvalidTick.Wrapf("current tick %d outside [%d, %d]", v.State.Tick, v.Mutable.MinTickAllowed, v.Mutable.MaxTickAllowed)
	}
	if v.State.ObservationCardinality == 0 || v.State.ObservationCardinalityNext < v.State.ObservationCardinality {
		return fmt.Errorf("observation cardinality %d/%d is invalid", v.State.ObservationCardinality, v.State.ObservationCardinalityNext)
	}
	return nil
}

// CheckTickRange validates a maker range against spacing and the allowed bounds.
func (v Vamm) CheckTickRange(lower, upper int32) error {
	if lower >= upper {
		return ErrInvalidTick.Wrapf("lower tick %d must be below upper tick %d", lower, upper)
	}
	if lower < v.Mutable.MinTickAllowed || upper > v.Mutable.MaxTickAllowed {
		return ErrInvalidTick.Wrapf("range [%d, %d] outside allowed [%d, %d]", lower, upper, v.Mutable.MinTickAllowed, v.Mutable.MaxTickAllowed)
	}
	if lower%v.Immutable.TickSpacing != 0 || upper%v.Immutable.TickSpacing != 0 {
		return ErrInvalidTick.Wrapf("range [%d, %d] not aligned to spacing %d", lower, upper, v.Immutable.TickSpacing)
	}
	return nil
}

// NewTick returns an empty, uninitialized tick.
func NewTick() Tick {
	return Tick{LiquidityGross: math.ZeroInt(), LiquidityNet: math.ZeroInt()}
}

// Transform returns the observation advanced to timestamp while tick prevailed.
func (o Observation) Transform(timestamp int64, tick int32) Observation {
	return Observation{
		Timestamp:      timestamp,
		TickCumulative: o.TickCumulative + int64(tick)*(timestamp-o.Timestamp),
		Initialized:    true,
	}
}
