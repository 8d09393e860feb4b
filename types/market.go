package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
)

var rateModelNames = map[RateModel]string{
	RateModelUnspecified: "unspecified",
	RateModelCompounding: "compounding",
	RateModelLinear:      "linear",
}

// ParseRateModel parses a rate model by its short name, e.g. "linear", or
// its proto enum name.
func ParseRateModel(s string) (RateModel, error) {
	for m, name := range rateModelNames {
		if m == RateModelUnspecified {
			continue
		}
		if strings.EqualFold(name, s) || strings.EqualFold(RateModel_name[int32(m)], s) {
			return m, nil
		}
	}
	return RateModelUnspecified, fmt.Errorf("unknown rate model %q", s)
}

// MarshalText writes the short name of the model.
func (m RateModel) MarshalText() ([]byte, error) {
	if name, ok := rateModelNames[m]; ok {
		return []byte(name), nil
	}
	return nil, fmt.Errorf("invalid rate model %d", int32(m))
}

func (m *RateModel) UnmarshalText(text []byte) error {
	parsed, err := ParseRateModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Validate returns an error unless the model is compounding or linear.
func (m RateModel) Validate() error {
	if m != RateModelCompounding && m != RateModelLinear {
		return fmt.Errorf("invalid rate model %s", m)
	}
	return nil
}

// DefaultMarketConfiguration returns an unlimited configuration with a two minute TWAP.
func DefaultMarketConfiguration() MarketConfiguration {
	return MarketConfiguration{
		TwapLookbackWindow:     120,
		MarkPriceBand:          math.LegacyZeroDec(),
		PositionSizeLowerLimit: math.ZeroInt(),
		PositionSizeUpperLimit: math.ZeroInt(),
		OpenInterestUpperLimit: math.ZeroInt(),
	}
}

// Validate checks the configuration is internally consistent.
func (c MarketConfiguration) Validate() error {
	if c.TwapLookbackWindow < 0 {
		return fmt.Errorf("twap lookback window %d cannot be negative", c.TwapLookbackWindow)
	}
	if c.MarkPriceBand.IsNil() || c.MarkPriceBand.IsNegative() {
		return fmt.Errorf("mark price band must be non-negative")
	}
	limits := []struct {
		name  string
		value math.Int
	}{
		{"position size lower limit", c.PositionSizeLowerLimit},
		{"position size upper limit", c.PositionSizeUpperLimit},
		{"open interest upper limit", c.OpenInterestUpperLimit},
	}
	for _, l := range limits {
		if l.value.IsNil() || l.value.IsNegative() {
			return fmt.Errorf("%s must be non-negative", l.name)
		}
	}
	if c.PositionSizeUpperLimit.IsPositive() && c.PositionSizeLowerLimit.GT(c.PositionSizeUpperLimit) {
		return fmt.Errorf("position size lower limit %s exceeds upper limit %s", c.PositionSizeLowerLimit, c.PositionSizeUpperLimit)
	}
	return nil
}

// CheckPositionSize returns ErrLimitExceeded when |base| is outside the size limits.
func (c MarketConfiguration) CheckPositionSize(base math.Int) error {
	size := base.Abs()
	if size.LT(c.PositionSizeLowerLimit) {
		return ErrLimitExceeded.Wrapf("order size %s below lower limit %s", size, c.PositionSizeLowerLimit)
	}
	if c.PositionSizeUpperLimit.IsPositive() && size.GT(c.PositionSizeUpperLimit) {
		return ErrLimitExceeded.Wrapf("order size %s above upper limit %s", size, c.PositionSizeUpperLimit)
	}
	return nil
}

// Validate performs stateless validation of the market.
func (m Market) Validate() error {
	if m.ID == 0 {
		return fmt.Errorf("market id must be positive")
	}
	if strings.TrimSpace(m.QuoteDenom) == "" {
		return fmt.Errorf("market %d quote denom cannot be empty", m.ID)
	}
	if err := m.Type.Validate(); err != nil {
		return fmt.Errorf("market %d: %w", m.ID, err)
	}
	if m.MaturityIndexCachingWindow < 0 {
		return fmt.Errorf("market %d caching window cannot be negative", m.ID)
	}
	if err := m.Config.Validate(); err != nil {
		return fmt.Errorf("market %d: %w", m.ID, err)
	}
	return nil
}

// HasOracle reports whether a rate oracle has been configured for the market.
func (m Market) HasOracle() bool {
	return m.OracleID != ""
}
