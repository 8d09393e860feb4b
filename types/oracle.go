package types

import (
	"fmt"
	"strings"
)

// Initialized reports whether the oracle has received an observation.
func (o RateOracle) Initialized() bool {
	return !o.LastIndex.IsNil() && o.LastIndex.IsPositive()
}

// Validate performs stateless validation of the oracle.
func (o RateOracle) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return fmt.Errorf("rate oracle id cannot be empty")
	}
	if err := o.Model.Validate(); err != nil {
		return fmt.Errorf("rate oracle %s: %w", o.ID, err)
	}
	if o.Apy.IsNil() || o.Apy.IsNegative() {
		return fmt.Errorf("rate oracle %s apy must be non-negative", o.ID)
	}
	if !o.LastIndex.IsNil() && o.LastIndex.IsNegative() {
		return fmt.Errorf("rate oracle %s index cannot be negative", o.ID)
	}
	return nil
}
