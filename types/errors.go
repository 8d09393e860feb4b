package types

import "cosmossdk.io/errors"

// Configuration errors.
var (
	ErrInvalidRequest       = errors.Register(ModuleName, 2, "invalid request")
	ErrInvalidConfiguration = errors.Register(ModuleName, 3, "invalid configuration")
	ErrInvalidTick          = errors.Register(ModuleName, 4, "invalid tick")
	ErrLiquidityOverflow    = errors.Register(ModuleName, 5, "liquidity per tick overflow")
	ErrInvalidPriceLimit    = errors.Register(ModuleName, 6, "invalid price limit")
	ErrUnauthorized         = errors.Register(ModuleName, 7, "unauthorized")
	ErrNotFound             = errors.Register(ModuleName, 8, "not found")
	ErrAlreadyExists        = errors.Register(ModuleName, 9, "already exists")
)

// Order errors.
var (
	ErrLimitExceeded                 = errors.Register(ModuleName, 20, "limit exceeded")
	ErrPriceLimitReached             = errors.Register(ModuleName, 21, "price limit reached")
	ErrInsufficientLiquidity         = errors.Register(ModuleName, 22, "insufficient liquidity")
	ErrMarkPriceBandExceeded         = errors.Register(ModuleName, 23, "mark price band exceeded")
	ErrInsufficientPositionLiquidity = errors.Register(ModuleName, 24, "insufficient position liquidity")
	ErrMarketDisabled                = errors.Register(ModuleName, 25, "market disabled")
	ErrMaturityReached               = errors.Register(ModuleName, 26, "maturity reached")
	ErrCloseToMaturity               = errors.Register(ModuleName, 27, "too close to maturity")
)

// Oracle and settlement errors.
var (
	ErrOracleNotInitialized    = errors.Register(ModuleName, 40, "rate oracle not initialized")
	ErrNonMonotonicIndex       = errors.Register(ModuleName, 41, "rate index must not decrease")
	ErrObservationTooOld       = errors.Register(ModuleName, 42, "observation window predates oldest observation")
	ErrMissingPreMaturityIndex = errors.Register(ModuleName, 43, "no pre-maturity index to back-fill from")
	ErrMaturityIndexNotCached  = errors.Register(ModuleName, 44, "maturity index not cached")
	ErrAlreadySettled          = errors.Register(ModuleName, 45, "account already settled")
	ErrNotYetMatured           = errors.Register(ModuleName, 46, "maturity not reached")
)
