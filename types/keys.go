package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "datedirs"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	// It should be synced with the gov module's name if it is ever changed.
	// See: https://github.com/cosmos/cosmos-sdk/blob/v0.52.0-beta.2/x/gov/types/keys.go#L9
	GovModuleName = "gov"
)

var (
	// AccountsKeyPrefix is the prefix to retrieve all Accounts
	AccountsKeyPrefix = collections.NewPrefix(0)
	// AccountsName is a human-readable name for the accounts collection.
	AccountsName = "accounts"
	// AccountSequenceKeyPrefix is the prefix of the account id sequence.
	AccountSequenceKeyPrefix = collections.NewPrefix(1)
	// AccountSequenceName is a human-readable name for the account id sequence.
	AccountSequenceName = "account_sequence"
	// MarketsKeyPrefix is the prefix to retrieve all Markets
	MarketsKeyPrefix = collections.NewPrefix(2)
	// MarketsName is a human-readable name for the markets collection.
	MarketsName = "markets"
	// RateOraclesKeyPrefix is the prefix to retrieve all RateOracles
	RateOraclesKeyPrefix = collections.NewPrefix(3)
	// RateOraclesName is a human-readable name for the rate oracles collection.
	RateOraclesName = "rate_oracles"
	// VammsKeyPrefix is the prefix to retrieve all Vamms keyed by (market, maturity)
	VammsKeyPrefix = collections.NewPrefix(4)
	// VammsName is a human-readable name for the vamms collection.
	VammsName = "vamms"
	// TicksKeyPrefix is the prefix of the initialized ticks keyed by (market, maturity, tick)
	TicksKeyPrefix = collections.NewPrefix(5)
	// TicksName is a human-readable name for the ticks collection.
	TicksName = "ticks"
	// ObservationsKeyPrefix is the prefix of the observation ring buffers keyed by (market, maturity, slot)
	ObservationsKeyPrefix = collections.NewPrefix(6)
	// ObservationsName is a human-readable name for the observations collection.
	ObservationsName = "observations"
	// MakerPositionsKeyPrefix is the prefix of maker ranges keyed by (market, maturity, account, range)
	MakerPositionsKeyPrefix = collections.NewPrefix(7)
	// MakerPositionsName is a human-readable name for the maker positions collection.
	MakerPositionsName = "maker_positions"
	// AccountPositionsKeyPrefix is the prefix of filled balances keyed by (market, maturity, account)
	AccountPositionsKeyPrefix = collections.NewPrefix(8)
	// AccountPositionsName is a human-readable name for the account positions collection.
	AccountPositionsName = "account_positions"
	// TakerMaturitiesKeyPrefix is the prefix of the (account, market, maturity) taker exposure index
	TakerMaturitiesKeyPrefix = collections.NewPrefix(9)
	// TakerMaturitiesName is a human-readable name for the taker maturities index.
	TakerMaturitiesName = "taker_maturities"
	// OpenInterestKeyPrefix is the prefix of the long open interest per (market, maturity)
	OpenInterestKeyPrefix = collections.NewPrefix(10)
	// OpenInterestName is a human-readable name for the open interest collection.
	OpenInterestName = "open_interest"
	// MaturityIndicesKeyPrefix is the prefix of the cached maturity indices per (market, maturity)
	MaturityIndicesKeyPrefix = collections.NewPrefix(11)
	// MaturityIndicesName is a human-readable name for the maturity indices collection.
	MaturityIndicesName = "maturity_indices"
	// PreMaturityIndicesKeyPrefix is the prefix of the last index seen before maturity per (market, maturity)
	PreMaturityIndicesKeyPrefix = collections.NewPrefix(12)
	// PreMaturityIndicesName is a human-readable name for the pre-maturity index cache.
	PreMaturityIndicesName = "pre_maturity_indices"
	// SettledAccountsKeyPrefix is the prefix of the settled (market, maturity, account) set
	SettledAccountsKeyPrefix = collections.NewPrefix(13)
	// SettledAccountsName is a human-readable name for the settled accounts set.
	SettledAccountsName = "settled_accounts"
	// SettlementsKeyPrefix is the prefix of settlement cashflows keyed by (market, maturity, account)
	SettlementsKeyPrefix = collections.NewPrefix(14)
	// SettlementsName is a human-readable name for the settlements collection.
	SettlementsName = "settlements"
	// MaturityQueueKeyPrefix is the prefix of the (maturity, market) queue walked by the begin blocker
	MaturityQueueKeyPrefix = collections.NewPrefix(15)
	// MaturityQueueName is a human-readable name for the maturity queue.
	MaturityQueueName = "maturity_queue"
	// CollectedSpreadKeyPrefix is the prefix of the spread charged to takers per (market, maturity)
	CollectedSpreadKeyPrefix = collections.NewPrefix(16)
	// CollectedSpreadName is a human-readable name for the collected spread collection.
	CollectedSpreadName = "collected_spread"
)

// RangeKey packs a tick range into a single ordered key component.
func RangeKey(lower, upper int32) uint64 {
	return uint64(uint32(lower)^0x80000000)<<32 | uint64(uint32(upper)^0x80000000)
}

// SplitRangeKey reverses RangeKey.
func SplitRangeKey(key uint64) (lower, upper int32) {
	return int32(uint32(key>>32) ^ 0x80000000), int32(uint32(key) ^ 0x80000000)
}
