package scenario

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"cosmossdk.io/math"
	"gopkg.in/yaml.v3"

	"github.com/provlabs/datedirs/types"
)

// Scenario scripts one pool from its creation until every account settles.
type Scenario struct {
	Name      string   `yaml:"name"`
	StartTime int64    `yaml:"start_time"`
	Market    Market   `yaml:"market"`
	Pool      Pool     `yaml:"pool"`
	Accounts  []string `yaml:"accounts"`
	Steps     []Step   `yaml:"steps"`
}

// Market describes the market and its rate oracle.
type Market struct {
	ID                     uint64          `yaml:"id"`
	QuoteDenom             string          `yaml:"quote_denom"`
	QuoteDecimals          uint32          `yaml:"quote_decimals"`
	Model                  types.RateModel `yaml:"model"`
	OracleID               string          `yaml:"oracle_id"`
	Apy                    string          `yaml:"apy"`
	InitialIndex           string          `yaml:"initial_index"`
	CachingWindow          int64           `yaml:"caching_window"`
	TwapLookbackWindow     int64           `yaml:"twap_lookback_window"`
	MarkPriceBand          string          `yaml:"mark_price_band,omitempty"`
	OpenInterestUpperLimit string          `yaml:"open_interest_upper_limit,omitempty"`
}

// Pool describes the vamm of the scenario's maturity.
type Pool struct {
	// Maturity is in seconds after the start time.
	Maturity            int64  `yaml:"maturity"`
	InitTick            int32  `yaml:"init_tick"`
	TickSpacing         int32  `yaml:"tick_spacing"`
	MaxLiquidityPerTick string `yaml:"max_liquidity_per_tick"`
	// HistorySeconds seeds one observation at the initial tick that long before the start.
	HistorySeconds int64  `yaml:"history_seconds"`
	Cardinality    uint32 `yaml:"cardinality"`
	Spread         string `yaml:"spread,omitempty"`
}

// Step is one action at At seconds after the start time.
type Step struct {
	At     int64      `yaml:"at"`
	Index  string     `yaml:"index,omitempty"`
	Maker  *MakerStep `yaml:"maker,omitempty"`
	Taker  *TakerStep `yaml:"taker,omitempty"`
	Settle []string   `yaml:"settle,omitempty"`
}

type MakerStep struct {
	Account string `yaml:"account"`
	Lower   int32  `yaml:"lower"`
	Upper   int32  `yaml:"upper"`
	Base    string `yaml:"base"`
}

type TakerStep struct {
	Account string `yaml:"account"`
	Base    string `yaml:"base"`
	// LimitTick bounds the price move when set.
	LimitTick *int32 `yaml:"limit_tick,omitempty"`
}

// Action names the single action of a step.
func (s Step) Action() string {
	switch {
	case s.Index != "":
		return "index"
	case s.Maker != nil:
		return "maker"
	case s.Taker != nil:
		return "taker"
	case len(s.Settle) > 0:
		return "settle"
	}
	return ""
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{s.Index != "", s.Maker != nil, s.Taker != nil, len(s.Settle) > 0} {
		if set {
			n++
		}
	}
	return n
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(bz)
}

// Parse decodes a YAML scenario, rejecting unknown fields, and validates it.
func Parse(bz []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(bz))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", sc.Name, err)
	}
	return &sc, nil
}

// Validate checks that amounts parse, accounts are known and every step has one action.
func (sc Scenario) Validate() error {
	if sc.StartTime <= 0 {
		return fmt.Errorf("start time must be positive")
	}
	if err := sc.Market.Model.Validate(); err != nil {
		return err
	}
	if sc.Market.ID == 0 || sc.Market.QuoteDenom == "" || sc.Market.OracleID == "" {
		return fmt.Errorf("market needs an id, quote denom and oracle id")
	}
	for name, value := range map[string]string{"apy": sc.Market.Apy, "initial index": sc.Market.InitialIndex} {
		if _, err := parseDec(value); err != nil {
			return fmt.Errorf("market %s: %w", name, err)
		}
	}
	if sc.Pool.Maturity <= 0 {
		return fmt.Errorf("pool maturity must be after the start time")
	}
	if _, err := parseInt(sc.Pool.MaxLiquidityPerTick); err != nil {
		return fmt.Errorf("pool max liquidity per tick: %w", err)
	}

	accounts := make(map[string]bool, len(sc.Accounts))
	for _, name := range sc.Accounts {
		if name == "" || accounts[name] {
			return fmt.Errorf("account names must be unique and non-empty")
		}
		accounts[name] = true
	}
	known := func(name string) error {
		if !accounts[name] {
			return fmt.Errorf("unknown account %q", name)
		}
		return nil
	}

	for i, step := range sc.Steps {
		if step.actions() != 1 {
			return fmt.Errorf("step %d must have exactly one action", i)
		}
		if step.At < 0 {
			return fmt.Errorf("step %d time cannot be negative", i)
		}
		var err error
		switch {
		case step.Index != "":
			_, err = parseDec(step.Index)
		case step.Maker != nil:
			if err = known(step.Maker.Account); err == nil {
				_, err = parseInt(step.Maker.Base)
			}
		case step.Taker != nil:
			if err = known(step.Taker.Account); err == nil {
				_, err = parseInt(step.Taker.Base)
			}
		default:
			for _, name := range step.Settle {
				if err = known(name); err != nil {
					break
				}
			}
		}
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Action(), err)
		}
	}
	return nil
}

// OrderedSteps returns the steps sorted by time, keeping file order for equal times.
func (sc Scenario) OrderedSteps() []Step {
	steps := append([]Step(nil), sc.Steps...)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].At < steps[j].At })
	return steps
}

func parseDec(s string) (math.LegacyDec, error) {
	if s == "" {
		return math.LegacyZeroDec(), nil
	}
	return math.LegacyNewDecFromStr(s)
}

func parseInt(s string) (math.Int, error) {
	v, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

// Example is a year long pool where a taker goes short against a single maker
// range half-way to maturity.
func Example() Scenario {
	const year = 31_536_000
	return Scenario{
		Name:      "half-year short",
		StartTime: 1_700_000_000,
		Market: Market{
			ID:                 1,
			QuoteDenom:         "usdc",
			QuoteDecimals:      6,
			Model:              types.RateModelLinear,
			OracleID:           "aave-usdc",
			Apy:                "0",
			InitialIndex:       "1.0",
			CachingWindow:      3600,
			TwapLookbackWindow: 120,
		},
		Pool: Pool{
			Maturity:            year,
			InitTick:            -16096,
			TickSpacing:         60,
			MaxLiquidityPerTick: "1000000000000000000000000000000",
			HistorySeconds:      3600,
			Cardinality:         16,
		},
		Accounts: []string{"maker", "taker"},
		Steps: []Step{
			{At: 0, Maker: &MakerStep{Account: "maker", Lower: -19500, Upper: -11040, Base: "10000000000"}},
			{At: year / 2, Index: "1.01"},
			{At: year / 2, Taker: &TakerStep{Account: "taker", Base: "-1000000000"}},
			{At: year - 60, Index: "1.02"},
			{At: year, Settle: []string{"maker", "taker"}},
		},
	}
}
