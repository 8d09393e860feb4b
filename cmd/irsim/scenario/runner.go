package scenario

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/provlabs/datedirs/keeper"
	"github.com/provlabs/datedirs/tickmath"
	"github.com/provlabs/datedirs/types"
)

// metadataBank serves the metadata of the scenario's quote token.
type metadataBank struct {
	metadata banktypes.Metadata
}

func newMetadataBank(denom string, decimals uint32) metadataBank {
	display := "display" + denom
	return metadataBank{metadata: banktypes.Metadata{
		Base:    denom,
		Display: display,
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: denom, Exponent: 0},
			{Denom: display, Exponent: decimals},
		},
	}}
}

func (b metadataBank) GetDenomMetaData(_ context.Context, denom string) (banktypes.Metadata, bool) {
	return b.metadata, denom == b.metadata.Base
}

// Runner executes a scenario against a keeper backed by an in-memory store.
type Runner struct {
	logger    log.Logger
	cms       storetypes.CommitMultiStore
	ctx       sdk.Context
	k         *keeper.Keeper
	msgs      types.MsgServer
	authority string

	sc       Scenario
	maturity int64
	accounts map[string]types.Account
	report   *Report
}

// NewRunner mounts a fresh store and keeper for sc.
func NewRunner(logger log.Logger, sc Scenario) (*Runner, error) {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	registry := codectypes.NewInterfaceRegistry()
	types.RegisterInterfaces(registry)

	authority := authtypes.NewModuleAddress(types.GovModuleName)
	k := keeper.NewKeeper(
		codec.NewProtoCodec(registry),
		runtime.NewKVStoreService(key),
		addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		authority,
		newMetadataBank(sc.Market.QuoteDenom, sc.Market.QuoteDecimals),
		nil,
	)

	header := cmtproto.Header{ChainID: "irsim", Height: 1, Time: time.Unix(sc.StartTime, 0).UTC()}
	return &Runner{
		logger:    logger,
		cms:       cms,
		ctx:       sdk.NewContext(cms, header, false, logger),
		k:         k,
		msgs:      keeper.NewMsgServer(k),
		authority: authority.String(),
		sc:        sc,
		maturity:  sc.StartTime + sc.Pool.Maturity,
		accounts:  make(map[string]types.Account, len(sc.Accounts)),
		report:    NewReport(sc),
	}, nil
}

// Run executes the scenario and returns its report.
func Run(logger log.Logger, sc Scenario) (*Report, error) {
	r, err := NewRunner(logger, sc)
	if err != nil {
		return nil, err
	}
	if err := r.setup(); err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	for i, step := range sc.OrderedSteps() {
		if err := r.step(step); err != nil {
			return nil, fmt.Errorf("step %d (%s at %d): %w", i, step.Action(), step.At, err)
		}
	}
	if err := r.collect(); err != nil {
		return nil, err
	}
	return r.report, nil
}

// owner derives a stable address for an account name.
func owner(name string) string {
	return authtypes.NewModuleAddress("irsim/" + name).String()
}

func (r *Runner) setup() error {
	m, p := r.sc.Market, r.sc.Pool
	apy, _ := parseDec(m.Apy)
	index, _ := parseDec(m.InitialIndex)
	maxLiquidity, _ := parseInt(p.MaxLiquidityPerTick)

	if _, err := r.msgs.CreateRateOracle(r.ctx, &types.MsgCreateRateOracleRequest{Authority: r.authority, OracleID: m.OracleID, Model: m.Model, Apy: apy}); err != nil {
		return err
	}
	if _, err := r.msgs.RecordRateIndex(r.ctx, &types.MsgRecordRateIndexRequest{Authority: r.authority, OracleID: m.OracleID, Index: index}); err != nil {
		return err
	}
	if _, err := r.msgs.CreateMarket(r.ctx, &types.MsgCreateMarketRequest{Authority: r.authority, MarketID: m.ID, QuoteDenom: m.QuoteDenom, Type: m.Model}); err != nil {
		return err
	}
	if _, err := r.msgs.SetRateOracleConfiguration(r.ctx, &types.MsgSetRateOracleConfigurationRequest{
		Authority:                  r.authority,
		MarketID:                   m.ID,
		OracleID:                   m.OracleID,
		MaturityIndexCachingWindow: m.CachingWindow,
	}); err != nil {
		return err
	}

	config := types.DefaultMarketConfiguration()
	config.TwapLookbackWindow = m.TwapLookbackWindow
	if m.MarkPriceBand != "" {
		band, err := parseDec(m.MarkPriceBand)
		if err != nil {
			return err
		}
		config.MarkPriceBand = band
	}
	if m.OpenInterestUpperLimit != "" {
		limit, err := parseInt(m.OpenInterestUpperLimit)
		if err != nil {
			return err
		}
		config.OpenInterestUpperLimit = limit
	}
	if _, err := r.msgs.SetMarketConfiguration(r.ctx, &types.MsgSetMarketConfigurationRequest{Authority: r.authority, MarketID: m.ID, Config: config}); err != nil {
		return err
	}

	vammConfig := types.DefaultVammMutableConfig()
	if p.Spread != "" {
		spread, err := parseDec(p.Spread)
		if err != nil {
			return err
		}
		vammConfig.Spread = spread
	}
	create := &types.MsgCreateVammRequest{
		Authority:           r.authority,
		MarketID:            m.ID,
		Maturity:            r.maturity,
		InitTick:            p.InitTick,
		MaxLiquidityPerTick: maxLiquidity,
		TickSpacing:         p.TickSpacing,
		Config:              vammConfig,
	}
	if p.HistorySeconds > 0 {
		create.ObservedTimes = []int64{r.sc.StartTime - p.HistorySeconds}
		create.ObservedTicks = []int32{p.InitTick}
	}
	if _, err := r.msgs.CreateVamm(r.ctx, create); err != nil {
		return err
	}
	if p.Cardinality > 1 {
		if _, err := r.msgs.IncreaseObservationCardinalityNext(r.ctx, &types.MsgIncreaseObservationCardinalityNextRequest{
			Sender:          owner("operator"),
			MarketID:        m.ID,
			Maturity:        r.maturity,
			CardinalityNext: p.Cardinality,
		}); err != nil {
			return err
		}
	}

	for _, name := range r.sc.Accounts {
		res, err := r.msgs.CreateAccount(r.ctx, &types.MsgCreateAccountRequest{Owner: owner(name)})
		if err != nil {
			return err
		}
		account, err := r.k.GetAccount(r.ctx, res.AccountID)
		if err != nil {
			return err
		}
		r.accounts[name] = account
		r.report.addAccount(name, account.ID)
	}

	r.commit()
	return nil
}

// advance moves to the block of step time at and runs the begin blocker.
func (r *Runner) advance(at int64) error {
	t := time.Unix(r.sc.StartTime+at, 0).UTC()
	if t.Before(r.ctx.BlockTime()) {
		return fmt.Errorf("time %s is before the current block time %s", t, r.ctx.BlockTime())
	}
	r.ctx = r.ctx.WithBlockHeight(r.ctx.BlockHeight() + 1).WithBlockTime(t)
	return r.k.BeginBlocker(r.ctx)
}

func (r *Runner) commit() {
	id := r.cms.Commit()
	r.logger.Debug("committed block", "height", r.ctx.BlockHeight(), "version", id.Version)
}

func (r *Runner) step(step Step) error {
	if err := r.advance(step.At); err != nil {
		return err
	}
	defer r.commit()

	m := r.sc.Market
	switch {
	case step.Index != "":
		index, _ := parseDec(step.Index)
		if _, err := r.msgs.RecordRateIndex(r.ctx, &types.MsgRecordRateIndexRequest{Authority: r.authority, OracleID: m.OracleID, Index: index}); err != nil {
			return err
		}
		r.report.addEvent(step.At, fmt.Sprintf("index %s", index))

	case step.Maker != nil:
		base, _ := parseInt(step.Maker.Base)
		account := r.accounts[step.Maker.Account]
		res, err := r.msgs.ExecuteMakerOrder(r.ctx, &types.MsgExecuteMakerOrderRequest{
			Owner:      account.Owner,
			AccountID:  account.ID,
			MarketID:   m.ID,
			Maturity:   r.maturity,
			TickLower:  step.Maker.Lower,
			TickUpper:  step.Maker.Upper,
			BaseAmount: base,
		})
		if err != nil {
			return err
		}
		r.report.addEvent(step.At, fmt.Sprintf("%s maker %s on [%d, %d]: liquidity %s",
			step.Maker.Account, r.report.Format(base), step.Maker.Lower, step.Maker.Upper, res.LiquidityDelta))

	case step.Taker != nil:
		base, _ := parseInt(step.Taker.Base)
		account := r.accounts[step.Taker.Account]
		msg := &types.MsgExecuteTakerOrderRequest{
			Owner:      account.Owner,
			AccountID:  account.ID,
			MarketID:   m.ID,
			Maturity:   r.maturity,
			BaseAmount: base,
		}
		if step.Taker.LimitTick != nil {
			limit, err := tickmath.SqrtRatioAtTick(*step.Taker.LimitTick)
			if err != nil {
				return err
			}
			msg.SqrtPriceLimitX96 = limit
		}
		res, err := r.msgs.ExecuteTakerOrder(r.ctx, msg)
		if err != nil {
			return err
		}
		spread := ""
		if res.SpreadCharge.IsPositive() {
			spread = fmt.Sprintf(", spread %s", r.report.Format(res.SpreadCharge))
		}
		r.report.addEvent(step.At, fmt.Sprintf("%s taker %s: quote %s%s, notional %s, tick %d",
			step.Taker.Account, r.report.Format(res.ExecutedBase), r.report.Format(res.ExecutedQuote), spread,
			r.report.Format(res.AnnualizedNotional), res.Tick))

	default:
		for _, name := range step.Settle {
			account := r.accounts[name]
			res, err := r.msgs.Settle(r.ctx, &types.MsgSettleRequest{Owner: account.Owner, AccountID: account.ID, MarketID: m.ID, Maturity: r.maturity})
			if err != nil {
				return fmt.Errorf("settle %s: %w", name, err)
			}
			r.report.addEvent(step.At, fmt.Sprintf("%s settled %s", name, r.report.Format(res.Cashflow)))
		}
	}
	return nil
}

// collect records the final balances of every account.
func (r *Runner) collect() error {
	for name, account := range r.accounts {
		filled, err := r.k.GetAccountFilledBalances(r.ctx, r.sc.Market.ID, r.maturity, account.ID)
		if err != nil {
			return fmt.Errorf("filled balances of %s: %w", name, err)
		}
		cashflow, settled, err := r.k.GetSettlement(r.ctx, r.sc.Market.ID, r.maturity, account.ID)
		if err != nil {
			return fmt.Errorf("settlement of %s: %w", name, err)
		}
		if !settled {
			cashflow = math.ZeroInt()
		}
		r.report.setBalances(name, filled, cashflow, settled)
	}

	oi, err := r.k.GetOpenInterest(r.ctx, r.sc.Market.ID, r.maturity)
	if err != nil {
		return err
	}
	r.report.OpenInterest = oi
	return nil
}
