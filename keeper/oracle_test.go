package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/datedirs/types"
)

func (s *TestSuite) TestRecordRateIndex() {
	tests := []struct {
		name   string
		id     string
		index  string
		apy    sdkmath.LegacyDec
		expErr error
	}{
		{
			name:   "unknown oracle",
			id:     "missing",
			index:  "1.1",
			expErr: types.ErrNotFound,
		},
		{
			name:   "zero index",
			id:     oracleID,
			index:  "0",
			expErr: types.ErrInvalidRequest,
		},
		{
			name:   "decreasing index",
			id:     oracleID,
			index:  "0.99",
			expErr: types.ErrNonMonotonicIndex,
		},
		{
			name:   "negative apy",
			id:     oracleID,
			index:  "1.1",
			apy:    dec("-0.01"),
			expErr: types.ErrInvalidRequest,
		},
		{
			name:  "equal index",
			id:    oracleID,
			index: "1.0",
		},
		{
			name:  "increasing index with new apy",
			id:    oracleID,
			index: "1.1",
			apy:   dec("0.07"),
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.setupMarket(types.RateModelLinear, "0.05")
			s.setBlockTime(t0 + 60)
			err := s.k.RecordRateIndex(s.ctx, tc.id, dec(tc.index), tc.apy)
			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr, "RecordRateIndex")
				oracle, err := s.k.GetRateOracle(s.ctx, oracleID)
				s.Require().NoError(err, "GetRateOracle")
				s.Assert().Equal(dec("1.0").String(), oracle.LastIndex.String(), "last index unchanged")
				return
			}
			s.Require().NoError(err, "RecordRateIndex")
			oracle, err := s.k.GetRateOracle(s.ctx, oracleID)
			s.Require().NoError(err, "GetRateOracle")
			s.Assert().Equal(dec(tc.index).String(), oracle.LastIndex.String(), "last index")
			s.Assert().Equal(t0+60, oracle.LastUpdated, "last updated")
			if !tc.apy.IsNil() {
				s.Assert().Equal(tc.apy.String(), oracle.Apy.String(), "apy")
			}
		})
	}
}

func (s *TestSuite) TestCurrentIndex() {
	s.Run("oracle without observations", func() {
		s.SetupTest()
		s.Require().NoError(s.k.CreateRateOracle(s.ctx, oracleID, types.RateModelLinear, dec("0.05")), "CreateRateOracle")
		market, err := s.k.CreateMarket(s.ctx, marketID, "usdc", types.RateModelLinear)
		s.Require().NoError(err, "CreateMarket")
		_, err = s.k.CurrentIndex(s.ctx, market)
		s.Require().ErrorIs(err, types.ErrOracleNotInitialized, "market without oracle")

		s.Require().NoError(s.k.SetRateOracleConfiguration(s.ctx, marketID, oracleID, 0), "SetRateOracleConfiguration")
		market, err = s.k.GetMarket(s.ctx, marketID)
		s.Require().NoError(err, "GetMarket")
		_, err = s.k.CurrentIndex(s.ctx, market)
		s.Require().ErrorIs(err, types.ErrOracleNotInitialized, "oracle without observations")
	})

	s.Run("linear projection", func() {
		s.SetupTest()
		market := s.setupMarket(types.RateModelLinear, "0.0365")
		s.setBlockTime(t0 + year/2)
		index, err := s.k.CurrentIndex(s.ctx, market)
		s.Require().NoError(err, "CurrentIndex")
		s.Assert().Equal("1.018250000000000000", index.String(), "index")
	})

	s.Run("compounding projection", func() {
		s.SetupTest()
		market := s.setupMarket(types.RateModelCompounding, "0.21")
		s.setBlockTime(t0 + year/2)
		index, err := s.k.CurrentIndex(s.ctx, market)
		s.Require().NoError(err, "CurrentIndex")
		s.Assert().True(index.Sub(dec("1.1")).Abs().LTE(dec("0.000000001")), "index %s should be about sqrt(1.21)", index)
	})

	s.Run("oracle model must match market", func() {
		s.SetupTest()
		s.Require().NoError(s.k.CreateRateOracle(s.ctx, oracleID, types.RateModelCompounding, dec("0.05")), "CreateRateOracle")
		_, err := s.k.CreateMarket(s.ctx, marketID, "usdc", types.RateModelLinear)
		s.Require().NoError(err, "CreateMarket")
		err = s.k.SetRateOracleConfiguration(s.ctx, marketID, oracleID, 0)
		s.Require().ErrorIs(err, types.ErrInvalidConfiguration, "SetRateOracleConfiguration")
	})
}

func (s *TestSuite) TestCacheMaturityIndex() {
	tests := []struct {
		name string
		// mint places an order before maturity so a pre-maturity index is remembered.
		mint     bool
		recordAt int64
		index    string
		cacheAt  int64
		expected string
		expErr   error
	}{
		{
			name:    "before maturity",
			cacheAt: maturity - 1,
			expErr:  types.ErrNotYetMatured,
		},
		{
			name:     "last observation before maturity is extrapolated",
			cacheAt:  maturity + 10,
			expected: "1.036500000000000000",
		},
		{
			name:     "observation exactly at maturity",
			recordAt: maturity,
			index:    "1.04",
			cacheAt:  maturity + 7200,
			expected: "1.040000000000000000",
		},
		{
			name:     "late observation inside the caching window",
			recordAt: maturity + 100,
			index:    "1.05",
			cacheAt:  maturity + 100,
			expected: "1.050000000000000000",
		},
		{
			name:     "late observation after the caching window is interpolated",
			mint:     true,
			recordAt: maturity + 7200,
			index:    "1.05",
			cacheAt:  maturity + 7200,
			expected: "1.049988587080575211",
		},
		{
			name:     "late observation without a pre-maturity index",
			recordAt: maturity + 7200,
			index:    "1.05",
			cacheAt:  maturity + 7200,
			expErr:   types.ErrMissingPreMaturityIndex,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.setupMarket(types.RateModelLinear, "0.0365")
			s.setupVamm(types.DefaultVammMutableConfig())
			if tc.mint {
				s.mint(s.createAccount(), -19500, -11040, 1_000_000_000)
			}
			if tc.index != "" {
				s.setBlockTime(tc.recordAt)
				s.recordIndex(tc.index)
			}
			s.setBlockTime(tc.cacheAt)

			index, err := s.k.CacheMaturityIndex(s.ctx, marketID, maturity)
			if tc.expErr != nil {
				s.Require().ErrorIs(err, tc.expErr, "CacheMaturityIndex")
				has, err := s.k.MaturityIndices.Has(s.ctx, pool())
				s.Require().NoError(err, "MaturityIndices.Has")
				s.Assert().False(has, "maturity index stored")
				return
			}
			s.Require().NoError(err, "CacheMaturityIndex")
			s.Assert().Equal(tc.expected, index.String(), "maturity index")

			due, err := s.k.MaturityQueue.Due(s.ctx, tc.cacheAt)
			s.Require().NoError(err, "MaturityQueue.Due")
			s.Assert().Empty(due, "pool should leave the maturity queue once cached")

			// later observations never move a cached index
			s.setBlockTime(tc.cacheAt + year)
			s.recordIndex("2.0")
			again, err := s.k.CacheMaturityIndex(s.ctx, marketID, maturity)
			s.Require().NoError(err, "CacheMaturityIndex again")
			s.Assert().Equal(tc.expected, again.String(), "cached maturity index")
		})
	}
}

func (s *TestSuite) TestMaturityIndexBeforeMaturity() {
	market := s.setupMarket(types.RateModelLinear, "0.0365")
	s.setupVamm(types.DefaultVammMutableConfig())

	index, cached, err := s.k.MaturityIndex(s.ctx, market, maturity)
	s.Require().NoError(err, "MaturityIndex")
	s.Assert().False(cached, "cached")
	s.Assert().Equal("1.036500000000000000", index.String(), "projected maturity index")

	_, err = s.k.CacheMaturityIndex(s.ctx, marketID, maturity)
	s.Require().ErrorIs(err, types.ErrNotYetMatured, "CacheMaturityIndex")
}

func (s *TestSuite) TestBeginBlockerCachesDueMaturities() {
	s.setupMarket(types.RateModelLinear, "0.0365")
	s.setupVamm(types.DefaultVammMutableConfig())

	s.setBlockTime(maturity - 1)
	s.Require().NoError(s.k.BeginBlocker(s.ctx), "BeginBlocker before maturity")
	has, err := s.k.MaturityIndices.Has(s.ctx, pool())
	s.Require().NoError(err, "MaturityIndices.Has")
	s.Assert().False(has, "maturity index cached early")

	s.setBlockTime(maturity)
	s.Require().NoError(s.k.BeginBlocker(s.ctx), "BeginBlocker at maturity")
	index, err := s.k.MaturityIndices.Get(s.ctx, pool())
	s.Require().NoError(err, "MaturityIndices.Get")
	s.Assert().Equal("1.036500000000000000", index.String(), "maturity index")
}

func (s *TestSuite) TestBeginBlockerKeepsUnresolvedMaturitiesQueued() {
	s.setupMarket(types.RateModelLinear, "0.0365")
	s.setupVamm(types.DefaultVammMutableConfig())

	s.setBlockTime(maturity + 7200)
	s.recordIndex("1.05")
	s.Require().NoError(s.k.BeginBlocker(s.ctx), "BeginBlocker")

	has, err := s.k.MaturityIndices.Has(s.ctx, pool())
	s.Require().NoError(err, "MaturityIndices.Has")
	s.Assert().False(has, "maturity index without a pre-maturity index")
	due, err := s.k.MaturityQueue.Due(s.ctx, maturity+7200)
	s.Require().NoError(err, "MaturityQueue.Due")
	s.Assert().Len(due, 1, "pool stays queued")
}
