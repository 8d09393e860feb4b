package scenario_test

import (
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/cmd/irsim/scenario"
)

func TestRunExample(t *testing.T) {
	report, err := scenario.Run(log.NewNopLogger(), scenario.Example())
	require.NoError(t, err, "Run")

	taker, ok := report.Account("taker")
	require.True(t, ok, "taker result")
	require.Equal(t, uint64(2), taker.AccountID, "taker account id")
	require.Equal(t, "-1000000000", taker.FilledBase.String(), "taker filled base")
	require.Equal(t, "48356576", taker.FilledQuote.String(), "taker filled quote")
	require.Equal(t, "-10000000", taker.AccruedInterest.String(), "taker accrued interest")
	require.True(t, taker.Settled, "taker settled")
	require.Equal(t, "38356576", taker.Cashflow.String(), "taker cashflow")

	maker, ok := report.Account("maker")
	require.True(t, ok, "maker result")
	require.Equal(t, uint64(1), maker.AccountID, "maker account id")
	require.Equal(t, "1000000000", maker.FilledBase.String(), "maker filled base")
	require.Equal(t, "-48356576", maker.FilledQuote.String(), "maker filled quote")
	require.True(t, maker.Settled, "maker settled")
	require.Equal(t, "10000000", maker.AccruedInterest.String(), "maker accrued interest")
	require.Equal(t, "-38356576", maker.Cashflow.String(), "maker cashflow")

	require.True(t, report.SettlementSum().IsZero(), "settlement sum %s", report.SettlementSum())

	messages := make([]string, 0, len(report.Events))
	for _, e := range report.Events {
		messages = append(messages, e.Message)
	}
	require.Equal(t, []string{
		"maker maker 10000.000000 on [-19500, -11040]: liquidity 50351905911",
		"index 1.010000000000000000",
		"taker taker -1000.000000: quote 48.356576, notional -505.000000, tick -15227",
		"index 1.020000000000000000",
		"maker settled -38.356576",
		"taker settled 38.356576",
	}, messages, "events")
}

func TestRunShiftedStart(t *testing.T) {
	sc := scenario.Example()
	sc.StartTime += 86_400

	report, err := scenario.Run(log.NewNopLogger(), sc)
	require.NoError(t, err, "Run")
	taker, ok := report.Account("taker")
	require.True(t, ok, "taker result")
	require.Equal(t, "38356576", taker.Cashflow.String(), "taker cashflow")
}

func TestRunWithSpread(t *testing.T) {
	sc := scenario.Example()
	sc.Pool.Spread = "0.001611084158415841"

	report, err := scenario.Run(log.NewNopLogger(), sc)
	require.NoError(t, err, "Run")
	taker, ok := report.Account("taker")
	require.True(t, ok, "taker result")
	require.Equal(t, "45102186", taker.FilledQuote.String(), "taker filled quote")
	require.Equal(t, "35102186", taker.Cashflow.String(), "taker cashflow")
	maker, ok := report.Account("maker")
	require.True(t, ok, "maker result")
	require.Equal(t, "-35102186", maker.Cashflow.String(), "maker cashflow")
	require.True(t, report.SettlementSum().IsZero(), "settlement sum %s", report.SettlementSum())
	require.Equal(t, "taker taker -1000.000000: quote 45.102186, spread 3.254390, notional -505.000000, tick -15227", report.Events[2].Message, "taker event")
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name   string
		modify func(sc *scenario.Scenario)
		err    string
	}{
		{
			name: "settle before maturity",
			modify: func(sc *scenario.Scenario) {
				sc.Steps[4].At = sc.Pool.Maturity - 3600
			},
			err: "settle maker",
		},
		{
			name: "decreasing index",
			modify: func(sc *scenario.Scenario) {
				sc.Steps[3].Index = "1.005"
			},
			err: "step 3 (index",
		},
		{
			name: "taker without liquidity",
			modify: func(sc *scenario.Scenario) {
				sc.Steps[0].At = sc.Pool.Maturity - 120
			},
			err: "taker",
		},
		{
			name: "misaligned maker range",
			modify: func(sc *scenario.Scenario) {
				sc.Steps[0].Maker.Lower = -19501
			},
			err: "step 0 (maker",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc := scenario.Example()
			tc.modify(&sc)
			_, err := scenario.Run(log.NewNopLogger(), sc)
			require.ErrorContains(t, err, tc.err, "Run")
		})
	}
}
