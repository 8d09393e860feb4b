package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/provlabs/datedirs/cmd/irsim/scenario"
	"github.com/provlabs/datedirs/types"
)

func TestExampleRoundTrip(t *testing.T) {
	bz, err := yaml.Marshal(scenario.Example())
	require.NoError(t, err, "yaml.Marshal")
	require.Contains(t, string(bz), "model: linear", "rate model is written by name")

	sc, err := scenario.Parse(bz)
	require.NoError(t, err, "Parse")
	require.Equal(t, scenario.Example(), *sc, "parsed example")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	bz, err := yaml.Marshal(scenario.Example())
	require.NoError(t, err, "yaml.Marshal")
	bz = append(bz, []byte("leverage: 10\n")...)

	_, err = scenario.Parse(bz)
	require.ErrorContains(t, err, "leverage", "unknown field")
}

func TestLoad(t *testing.T) {
	bz, err := yaml.Marshal(scenario.Example())
	require.NoError(t, err, "yaml.Marshal")
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, bz, 0o600), "WriteFile")

	sc, err := scenario.Load(path)
	require.NoError(t, err, "Load")
	require.Equal(t, "half-year short", sc.Name, "name")

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read scenario", "missing file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(sc *scenario.Scenario)
		err    string
	}{
		{
			name:   "example",
			modify: func(*scenario.Scenario) {},
		},
		{
			name:   "no start time",
			modify: func(sc *scenario.Scenario) { sc.StartTime = 0 },
			err:    "start time must be positive",
		},
		{
			name:   "unspecified model",
			modify: func(sc *scenario.Scenario) { sc.Market.Model = types.RateModelUnspecified },
			err:    "rate model",
		},
		{
			name:   "missing oracle",
			modify: func(sc *scenario.Scenario) { sc.Market.OracleID = "" },
			err:    "market needs an id, quote denom and oracle id",
		},
		{
			name:   "bad apy",
			modify: func(sc *scenario.Scenario) { sc.Market.Apy = "five" },
			err:    "market apy",
		},
		{
			name:   "maturity at start",
			modify: func(sc *scenario.Scenario) { sc.Pool.Maturity = 0 },
			err:    "pool maturity must be after the start time",
		},
		{
			name:   "bad max liquidity",
			modify: func(sc *scenario.Scenario) { sc.Pool.MaxLiquidityPerTick = "1e30" },
			err:    "pool max liquidity per tick",
		},
		{
			name:   "duplicate account",
			modify: func(sc *scenario.Scenario) { sc.Accounts = []string{"maker", "maker"} },
			err:    "account names must be unique and non-empty",
		},
		{
			name:   "empty step",
			modify: func(sc *scenario.Scenario) { sc.Steps = append(sc.Steps, scenario.Step{At: 10}) },
			err:    "step 5 must have exactly one action",
		},
		{
			name: "two actions",
			modify: func(sc *scenario.Scenario) {
				sc.Steps[1].Settle = []string{"maker"}
			},
			err: "step 1 must have exactly one action",
		},
		{
			name:   "negative time",
			modify: func(sc *scenario.Scenario) { sc.Steps[0].At = -1 },
			err:    "step 0 time cannot be negative",
		},
		{
			name:   "bad index",
			modify: func(sc *scenario.Scenario) { sc.Steps[1].Index = "up" },
			err:    "step 1 (index)",
		},
		{
			name:   "unknown maker",
			modify: func(sc *scenario.Scenario) { sc.Steps[0].Maker.Account = "bob" },
			err:    `unknown account "bob"`,
		},
		{
			name:   "bad taker base",
			modify: func(sc *scenario.Scenario) { sc.Steps[2].Taker.Base = "-1.5" },
			err:    `invalid integer "-1.5"`,
		},
		{
			name:   "unknown settler",
			modify: func(sc *scenario.Scenario) { sc.Steps[4].Settle = []string{"taker", "carol"} },
			err:    `unknown account "carol"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc := scenario.Example()
			tc.modify(&sc)
			err := sc.Validate()
			if tc.err == "" {
				require.NoError(t, err, "Validate")
				return
			}
			require.ErrorContains(t, err, tc.err, "Validate")
		})
	}
}

func TestOrderedSteps(t *testing.T) {
	sc := scenario.Scenario{Steps: []scenario.Step{
		{At: 20, Index: "1.2"},
		{At: 10, Index: "1.1"},
		{At: 20, Settle: []string{"a"}},
		{At: 0, Index: "1.0"},
	}}

	steps := sc.OrderedSteps()
	actions := make([]string, 0, len(steps))
	for _, step := range steps {
		actions = append(actions, step.Action())
	}
	require.Equal(t, []string{"index", "index", "index", "settle"}, actions, "actions")
	require.Equal(t, []int64{0, 10, 20, 20}, []int64{steps[0].At, steps[1].At, steps[2].At, steps[3].At}, "times")
	require.Equal(t, "1.2", steps[2].Index, "equal times keep file order")
	require.Equal(t, int64(20), sc.Steps[0].At, "source steps are not reordered")
}
