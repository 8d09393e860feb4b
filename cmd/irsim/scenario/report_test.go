package scenario_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/provlabs/datedirs/cmd/irsim/scenario"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   math.Int
		decimals uint32
		expected string
	}{
		{name: "nil", amount: math.Int{}, decimals: 6, expected: "0"},
		{name: "zero", amount: math.ZeroInt(), decimals: 6, expected: "0.000000"},
		{name: "whole units", amount: math.NewInt(5_000_000), decimals: 6, expected: "5.000000"},
		{name: "fraction", amount: math.NewInt(48_356_576), decimals: 6, expected: "48.356576"},
		{name: "negative", amount: math.NewInt(-14_178_288), decimals: 6, expected: "-14.178288"},
		{name: "below one unit", amount: math.NewInt(-7), decimals: 6, expected: "-0.000007"},
		{name: "no decimals", amount: math.NewInt(1234), decimals: 0, expected: "1234"},
		{name: "large", amount: math.NewIntWithDecimal(1, 30), decimals: 18, expected: "1000000000000.000000000000000000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, scenario.FormatAmount(tc.amount, tc.decimals), "FormatAmount")
		})
	}
}

func runExample(t *testing.T) *scenario.Report {
	t.Helper()
	report, err := scenario.Run(log.NewNopLogger(), scenario.Example())
	require.NoError(t, err, "Run")
	return report
}

func TestReportWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runExample(t).WriteText(&buf), "WriteText")
	out := buf.String()

	require.True(t, strings.HasPrefix(out, `scenario "half-year short" (usdc, 6 decimals)`), "header:\n%s", out)
	require.Contains(t, out, "taker settled 14.178288", "settle event")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var makerRow, takerRow string
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 6 && fields[0] == "maker" {
			makerRow = line
		}
		if len(fields) == 6 && fields[0] == "taker" {
			takerRow = line
		}
	}
	require.Equal(t, []string{"maker", "1", "1000.000000", "-48.356576", "-14.178288", "-14.178288"}, strings.Fields(makerRow), "maker row")
	require.Equal(t, []string{"taker", "2", "-1000.000000", "48.356576", "14.178288", "14.178288"}, strings.Fields(takerRow), "taker row")
	require.Contains(t, lines[len(lines)-1], "settlement sum 0.000000", "footer")
}

func TestReportWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runExample(t).WriteJSON(&buf), "WriteJSON")

	var out struct {
		Name          string `json:"name"`
		QuoteDecimals uint32 `json:"quote_decimals"`
		Events        []scenario.Event
		Accounts      []struct {
			Name     string `json:"name"`
			Settled  bool   `json:"settled"`
			Cashflow string `json:"cashflow"`
		} `json:"accounts"`
		SettlementSum string `json:"settlement_sum"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out), "json.Unmarshal:\n%s", buf.String())

	require.Equal(t, "half-year short", out.Name, "name")
	require.Equal(t, uint32(6), out.QuoteDecimals, "quote decimals")
	require.Len(t, out.Events, 6, "events")
	require.Len(t, out.Accounts, 2, "accounts")
	require.Equal(t, "maker", out.Accounts[0].Name, "accounts are ordered by name")
	require.Equal(t, "-38356576", out.Accounts[0].Cashflow, "maker cashflow")
	require.Equal(t, "taker", out.Accounts[1].Name, "second account")
	require.Equal(t, "38356576", out.Accounts[1].Cashflow, "taker cashflow")
	require.True(t, out.Accounts[1].Settled, "taker settled")
	require.Equal(t, "0", out.SettlementSum, "settlement sum")
}
