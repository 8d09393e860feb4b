package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"

	"github.com/provlabs/datedirs/types"
)

// Event is a line of the run log.
type Event struct {
	At      int64  `json:"at"`
	Message string `json:"message"`
}

// AccountResult is the final state of a scenario account.
type AccountResult struct {
	Name            string   `json:"name"`
	AccountID       uint64   `json:"account_id"`
	FilledBase      math.Int `json:"filled_base"`
	FilledQuote     math.Int `json:"filled_quote"`
	AccruedInterest math.Int `json:"accrued_interest"`
	Settled         bool     `json:"settled"`
	Cashflow        math.Int `json:"cashflow"`
}

// Report is the outcome of a scenario run. Accounts are kept ordered by name.
type Report struct {
	Name          string
	QuoteDenom    string
	QuoteDecimals uint32
	Events        []Event
	Accounts      btree.Map[string, *AccountResult]
	OpenInterest  math.Int
}

func NewReport(sc Scenario) *Report {
	return &Report{
		Name:          sc.Name,
		QuoteDenom:    sc.Market.QuoteDenom,
		QuoteDecimals: sc.Market.QuoteDecimals,
		OpenInterest:  math.ZeroInt(),
	}
}

func (r *Report) addEvent(at int64, message string) {
	r.Events = append(r.Events, Event{At: at, Message: message})
}

func (r *Report) addAccount(name string, id uint64) {
	r.Accounts.Set(name, &AccountResult{
		Name:            name,
		AccountID:       id,
		FilledBase:      math.ZeroInt(),
		FilledQuote:     math.ZeroInt(),
		AccruedInterest: math.ZeroInt(),
		Cashflow:        math.ZeroInt(),
	})
}

func (r *Report) setBalances(name string, filled types.FilledBalances, cashflow math.Int, settled bool) {
	result, ok := r.Accounts.Get(name)
	if !ok {
		return
	}
	result.FilledBase = filled.Base
	result.FilledQuote = filled.Quote
	result.AccruedInterest = filled.AccruedInterest
	result.Cashflow = cashflow
	result.Settled = settled
}

// Account returns the result of the named account.
func (r *Report) Account(name string) (AccountResult, bool) {
	result, ok := r.Accounts.Get(name)
	if !ok {
		return AccountResult{}, false
	}
	return *result, true
}

// SettlementSum is the sum of every recorded cashflow.
func (r *Report) SettlementSum() math.Int {
	sum := math.ZeroInt()
	r.Accounts.Scan(func(_ string, result *AccountResult) bool {
		sum = sum.Add(result.Cashflow)
		return true
	})
	return sum
}

// Format renders an amount in display units of the quote token.
func (r *Report) Format(amount math.Int) string {
	return FormatAmount(amount, r.QuoteDecimals)
}

// FormatAmount scales amount down by decimals, keeping every digit.
func FormatAmount(amount math.Int, decimals uint32) string {
	if amount.IsNil() {
		return "0"
	}
	return decimal.NewFromBigInt(amount.BigInt(), -int32(decimals)).StringFixed(int32(decimals))
}

// WriteText prints the run log and a table of account results.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "scenario %q (%s, %d decimals)\n", r.Name, r.QuoteDenom, r.QuoteDecimals); err != nil {
		return err
	}
	for _, e := range r.Events {
		if _, err := fmt.Fprintf(w, "  t+%-10d %s\n", e.At, e.Message); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "account\tid\tbase\tquote\taccrued\tcashflow\t")
	r.Accounts.Scan(func(name string, a *AccountResult) bool {
		cashflow := "-"
		if a.Settled {
			cashflow = r.Format(a.Cashflow)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t\n",
			name, a.AccountID, r.Format(a.FilledBase), r.Format(a.FilledQuote), r.Format(a.AccruedInterest), cashflow)
		return true
	})
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "open interest %s, settlement sum %s\n", r.Format(r.OpenInterest), r.Format(r.SettlementSum()))
	return err
}

type jsonReport struct {
	Name          string          `json:"name"`
	QuoteDenom    string          `json:"quote_denom"`
	QuoteDecimals uint32          `json:"quote_decimals"`
	Events        []Event         `json:"events"`
	Accounts      []AccountResult `json:"accounts"`
	OpenInterest  math.Int        `json:"open_interest"`
	SettlementSum math.Int        `json:"settlement_sum"`
}

// WriteJSON prints the report as indented JSON with raw integer amounts.
func (r *Report) WriteJSON(w io.Writer) error {
	out := jsonReport{
		Name:          r.Name,
		QuoteDenom:    r.QuoteDenom,
		QuoteDecimals: r.QuoteDecimals,
		Events:        r.Events,
		OpenInterest:  r.OpenInterest,
		SettlementSum: r.SettlementSum(),
	}
	r.Accounts.Scan(func(_ string, a *AccountResult) bool {
		out.Accounts = append(out.Accounts, *a)
		return true
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
