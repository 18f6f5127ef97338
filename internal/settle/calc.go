// Package settle holds the pure arithmetic of the monthly settlement
// consolidation: commission math, payout threshold classification and
// deadline derivation. The batch orchestration is in the service layer.
package settle

import (
	"time"

	"github.com/shopspring/decimal"

	"iso-rate-api/internal/constant"
)

var hundred = decimal.NewFromInt(100)

// Commission returns totalAmount * percent / 100 rounded to cents.
func Commission(totalAmount, percent decimal.Decimal) decimal.Decimal {
	return totalAmount.Mul(percent).Div(hundred).Round(2)
}

// Classify picks the settlement status against the minimum payout
// threshold. Below the threshold the balance accumulates instead of
// going out for invoicing.
func Classify(commissionValue, minimumPayout decimal.Decimal) string {
	if commissionValue.Cmp(minimumPayout) < 0 {
		return constant.SettleStatusAccumulated
	}
	return constant.SettleStatusPendingInvoice
}

// Balance is one settlement row's foldable commission balance.
type Balance struct {
	ID    uint64
	Month int
	Year  int
	Value decimal.Decimal
}

// PriorBalances keeps balances from periods strictly before (month,
// year). A backfill of an older month must never fold balances that
// belong to later periods.
func PriorBalances(all []Balance, month, year int) []Balance {
	var out []Balance
	for _, b := range all {
		if b.Year < year || (b.Year == year && b.Month < month) {
			out = append(out, b)
		}
	}
	return out
}

// Fold adds prior accumulated balances into the period's own commission
// and classifies the total. Returns the folded total, its status, and
// the ids of the balances consumed; each consumed id must be flipped to
// carried_forward in the same transaction as the insert so every
// balance folds into a payout exactly once.
func Fold(periodValue decimal.Decimal, prior []Balance, minimumPayout decimal.Decimal) (decimal.Decimal, string, []uint64) {
	total := periodValue
	ids := make([]uint64, 0, len(prior))
	for _, b := range prior {
		total = total.Add(b.Value)
		ids = append(ids, b.ID)
	}
	return total, Classify(total, minimumPayout), ids
}

// Deadlines derives the invoice and payment deadlines for a settled
// period: fixed days of the month following it.
func Deadlines(month, year, invoiceDay, paymentDay int) (invoice, payment time.Time) {
	next := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	invoice = time.Date(next.Year(), next.Month(), invoiceDay, 23, 59, 59, 0, time.Local)
	payment = time.Date(next.Year(), next.Month(), paymentDay, 23, 59, 59, 0, time.Local)
	return
}

// PeriodRange returns the [from, to) bounds of a calendar month.
func PeriodRange(month, year int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	to = from.AddDate(0, 1, 0)
	return
}

// PrevPeriod returns the calendar month before t, the default target of
// the scheduled runs.
func PrevPeriod(t time.Time) (month, year int) {
	prev := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0)
	return int(prev.Month()), prev.Year()
}

// ValidPeriod bounds the explicit (month, year) parameters accepted on
// the batch surface for backfills.
func ValidPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 2100
}
