package settle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"iso-rate-api/internal/constant"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCommission(t *testing.T) {
	// 50,000.00 at 0.50% => 250.00
	got := Commission(d("50000.00"), d("0.50"))
	if !got.Equal(d("250.00")) {
		t.Errorf("commission = %s, want 250.00", got)
	}
}

func TestCommissionRounding(t *testing.T) {
	got := Commission(d("333.33"), d("0.30"))
	if !got.Equal(d("1.00")) {
		t.Errorf("commission = %s, want 1.00", got)
	}
}

func TestClassify(t *testing.T) {
	min := d("100.00")
	if s := Classify(d("250.00"), min); s != constant.SettleStatusPendingInvoice {
		t.Errorf("250.00 => %s, want pending_invoice", s)
	}
	if s := Classify(d("99.99"), min); s != constant.SettleStatusAccumulated {
		t.Errorf("99.99 => %s, want accumulated", s)
	}
	// exactly at the threshold goes out for invoicing
	if s := Classify(d("100.00"), min); s != constant.SettleStatusPendingInvoice {
		t.Errorf("100.00 => %s, want pending_invoice", s)
	}
}

func TestPriorBalancesExcludesLaterPeriods(t *testing.T) {
	all := []Balance{
		{ID: 1, Month: 12, Year: 2024, Value: d("10.00")},
		{ID: 2, Month: 9, Year: 2025, Value: d("20.00")},
		{ID: 3, Month: 11, Year: 2025, Value: d("30.00")}, // later than target
		{ID: 4, Month: 10, Year: 2025, Value: d("40.00")}, // target period itself
	}
	// backfilling October 2025 must only see December 2024 and September 2025
	got := PriorBalances(all, 10, 2025)
	if len(got) != 2 {
		t.Fatalf("prior balances = %d rows, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("prior ids = [%d %d], want [1 2]", got[0].ID, got[1].ID)
	}
}

func TestFold(t *testing.T) {
	total, status, ids := Fold(d("250.00"), []Balance{
		{ID: 7, Month: 4, Year: 2025, Value: d("60.00")},
		{ID: 8, Month: 5, Year: 2025, Value: d("40.00")},
	}, d("100.00"))
	if !total.Equal(d("350.00")) {
		t.Errorf("folded total = %s, want 350.00", total)
	}
	if status != constant.SettleStatusPendingInvoice {
		t.Errorf("status = %s, want pending_invoice", status)
	}
	if len(ids) != 2 || ids[0] != 7 || ids[1] != 8 {
		t.Errorf("consumed ids = %v, want [7 8]", ids)
	}
}

func TestFoldConservation(t *testing.T) {
	min := d("100.00")

	// month 1: 60.00 stays under the threshold and accumulates
	m1, s1, _ := Fold(d("60.00"), nil, min)
	if s1 != constant.SettleStatusAccumulated {
		t.Fatalf("month 1 status = %s, want accumulated", s1)
	}

	// month 2: 250.00 plus the deferred 60.00 goes out as one payout
	m2, s2, ids := Fold(d("250.00"), []Balance{{ID: 1, Month: 1, Year: 2025, Value: m1}}, min)
	if s2 != constant.SettleStatusPendingInvoice {
		t.Fatalf("month 2 status = %s, want pending_invoice", s2)
	}
	if len(ids) != 1 {
		t.Fatalf("month 2 must consume the deferred balance exactly once, got %d ids", len(ids))
	}

	// the active balance equals every commission ever earned: nothing
	// lost, nothing double-counted
	if !m2.Equal(d("60.00").Add(d("250.00"))) {
		t.Errorf("active balance = %s, want 310.00", m2)
	}
}

func TestDeadlines(t *testing.T) {
	inv, pay := Deadlines(12, 2025, 10, 20)
	if inv.Year() != 2026 || inv.Month() != time.January || inv.Day() != 10 {
		t.Errorf("invoice deadline = %v, want 2026-01-10", inv)
	}
	if pay.Year() != 2026 || pay.Month() != time.January || pay.Day() != 20 {
		t.Errorf("payment deadline = %v, want 2026-01-20", pay)
	}
	if !inv.Before(pay) {
		t.Error("invoice deadline must precede payment deadline")
	}
}

func TestPeriodRange(t *testing.T) {
	from, to := PeriodRange(2, 2024)
	if from.Month() != time.February || from.Day() != 1 {
		t.Errorf("from = %v", from)
	}
	if to.Month() != time.March || to.Day() != 1 {
		t.Errorf("to = %v", to)
	}
}

func TestPrevPeriod(t *testing.T) {
	m, y := PrevPeriod(time.Date(2026, 1, 3, 10, 0, 0, 0, time.Local))
	if m != 12 || y != 2025 {
		t.Errorf("prev of 2026-01 = %d/%d, want 12/2025", m, y)
	}
}

func TestValidPeriod(t *testing.T) {
	if !ValidPeriod(6, 2025) {
		t.Error("6/2025 should be valid")
	}
	if ValidPeriod(0, 2025) || ValidPeriod(13, 2025) || ValidPeriod(6, 1999) {
		t.Error("out-of-range periods accepted")
	}
}
