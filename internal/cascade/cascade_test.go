package cascade

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCompute(t *testing.T) {
	// VISA credit pos: 1.20 + 0.10 + 0.05 + 0.05 = 1.40 base, +0.30 partner = 1.70 final
	got := Compute(
		Cell{Percent: d("1.20"), Fixed: d("0.10")},
		PlatformMargins{Outbank: d("0.10"), Executive: d("0.05"), Core: d("0.05")},
		Cell{Percent: d("0.30"), Fixed: d("0.05")},
	)
	if !got.BaseCost.Percent.Equal(d("1.40")) {
		t.Errorf("base percent = %s, want 1.40", got.BaseCost.Percent)
	}
	if !got.FinalRate.Percent.Equal(d("1.70")) {
		t.Errorf("final percent = %s, want 1.70", got.FinalRate.Percent)
	}
	if !got.BaseCost.Fixed.Equal(d("0.10")) {
		t.Errorf("base fixed = %s, want 0.10", got.BaseCost.Fixed)
	}
	if !got.FinalRate.Fixed.Equal(d("0.15")) {
		t.Errorf("final fixed = %s, want 0.15", got.FinalRate.Fixed)
	}
}

func TestComputeReflectsSingleInputChange(t *testing.T) {
	sup := Cell{Percent: d("1.20")}
	pm := PlatformMargins{Outbank: d("0.10"), Executive: d("0.05"), Core: d("0.05")}
	partner := Cell{Percent: d("0.30")}

	before := Compute(sup, pm, partner)
	pm.Executive = d("0.15")
	after := Compute(sup, pm, partner)

	diff := after.FinalRate.Percent.Sub(before.FinalRate.Percent)
	if !diff.Equal(d("0.10")) {
		t.Errorf("final rate moved by %s, want exactly 0.10", diff)
	}
}

func TestComputeZeroMargins(t *testing.T) {
	got := Compute(Cell{Percent: d("0.99")}, PlatformMargins{}, Cell{})
	if !got.FinalRate.Percent.Equal(d("0.99")) {
		t.Errorf("final = %s, want pass-through 0.99", got.FinalRate.Percent)
	}
}

func TestPercentInRange(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"100", true},
		{"1.70", true},
		{"-0.01", false},
		{"100.01", false},
	}
	for _, c := range cases {
		if got := PercentInRange(d(c.in)); got != c.want {
			t.Errorf("PercentInRange(%s) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWithOverride(t *testing.T) {
	r := Compute(Cell{Percent: d("1.20")}, PlatformMargins{Outbank: d("0.20")}, Cell{Percent: d("0.30")})
	o := r.WithOverride(d("1.55"))
	if !o.FinalRate.Percent.Equal(d("1.55")) {
		t.Errorf("override final = %s, want 1.55", o.FinalRate.Percent)
	}
	if !o.BaseCost.Percent.Equal(r.BaseCost.Percent) {
		t.Errorf("override must not touch base cost")
	}
}
