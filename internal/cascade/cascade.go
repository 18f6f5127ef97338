// Package cascade computes the additive fee-margin cascade:
// supplier cost -> platform margins -> partner margin. Pure, no I/O.
package cascade

import "github.com/shopspring/decimal"

// Cell is one (brand, modality, channel) cost or margin entry.
type Cell struct {
	Percent decimal.Decimal
	Fixed   decimal.Decimal
}

// PlatformMargins are the three platform percentages layered on top of
// the supplier cost for one partner.
type PlatformMargins struct {
	Outbank   decimal.Decimal
	Executive decimal.Decimal
	Core      decimal.Decimal
}

// Result is the triple served on the query surface.
type Result struct {
	BaseCost      Cell
	PartnerMargin Cell
	FinalRate     Cell
}

// Compute applies the two-step addition. PIX and antecipação cells are
// looked up under the pseudo-brand "ALL" by the caller; the arithmetic
// is identical.
func Compute(supplier Cell, pm PlatformMargins, partner Cell) Result {
	base := Cell{
		Percent: supplier.Percent.Add(pm.Outbank).Add(pm.Executive).Add(pm.Core),
		Fixed:   supplier.Fixed,
	}
	final := Cell{
		Percent: base.Percent.Add(partner.Percent),
		Fixed:   base.Fixed.Add(partner.Fixed),
	}
	return Result{BaseCost: base, PartnerMargin: partner, FinalRate: final}
}

var (
	zero    = decimal.Zero
	hundred = decimal.NewFromInt(100)
)

// PercentInRange reports whether p lies in [0, 100]. Write paths reject
// margins and cascade results outside this range; the calculator itself
// never clamps.
func PercentInRange(p decimal.Decimal) bool {
	return p.Cmp(zero) >= 0 && p.Cmp(hundred) <= 0
}

// Apply an active override: the overridden percent replaces the
// computed final percent, fixed fee is untouched.
func (r Result) WithOverride(percent decimal.Decimal) Result {
	r.FinalRate.Percent = percent
	return r
}
