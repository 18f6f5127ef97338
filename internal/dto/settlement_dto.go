package dto

// PeriodReq selects the calendar month a batch entry point operates on.
// Explicit parameters so operators can replay and backfill.
type PeriodReq struct {
	Month int `json:"month" binding:"required"`
	Year  int `json:"year" binding:"required"`
}

// ConsolidateSummary is returned by consolidate(month, year).
type ConsolidateSummary struct {
	Created     int      `json:"created"`
	Accumulated int      `json:"accumulated"`
	Skipped     int      `json:"skipped"`
	Errors      []string `json:"errors,omitempty"`
}

// AccumulationSummary is returned by processAccumulation(month, year).
type AccumulationSummary struct {
	Flipped int      `json:"flipped"`
	Errors  []string `json:"errors,omitempty"`
}
