package config

import "testing"

func TestSanitizeDefaults(t *testing.T) {
	var c Root
	sanitize(&c)
	if c.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", c.Server.Port)
	}
	if c.Settlement.MinimumPayout != "100.00" {
		t.Errorf("minimumPayout = %q, want 100.00", c.Settlement.MinimumPayout)
	}
	if c.Settlement.InvoiceDeadlineDay != 10 || c.Settlement.PaymentDeadlineDay != 20 {
		t.Errorf("deadline days = %d/%d, want 10/20",
			c.Settlement.InvoiceDeadlineDay, c.Settlement.PaymentDeadlineDay)
	}
}

func TestSanitizeRejectsMalformedMinimumPayout(t *testing.T) {
	c := Root{Settlement: SettlementCfg{MinimumPayout: "hundred"}}
	sanitize(&c)
	if c.Settlement.MinimumPayout != "100.00" {
		t.Errorf("malformed minimumPayout kept as %q, want fallback 100.00", c.Settlement.MinimumPayout)
	}
}

func TestSanitizeKeepsValidSettlementConfig(t *testing.T) {
	c := Root{Settlement: SettlementCfg{MinimumPayout: "250.00", InvoiceDeadlineDay: 5, PaymentDeadlineDay: 15}}
	sanitize(&c)
	if c.Settlement.MinimumPayout != "250.00" {
		t.Errorf("minimumPayout = %q, want 250.00 untouched", c.Settlement.MinimumPayout)
	}
	if c.Settlement.InvoiceDeadlineDay != 5 || c.Settlement.PaymentDeadlineDay != 15 {
		t.Errorf("deadline days = %d/%d, want 5/15 untouched",
			c.Settlement.InvoiceDeadlineDay, c.Settlement.PaymentDeadlineDay)
	}
}
