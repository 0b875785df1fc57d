package schema

import (
	"testing"

	"mockshot/internal/domain/models"
)

func draftFor(template string, values map[string]string) models.TradingDraft {
	return models.TradingDraft{Template: template, Values: values}
}

func TestRelevantFieldsUnknownTemplate(t *testing.T) {
	r := New()
	got := r.RelevantFields("no-such-template")
	if len(got) != 0 {
		t.Fatalf("unknown template should yield empty list, got %v", got)
	}
}

func TestRelevantFieldsOrder(t *testing.T) {
	r := New()
	got := r.RelevantFields("gain-loss")
	want := []string{"date", "proceeds", "costBasis", "profit", "percentage"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDeriveGainLoss(t *testing.T) {
	r := New()
	d := draftFor("gain-loss", map[string]string{"costBasis": "14,592.49"})
	d = r.Derive(d, "proceeds", "21,055.01")

	if got := d.Value("profit"); got != "6,462.52" {
		t.Fatalf("profit = %q, want 6,462.52", got)
	}
	if got := d.Value("percentage"); got != "44.29" {
		t.Fatalf("percentage = %q, want 44.29", got)
	}
}

func TestDeriveMarketValueStock(t *testing.T) {
	r := New()
	d := draftFor("stock-position", map[string]string{"quantity": "100"})
	d = r.Derive(d, "currentPrice", "10.00")

	if got := d.Value("marketValue"); got != "1,000.00" {
		t.Fatalf("marketValue = %q, want 1,000.00", got)
	}
}

func TestDeriveMarketValueOptionsMultiplier(t *testing.T) {
	r := New()
	d := draftFor("options-position", map[string]string{"quantity": "100"})
	d = r.Derive(d, "currentPrice", "10.00")

	if got := d.Value("marketValue"); got != "100,000.00" {
		t.Fatalf("marketValue = %q, want 100,000.00", got)
	}
}

func TestDeriveSkipsOnUnparseableInput(t *testing.T) {
	r := New()
	d := draftFor("gain-loss", map[string]string{
		"costBasis": "not a number",
		"profit":    "6,462.52",
	})
	d = r.Derive(d, "proceeds", "21,055.01")

	if got := d.Value("profit"); got != "6,462.52" {
		t.Fatalf("prior derived value must survive: %q", got)
	}
	if got := d.Value("proceeds"); got != "21,055.01" {
		t.Fatalf("changed field still applied: %q", got)
	}
}

func TestDeriveSkipsOnZeroInput(t *testing.T) {
	r := New()
	d := draftFor("stock-position", map[string]string{"quantity": "0", "marketValue": "1,138,176.52"})
	d = r.Derive(d, "currentPrice", "6.47")

	if got := d.Value("marketValue"); got != "1,138,176.52" {
		t.Fatalf("zero input must not derive: %q", got)
	}
}

func TestDeriveIgnoresNonRuleField(t *testing.T) {
	r := New()
	d := draftFor("gain-loss", map[string]string{"proceeds": "21,055.01", "costBasis": "14,592.49"})
	d = r.Derive(d, "date", "11/06/2025")

	if _, ok := d.Values["profit"]; ok {
		t.Fatalf("editing a non-input field must not trigger derivation")
	}
}

func TestDeriveRuleScopedToTemplate(t *testing.T) {
	r := New()
	// quantity/currentPrice only derive for position templates
	d := draftFor("daily-pl", map[string]string{"quantity": "100"})
	d = r.Derive(d, "currentPrice", "10.00")

	if _, ok := d.Values["marketValue"]; ok {
		t.Fatalf("daily-pl has no derivation rule")
	}
}

func TestDerivePreservesOtherValues(t *testing.T) {
	r := New()
	prior := draftFor("gain-loss", map[string]string{"costBasis": "14,592.49", "accountType": "ROTH IRA"})
	next := r.Derive(prior, "proceeds", "21,055.01")

	if got := next.Value("accountType"); got != "ROTH IRA" {
		t.Fatalf("unrelated values must be retained: %q", got)
	}
	if _, ok := prior.Values["proceeds"]; ok {
		t.Fatalf("prior draft must not be mutated")
	}
}
