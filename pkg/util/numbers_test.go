package util

import "testing"

func TestParseAmountGrouped(t *testing.T) {
	v, ok := ParseAmount("21,055.01")
	if !ok {
		t.Fatalf("expected ok")
	}
	if v != 21055.01 {
		t.Fatalf("unexpected value %v", v)
	}
}

func TestParseAmountSigns(t *testing.T) {
	if v, ok := ParseAmount("$1,188.36"); !ok || v != 1188.36 {
		t.Fatalf("dollar prefix: %v %v", v, ok)
	}
	if v, ok := ParseAmount("+30.69"); !ok || v != 30.69 {
		t.Fatalf("plus prefix: %v %v", v, ok)
	}
	if v, ok := ParseAmount("-903.00"); !ok || v != -903 {
		t.Fatalf("negative: %v %v", v, ok)
	}
}

func TestParseAmountInvalid(t *testing.T) {
	if _, ok := ParseAmount(""); ok {
		t.Fatalf("empty should fail")
	}
	if _, ok := ParseAmount("abc"); ok {
		t.Fatalf("non-numeric should fail")
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(6462.52); got != "6,462.52" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatMoney(1000); got != "1,000.00" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatMoney(100000); got != "100,000.00" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(44.2866); got != "44.29" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatPercent(50); got != "50.00" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestClampMarketHours(t *testing.T) {
	cases := []struct {
		h, m, wantH, wantM int
	}{
		{9, 15, 9, 30},
		{9, 30, 9, 30},
		{12, 45, 12, 45},
		{16, 0, 16, 0},
		{16, 30, 16, 0},
		{7, 5, 9, 30},
		{22, 10, 16, 0},
	}
	for _, c := range cases {
		h, m := ClampMarketHours(c.h, c.m)
		if h != c.wantH || m != c.wantM {
			t.Fatalf("%d:%02d -> %d:%02d, want %d:%02d", c.h, c.m, h, m, c.wantH, c.wantM)
		}
	}
}
