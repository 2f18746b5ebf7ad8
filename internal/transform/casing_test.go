package transform

import "testing"

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cost", "Cost"},
		{"REBATE", "Rebate"},
		{"", ""},
		{"a", "A"},
		{"two words", "Two words"},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("discount details"); got != "Discount Details" {
		t.Errorf("Title = %q", got)
	}
}

func TestCasingByName(t *testing.T) {
	if got := CasingByName("capitalize")("cost"); got != "Cost" {
		t.Errorf("capitalize casing = %q", got)
	}
	if got := CasingByName("UPPER")("cost"); got != "COST" {
		t.Errorf("upper casing = %q", got)
	}
	if got := CasingByName("lower")("COST"); got != "cost" {
		t.Errorf("lower casing = %q", got)
	}
	if CasingByName("unknown") != nil {
		t.Error("expected nil casing for unknown name")
	}
	if CasingByName("") != nil {
		t.Error("expected nil casing for empty name")
	}
}
