package bmi

import "testing"

func TestCategoryLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		label    string
		span     string
	}{
		{Underweight, "Underweight", "< 18.5"},
		{Normal, "Normal", "18.5 - 24.9"},
		{Overweight, "Overweight", "25.0 - 29.9"},
		{Obese, "Obese", "≥ 30.0"},
	}

	for _, tt := range tests {
		if got := tt.category.Label(); got != tt.label {
			t.Fatalf("Label() = %q, want %q", got, tt.label)
		}
		if got := tt.category.Range(); got != tt.span {
			t.Fatalf("Range() = %q, want %q", got, tt.span)
		}
		if got := tt.category.String(); got != tt.label {
			t.Fatalf("String() = %q, want %q", got, tt.label)
		}
	}
}

func TestCategoryUnknown(t *testing.T) {
	t.Parallel()

	bogus := Category(42)
	if got := bogus.Label(); got != "Unknown" {
		t.Fatalf("Label() = %q, want Unknown", got)
	}
	if got := bogus.Range(); got != "" {
		t.Fatalf("Range() = %q, want empty", got)
	}
}

func TestUnitSystemString(t *testing.T) {
	t.Parallel()

	if got := Metric.String(); got != "metric" {
		t.Fatalf("Metric.String() = %q", got)
	}
	if got := Imperial.String(); got != "imperial" {
		t.Fatalf("Imperial.String() = %q", got)
	}
}
