package lib

import (
	"testing"

	"github.com/Chi-G/JPATHNEC-sub000/structs"
)

var testStore = &structs.StoreConfig{
	TaxRatePercent:        10,
	FreeShippingThreshold: 5000,
	ShippingFlatFee:       599,
}

func TestComputeTaxRoundsHalfUp(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     int64
	}{
		{5998, 600},
		{5994, 599},
		{5995, 600},
		{100, 10},
		{4, 0},
		{5, 1},
		{0, 0},
		{-100, 0},
	}
	for _, tt := range tests {
		if got := ComputeTax(tt.subtotal, 10); got != tt.want {
			t.Fatalf("ComputeTax(%d, 10) = %d, want %d", tt.subtotal, got, tt.want)
		}
	}
}

func TestComputeTaxZeroRate(t *testing.T) {
	if got := ComputeTax(5998, 0); got != 0 {
		t.Fatalf("ComputeTax with zero rate = %d, want 0", got)
	}
}

func TestComputeShippingThreshold(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     int64
	}{
		{5998, 0},
		{5001, 0},
		{5000, 599},
		{4999, 599},
		{1, 599},
		{0, 0},
	}
	for _, tt := range tests {
		if got := ComputeShipping(tt.subtotal, testStore); got != tt.want {
			t.Fatalf("ComputeShipping(%d) = %d, want %d", tt.subtotal, got, tt.want)
		}
	}
}

func TestComputeSummary(t *testing.T) {
	summary := ComputeSummary(3, 5998, testStore)

	if summary.ItemCount != 3 {
		t.Fatalf("ItemCount = %d, want 3", summary.ItemCount)
	}
	if summary.Subtotal != 5998 {
		t.Fatalf("Subtotal = %d, want 5998", summary.Subtotal)
	}
	if summary.Tax != 600 {
		t.Fatalf("Tax = %d, want 600", summary.Tax)
	}
	if summary.Shipping != 0 {
		t.Fatalf("Shipping = %d, want 0", summary.Shipping)
	}
	if summary.Total != 6598 {
		t.Fatalf("Total = %d, want 6598", summary.Total)
	}
}

func TestComputeSummaryBelowFreeShipping(t *testing.T) {
	summary := ComputeSummary(1, 1000, testStore)

	if summary.Tax != 100 {
		t.Fatalf("Tax = %d, want 100", summary.Tax)
	}
	if summary.Shipping != 599 {
		t.Fatalf("Shipping = %d, want 599", summary.Shipping)
	}
	if summary.Total != 1699 {
		t.Fatalf("Total = %d, want 1699", summary.Total)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{5998, "59.98"},
		{100, "1.00"},
		{5, "0.05"},
		{0, "0.00"},
		{-250, "-2.50"},
		{659800, "6598.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.cents); got != tt.want {
			t.Fatalf("FormatAmount(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
