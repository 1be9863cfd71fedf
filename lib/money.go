package lib

import (
	"fmt"

	"github.com/Chi-G/JPATHNEC-sub000/structs"
)

// ComputeTax computes the tax on a subtotal in cents, rounding half up.
func ComputeTax(subtotal int64, ratePercent int64) int64 {
	if subtotal <= 0 || ratePercent <= 0 {
		return 0
	}
	return (subtotal*ratePercent + 50) / 100
}

// ComputeShipping returns the shipping fee for a subtotal in cents.
// Orders above the free-shipping threshold ship free.
func ComputeShipping(subtotal int64, store *structs.StoreConfig) int64 {
	if subtotal <= 0 {
		return 0
	}
	if subtotal > store.FreeShippingThreshold {
		return 0
	}
	return store.ShippingFlatFee
}

// ComputeSummary builds a cart summary from an item count and subtotal in cents.
func ComputeSummary(itemCount int, subtotal int64, store *structs.StoreConfig) structs.CartSummary {
	tax := ComputeTax(subtotal, store.TaxRatePercent)
	shipping := ComputeShipping(subtotal, store)
	return structs.CartSummary{
		ItemCount: itemCount,
		Subtotal:  subtotal,
		Tax:       tax,
		Shipping:  shipping,
		Total:     subtotal + tax + shipping,
	}
}

// FormatAmount renders an amount in cents as a decimal string, e.g. 5998 -> "59.98".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
