package services

import (
	"testing"

	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
)

func TestSettlementFor(t *testing.T) {
	tests := []struct {
		status        string
		paymentStatus tables.PaymentStatus
		terminal      bool
		clearCart     bool
	}{
		{"success", tables.PaymentStatusPaid, true, true},
		{"failed", tables.PaymentStatusFailed, true, false},
		{"abandoned", tables.PaymentStatusFailed, true, false},
		{"reversed", tables.PaymentStatusFailed, true, false},
		{"pending", tables.PaymentStatusPending, false, false},
		{"ongoing", tables.PaymentStatusPending, false, false},
		{"processing", tables.PaymentStatusPending, false, false},
		{"queued", tables.PaymentStatusPending, false, false},
	}

	for _, tt := range tests {
		st := settlementFor(&VerifiedTransaction{Status: tt.status})
		if st.PaymentStatus != tt.paymentStatus {
			t.Errorf("status %q: payment status %q, want %q", tt.status, st.PaymentStatus, tt.paymentStatus)
		}
		if st.Terminal != tt.terminal {
			t.Errorf("status %q: terminal %v, want %v", tt.status, st.Terminal, tt.terminal)
		}
		if st.ClearCart != tt.clearCart {
			t.Errorf("status %q: clear cart %v, want %v", tt.status, st.ClearCart, tt.clearCart)
		}
	}
}

// The cart must survive an incomplete charge, it is cleared exactly once when
// the payment settles.
func TestSettlementForKeepsCartUntilPaid(t *testing.T) {
	for _, status := range []string{"pending", "failed", "abandoned", "reversed", "ongoing"} {
		if settlementFor(&VerifiedTransaction{Status: status}).ClearCart {
			t.Errorf("status %q must not clear the cart", status)
		}
	}
	if !settlementFor(&VerifiedTransaction{Status: "success"}).ClearCart {
		t.Error("successful settlement must clear the cart")
	}
}
