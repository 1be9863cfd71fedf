package tables

import "testing"

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   int
	}{
		{OrderStatusPending, 25},
		{OrderStatusProcessing, 50},
		{OrderStatusShipped, 75},
		{OrderStatusDelivered, 100},
		{OrderStatusCancelled, 0},
	}
	for _, tt := range tests {
		o := &Order{Status: tt.status}
		if got := o.ProgressPercentage(); got != tt.want {
			t.Fatalf("ProgressPercentage for %q = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestIsCancellable(t *testing.T) {
	tests := []struct {
		status        OrderStatus
		paymentStatus PaymentStatus
		want          bool
	}{
		{OrderStatusPending, PaymentStatusPending, true},
		{OrderStatusProcessing, PaymentStatusPending, true},
		{OrderStatusProcessing, PaymentStatusFailed, true},
		{OrderStatusProcessing, PaymentStatusPaid, false},
		{OrderStatusShipped, PaymentStatusPending, false},
		{OrderStatusDelivered, PaymentStatusPaid, false},
		{OrderStatusCancelled, PaymentStatusPending, false},
	}
	for _, tt := range tests {
		o := &Order{Status: tt.status, PaymentStatus: tt.paymentStatus}
		if got := o.IsCancellable(); got != tt.want {
			t.Fatalf("IsCancellable for status=%q payment=%q = %v, want %v", tt.status, tt.paymentStatus, got, tt.want)
		}
	}
}
