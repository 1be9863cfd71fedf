package lib

import (
	"crypto/rand"
	"fmt"
)

const orderNumberChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderNumber generates an order number in the format: JP-XXXXXXXX
// where XXXXXXXX is a random 8-character alphanumeric string. Uniqueness is
// enforced by the orders.order_number constraint, a collision fails the
// insert and surfaces as a checkout error.
func GenerateOrderNumber() string {
	return "JP-" + randomAlphanumeric(8)
}

// GeneratePaymentReference generates a gateway payment reference in the
// format: JPREF-XXXXXXXXXXXX
func GeneratePaymentReference() string {
	return "JPREF-" + randomAlphanumeric(12)
}

func randomAlphanumeric(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		panic(fmt.Sprintf("rand.Read failed: %v", err))
	}
	for i := range b {
		b[i] = orderNumberChars[int(b[i])%len(orderNumberChars)]
	}
	return string(b)
}
