package lib

import (
	"strings"
	"testing"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		num := GenerateOrderNumber()
		if !strings.HasPrefix(num, "JP-") {
			t.Fatalf("order number %q missing JP- prefix", num)
		}
		if len(num) != len("JP-")+8 {
			t.Fatalf("order number %q has wrong length %d", num, len(num))
		}
		for _, c := range num[3:] {
			if !strings.ContainsRune(orderNumberChars, c) {
				t.Fatalf("order number %q contains unexpected character %q", num, c)
			}
		}
	}
}

func TestGeneratePaymentReferenceFormat(t *testing.T) {
	ref := GeneratePaymentReference()
	if !strings.HasPrefix(ref, "JPREF-") {
		t.Fatalf("payment reference %q missing JPREF- prefix", ref)
	}
	if len(ref) != len("JPREF-")+12 {
		t.Fatalf("payment reference %q has wrong length %d", ref, len(ref))
	}
}

func TestGenerateOrderNumberUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		num := GenerateOrderNumber()
		if seen[num] {
			t.Fatalf("duplicate order number generated: %q", num)
		}
		seen[num] = true
	}
}
