package services

import (
	"testing"

	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
)

func TestSubscribeActionFor(t *testing.T) {
	tests := []struct {
		name     string
		existing *tables.NewsletterSubscriber
		want     subscribeAction
	}{
		{"new address", nil, subscribeNew},
		{"previously unsubscribed", &tables.NewsletterSubscriber{Email: "a@example.com", IsActive: false}, subscribeReactivate},
		{"already on the list", &tables.NewsletterSubscriber{Email: "a@example.com", IsActive: true}, subscribeAlreadyActive},
	}

	for _, tt := range tests {
		if got := subscribeActionFor(tt.existing); got != tt.want {
			t.Errorf("%s: action %v, want %v", tt.name, got, tt.want)
		}
	}
}
