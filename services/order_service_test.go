package services

import (
	"testing"

	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from tables.OrderStatus
		to   tables.OrderStatus
	}{
		{tables.OrderStatusPending, tables.OrderStatusProcessing},
		{tables.OrderStatusPending, tables.OrderStatusCancelled},
		{tables.OrderStatusProcessing, tables.OrderStatusShipped},
		{tables.OrderStatusProcessing, tables.OrderStatusCancelled},
		{tables.OrderStatusShipped, tables.OrderStatusDelivered},
	}
	for _, tt := range allowed {
		if !isValidStatusTransition(tt.from, tt.to) {
			t.Fatalf("transition %s -> %s should be allowed", tt.from, tt.to)
		}
	}

	denied := []struct {
		from tables.OrderStatus
		to   tables.OrderStatus
	}{
		{tables.OrderStatusPending, tables.OrderStatusShipped},
		{tables.OrderStatusPending, tables.OrderStatusDelivered},
		{tables.OrderStatusProcessing, tables.OrderStatusPending},
		{tables.OrderStatusProcessing, tables.OrderStatusDelivered},
		{tables.OrderStatusShipped, tables.OrderStatusCancelled},
		{tables.OrderStatusShipped, tables.OrderStatusPending},
		{tables.OrderStatusDelivered, tables.OrderStatusCancelled},
		{tables.OrderStatusDelivered, tables.OrderStatusPending},
		{tables.OrderStatusCancelled, tables.OrderStatusPending},
		{tables.OrderStatusCancelled, tables.OrderStatusProcessing},
	}
	for _, tt := range denied {
		if isValidStatusTransition(tt.from, tt.to) {
			t.Fatalf("transition %s -> %s should be rejected", tt.from, tt.to)
		}
	}
}

func TestStatusTransitionToSelf(t *testing.T) {
	statuses := []tables.OrderStatus{
		tables.OrderStatusPending,
		tables.OrderStatusProcessing,
		tables.OrderStatusShipped,
		tables.OrderStatusDelivered,
		tables.OrderStatusCancelled,
	}
	for _, s := range statuses {
		if isValidStatusTransition(s, s) {
			t.Fatalf("transition %s -> %s should be rejected", s, s)
		}
	}
}
