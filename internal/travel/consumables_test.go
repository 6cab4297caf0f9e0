package travel

import (
	"errors"
	"testing"
)

func TestPoolCost(t *testing.T) {
	tests := []struct {
		consumable Consumable
		want       int
	}{
		{ConsumableCampSupplies, 1},
		{ConsumableSpirits, 1},
		{ConsumableSpecializedEquipment, 2},
		{ConsumableUpdatedMaps, 2},
		{ConsumableMeticulousPlanning, 5},
	}
	for _, tt := range tests {
		got, err := PoolCost(tt.consumable)
		if err != nil {
			t.Fatalf("PoolCost(%s) error = %v", tt.consumable, err)
		}
		if got != tt.want {
			t.Fatalf("PoolCost(%s) = %d, want %d", tt.consumable, got, tt.want)
		}
	}

	if _, err := PoolCost("lanterns"); !errors.Is(err, ErrUnknownConsumable) {
		t.Fatalf("PoolCost(lanterns) error = %v, want %v", err, ErrUnknownConsumable)
	}
}

func TestPriceNormalize(t *testing.T) {
	tests := []struct {
		in   Price
		want Price
	}{
		{Price{BP: 11}, Price{BP: 11}},
		{Price{BP: 12}, Price{SS: 1}},
		{Price{BP: 30}, Price{SS: 2, BP: 6}},
		{Price{SS: 19}, Price{SS: 19}},
		{Price{SS: 20}, Price{GC: 1}},
		{Price{SS: 19, BP: 12}, Price{GC: 1}},
		{Price{GC: 1, SS: 25, BP: 13}, Price{GC: 2, SS: 6, BP: 1}},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Fatalf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestPriceAdd(t *testing.T) {
	got := Price{SS: 15}.Add(Price{SS: 7, BP: 10})
	want := Price{GC: 1, SS: 2, BP: 10}
	if got != want {
		t.Fatalf("Add() = %+v, want %+v", got, want)
	}
}

func TestMarketPrice(t *testing.T) {
	got, err := MarketPrice(ConsumablePreservatives)
	if err != nil {
		t.Fatalf("MarketPrice() error = %v", err)
	}
	if got != (Price{SS: 5}) {
		t.Fatalf("MarketPrice(preservatives) = %+v, want 5ss", got)
	}
	if _, err := MarketPrice("lanterns"); !errors.Is(err, ErrUnknownConsumable) {
		t.Fatalf("MarketPrice(lanterns) error = %v, want %v", err, ErrUnknownConsumable)
	}
}

func TestProvisionsPrice(t *testing.T) {
	if got := ProvisionsPrice(4); got != (Price{SS: 4}) {
		t.Fatalf("ProvisionsPrice(4) = %+v, want 4ss", got)
	}
	if got := ProvisionsPrice(25); got != (Price{GC: 1, SS: 5}) {
		t.Fatalf("ProvisionsPrice(25) = %+v, want 1gc 5ss", got)
	}
	if got := ProvisionsPrice(-1); got != (Price{}) {
		t.Fatalf("ProvisionsPrice(-1) = %+v, want zero", got)
	}
}

func TestMountProvisionsPrice(t *testing.T) {
	if got := MountProvisionsPrice(); got != (Price{BP: 6}) {
		t.Fatalf("MountProvisionsPrice() = %+v, want 6bp", got)
	}
}

func TestResetRefund(t *testing.T) {
	held := Consumables{
		ConsumableCampSupplies:       2,
		ConsumableSpirits:            0,
		ConsumableMeticulousPlanning: 1,
		ConsumableUpdatedMaps:        1,
	}
	if got := held.ResetRefund(); got != 9 {
		t.Fatalf("ResetRefund() = %d, want 9", got)
	}
	if got := (Consumables{}).ResetRefund(); got != 0 {
		t.Fatalf("empty ResetRefund() = %d, want 0", got)
	}
}

func TestConsumablesHeld(t *testing.T) {
	held := Consumables{ConsumableSpirits: 1, ConsumableCampSupplies: 0}
	if !held.Held(ConsumableSpirits) {
		t.Fatal("Held(spirits) = false, want true")
	}
	if held.Held(ConsumableCampSupplies) {
		t.Fatal("Held(campSupplies) = true, want false")
	}
}
