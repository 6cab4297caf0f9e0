package party

import (
	"errors"
	"testing"
	"time"
)

func TestNewCharacter(t *testing.T) {
	now := time.Now()

	c, err := NewCharacter("Else Sigundsdottir", "tokens/else.png", 4, 12, 14, now)
	if err != nil {
		t.Fatalf("NewCharacter() error = %v", err)
	}
	if c.ID == "" {
		t.Fatal("NewCharacter() returned empty ID")
	}
	if c.ToughnessBonus != 4 || c.CurrentWounds != 12 || c.MaxWounds != 14 {
		t.Fatalf("stats = %d/%d/%d, want 4/12/14", c.ToughnessBonus, c.CurrentWounds, c.MaxWounds)
	}

	tests := []struct {
		name    string
		cname   string
		tb      int
		current int
		max     int
		want    error
	}{
		{name: "empty name", cname: "", tb: 3, current: 10, max: 10, want: ErrCharacterNameEmpty},
		{name: "negative tb", cname: "x", tb: -1, current: 10, max: 10, want: ErrCharacterBadTB},
		{name: "current above max", cname: "x", tb: 3, current: 11, max: 10, want: ErrCharacterBadWounds},
		{name: "negative wounds", cname: "x", tb: 3, current: -1, max: 10, want: ErrCharacterBadWounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCharacter(tt.cname, "", tt.tb, tt.current, tt.max, now); !errors.Is(err, tt.want) {
				t.Fatalf("NewCharacter() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApplyWoundsAndHeal(t *testing.T) {
	c := Character{Name: "x", CurrentWounds: 5, MaxWounds: 10}

	c.ApplyWounds(-3)
	if c.CurrentWounds != 0 {
		t.Fatalf("ApplyWounds(-3): CurrentWounds = %d, want 0", c.CurrentWounds)
	}
	c.Heal(4)
	if c.CurrentWounds != 4 {
		t.Fatalf("Heal(4): CurrentWounds = %d, want 4", c.CurrentWounds)
	}
	c.Heal(20)
	if c.CurrentWounds != 10 {
		t.Fatalf("Heal(20): CurrentWounds = %d, want max 10", c.CurrentWounds)
	}
	c.Heal(-1)
	if c.CurrentWounds != 10 {
		t.Fatalf("Heal(-1): CurrentWounds = %d, want unchanged", c.CurrentWounds)
	}
}
