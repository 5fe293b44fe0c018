package entities

import (
	"errors"
	"testing"
)

func TestProjectSpec_Normalize(t *testing.T) {
	t.Run("empty tiers become standard", func(t *testing.T) {
		got := ProjectSpec{Area: 1000, Floors: 1, QualityTier: "  ", FinishesQuality: ""}.Normalize()
		if got.QualityTier != QualityStandard || got.FinishesQuality != QualityStandard {
			t.Fatalf("expected standard tiers, got %+v", got)
		}
	})

	t.Run("unknown tier is kept", func(t *testing.T) {
		got := ProjectSpec{Area: 1000, Floors: 1, QualityTier: " Gold "}.Normalize()
		if got.QualityTier != "gold" || got.QualityTier.Known() {
			t.Fatalf("expected unknown tier gold, got %q", got.QualityTier)
		}
	})

	t.Run("ceiling band", func(t *testing.T) {
		for in, want := range map[CeilingHeightBand]CeilingHeightBand{"": CeilingHeight10, " 12 ": CeilingHeight12, "14": CeilingHeight14, "13": CeilingHeight10} {
			if got := (ProjectSpec{CeilingHeight: in}).Normalize().CeilingHeight; got != want {
				t.Fatalf("band %q: expected %q, got %q", in, want, got)
			}
		}
	})

	t.Run("names and location", func(t *testing.T) {
		got := ProjectSpec{ProjectName: " ", Location: ""}.Normalize()
		if got.ProjectName != DefaultProjectName || got.Location != DefaultLocation {
			t.Fatalf("unexpected defaults %+v", got)
		}
	})
}

func TestProjectSpec_Validate(t *testing.T) {
	tests := []struct {
		name string
		spec ProjectSpec
		want error
	}{
		{"valid", ProjectSpec{Area: 1000, Floors: 1}, nil},
		{"zero area", ProjectSpec{Area: 0, Floors: 1}, ErrInvalidArea},
		{"zero floors", ProjectSpec{Area: 1000, Floors: 0}, ErrInvalidFloors},
		{"negative floors", ProjectSpec{Area: 1000, Floors: -1}, ErrInvalidFloors},
		{"negative rooms", ProjectSpec{Area: 1000, Floors: 1, Rooms: -1}, ErrInvalidRooms},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Normalize().Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
