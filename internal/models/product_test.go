package models

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Coconut Oil":           "coconut-oil",
		"Gingelly (Sesame) Oil": "gingelly-sesame-oil",
		"  Wheat Flour (Atta) ": "wheat-flour-atta",
		"Basmati":               "basmati",
		"!!!":                   "",
	}
	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeProductID(t *testing.T) {
	id, err := NormalizeProductID("  Coconut-Oil-1234 ")
	if err != nil {
		t.Fatalf("NormalizeProductID returned error: %v", err)
	}
	if id != "coconut-oil-1234" {
		t.Fatalf("expected lowercased id, got %q", id)
	}

	for _, bad := range []string{"", "has space", "ünïcode", "semi;colon"} {
		if _, err := NormalizeProductID(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDeriveProductIDMatchesSlugPlusTail(t *testing.T) {
	never := func(string) (bool, error) { return false, nil }

	id, err := DeriveProductID("Coconut Oil", time.Now(), never)
	if err != nil {
		t.Fatalf("DeriveProductID returned error: %v", err)
	}
	if !regexp.MustCompile(`^coconut-oil-\d{4}$`).MatchString(id) {
		t.Fatalf("expected coconut-oil-#### shape, got %q", id)
	}
}

func TestDeriveProductIDAdvancesOnCollision(t *testing.T) {
	taken := map[string]bool{}
	exists := func(id string) (bool, error) { return taken[id], nil }

	now := time.Now()
	first, err := DeriveProductID("Toor Dal", now, exists)
	if err != nil {
		t.Fatalf("first derivation failed: %v", err)
	}
	taken[first] = true

	second, err := DeriveProductID("Toor Dal", now, exists)
	if err != nil {
		t.Fatalf("second derivation failed: %v", err)
	}
	if second == first {
		t.Fatalf("expected a fresh id, got %q twice", first)
	}
	if taken[second] {
		t.Fatalf("derived id %q is already taken", second)
	}
}

func TestDeriveProductIDPropagatesLookupError(t *testing.T) {
	boom := errors.New("db down")
	if _, err := DeriveProductID("Basmati", time.Now(), func(string) (bool, error) {
		return false, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestDeriveProductIDRejectsEmptySlug(t *testing.T) {
	if _, err := DeriveProductID("!!!", time.Now(), func(string) (bool, error) {
		return false, nil
	}); err == nil {
		t.Fatal("expected error for name with no usable characters")
	}
}

func TestResolveLiquidUnitNeverDisagrees(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }
	strPtr := func(s string) *string { return &s }

	cases := []struct {
		name          string
		isLiquid      *bool
		unit          *string
		currentLiquid bool
		wantLiquid    bool
		wantUnit      string
	}{
		{"liquid true drives L", boolPtr(true), nil, false, true, UnitLitre},
		{"liquid false drives kg", boolPtr(false), strPtr("L"), true, false, UnitKilogram},
		{"liquid wins over unit", boolPtr(true), strPtr("kg"), false, true, UnitLitre},
		{"unit L implies liquid", nil, strPtr("L"), false, true, UnitLitre},
		{"unit kg implies solid", nil, strPtr("kg"), true, false, UnitKilogram},
		{"unit is case-insensitive", nil, strPtr("l"), false, true, UnitLitre},
		{"nothing set keeps current", nil, nil, true, true, UnitLitre},
		{"nothing set defaults kg", nil, nil, false, false, UnitKilogram},
	}

	for _, tc := range cases {
		liquid, unit := ResolveLiquidUnit(tc.isLiquid, tc.unit, tc.currentLiquid)
		if liquid != tc.wantLiquid || unit != tc.wantUnit {
			t.Fatalf("%s: got (%v, %q), want (%v, %q)", tc.name, liquid, unit, tc.wantLiquid, tc.wantUnit)
		}
		if (unit == UnitLitre) != liquid {
			t.Fatalf("%s: unit %q disagrees with isLiquid=%v", tc.name, unit, liquid)
		}
	}
}

func TestUnitFor(t *testing.T) {
	if UnitFor(true) != UnitLitre || UnitFor(false) != UnitKilogram {
		t.Fatal("UnitFor mapping is wrong")
	}
}
