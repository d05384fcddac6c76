package core

import (
	"math"
	"testing"
)

func TestBoxOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Box
		ox, oy float64
		ok     bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 6, 10, 10}, 5, 4, true},
		{"touching edges", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, 0, 10, false},
		{"disjoint", Box{0, 0, 10, 10}, Box{0, 20, 10, 10}, 10, -10, false},
		{"contained", Box{0, 0, 20, 20}, Box{5, 5, 2, 3}, 2, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ox, oy, ok := tc.a.Overlap(tc.b)
			if ok != tc.ok {
				t.Errorf("Overlap() ok = %v, expected %v", ok, tc.ok)
			}
			if ox != tc.ox || oy != tc.oy {
				t.Errorf("Overlap() = (%v, %v), expected (%v, %v)", ox, oy, tc.ox, tc.oy)
			}
			// Overlap is symmetric
			rx, ry, rok := tc.b.Overlap(tc.a)
			if rx != ox || ry != oy || rok != ok {
				t.Errorf("Overlap() (reversed) = (%v, %v, %v)", rx, ry, rok)
			}
		})
	}
}

func TestBoxClosestPoint(t *testing.T) {
	b := Box{X: 10, Y: 10, W: 20, H: 10}

	tests := []struct {
		name     string
		p        Vec2
		expected Vec2
	}{
		{"inside", Vec2{15, 15}, Vec2{15, 15}},
		{"left", Vec2{0, 15}, Vec2{10, 15}},
		{"below right", Vec2{40, 40}, Vec2{30, 20}},
		{"above", Vec2{20, 0}, Vec2{20, 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.ClosestPoint(tc.p)
			if got != tc.expected {
				t.Errorf("ClosestPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBoxCircleHits(t *testing.T) {
	b := Box{X: 0, Y: 0, W: 10, H: 10}

	if !b.CircleHits(Vec2{15, 5}, 6) {
		t.Error("circle reaching into the right edge should hit")
	}
	if b.CircleHits(Vec2{15, 5}, 5) {
		t.Error("circle exactly touching the edge should not hit")
	}
	// Corner: distance to (10,10) from (13,14) is 5
	if b.CircleHits(Vec2{13, 14}, 4.9) {
		t.Error("circle short of the corner should not hit")
	}
	if !b.CircleHits(Vec2{13, 14}, 5.1) {
		t.Error("circle past the corner should hit")
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{3, 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	if got := v.Add(Vec2{1, 1}).Sub(Vec2{2, 2}); got != (Vec2{2, 3}) {
		t.Errorf("Add/Sub = %v, expected {2 3}", got)
	}
	if !v.Finite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vec2{math.NaN(), 0}).Finite() {
		t.Error("NaN vector reported as finite")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRGBLerp(t *testing.T) {
	a := Hex(0x000000)
	b := Hex(0xFF8040)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, expected %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, expected %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R != 128 || mid.G != 64 || mid.B != 32 {
		t.Errorf("Lerp(0.5) = %v, expected #804020", mid)
	}
	if got := a.Lerp(b, 7); got != b {
		t.Errorf("Lerp clamps t, got %v", got)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#E53935")
	if err != nil {
		t.Fatalf("ParseHex() error: %v", err)
	}
	if c.String() != "#e53935" {
		t.Errorf("String() = %q, expected #e53935", c.String())
	}
	if _, err := ParseHex("#12"); err == nil {
		t.Error("short colour should fail")
	}
	if (RGB{}).String() != "" {
		t.Error("default colour should render as empty string")
	}
}

func TestTicksFor(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}
	tests := []struct{ ms, expected int }{
		{1000, 60},
		{1500, 90},
		{400, 24},
		{1, 1},
		{0, 1},
	}
	for _, tc := range tests {
		if got := cfg.TicksFor(tc.ms); got != tc.expected {
			t.Errorf("TicksFor(%d) = %d, expected %d", tc.ms, got, tc.expected)
		}
	}
}
