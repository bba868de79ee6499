package text

import "testing"

func TestMeasure(t *testing.T) {
	w, h := Measure("sin(x)", 12)
	if w <= 0 {
		t.Errorf("width = %g, want positive", w)
	}
	if h <= 0 {
		t.Errorf("height = %g, want positive", h)
	}

	wide, _ := Measure("a much longer label", 12)
	if wide <= w {
		t.Errorf("longer label width %g not greater than %g", wide, w)
	}

	big, _ := Measure("sin(x)", 24)
	if big <= w {
		t.Errorf("width at size 24 = %g, want greater than %g at size 12", big, w)
	}
}

func TestMeasureEmpty(t *testing.T) {
	w, h := Measure("", 12)
	if w != 0 {
		t.Errorf("empty width = %g, want 0", w)
	}
	if h <= 0 {
		t.Errorf("empty height = %g, want line height", h)
	}
}

func TestMeasureInvalidSize(t *testing.T) {
	if w, h := Measure("x", 0); w != 0 || h != 0 {
		t.Errorf("Measure at size 0 = (%g, %g), want (0, 0)", w, h)
	}
	if w, h := Measure("x", -3); w != 0 || h != 0 {
		t.Errorf("Measure at negative size = (%g, %g), want (0, 0)", w, h)
	}
}

func TestMeasureShaped(t *testing.T) {
	w, err := MeasureShaped("sin(x)", 12)
	if err != nil {
		t.Fatalf("MeasureShaped() error = %v", err)
	}
	if w <= 0 {
		t.Errorf("shaped width = %g, want positive", w)
	}

	plain, _ := Measure("sin(x)", 12)
	// Shaped and unshaped advances agree closely for plain Latin text;
	// they only diverge when kerning or ligatures kick in.
	if ratio := w / plain; ratio < 0.8 || ratio > 1.25 {
		t.Errorf("shaped/plain ratio = %g for identical text, want near 1", ratio)
	}
}

func TestMeasureShapedEmpty(t *testing.T) {
	w, err := MeasureShaped("", 12)
	if err != nil || w != 0 {
		t.Errorf("MeasureShaped(\"\") = %g, %v; want 0, nil", w, err)
	}
}

func TestDetectBase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Direction
	}{
		{"empty", "", DirectionLTR},
		{"latin", "voltage", DirectionLTR},
		{"digits", "1024", DirectionLTR},
		{"hebrew", "שלום", DirectionRTL},
		{"arabic", "مرحبا", DirectionRTL},
		{"mixed leading latin", "abc שלום", DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectBase(tt.in); got != tt.want {
				t.Errorf("DetectBase(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
