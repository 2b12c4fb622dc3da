package scale

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestFitDomain(t *testing.T) {
	l := Fit(10, 20, DefaultPadding, 0, 820)
	d0, d1 := l.Domain()
	if math.Abs(d0-9.5) > eps {
		t.Errorf("expected low domain 9.5, got %f", d0)
	}
	if math.Abs(d1-22) > eps {
		t.Errorf("expected high domain 22, got %f", d1)
	}
}

func TestMapInvert(t *testing.T) {
	l := New(0, 10, 0, 100)
	if got := l.Map(5); math.Abs(got-50) > eps {
		t.Errorf("expected 50, got %f", got)
	}
	if got := l.Invert(25); math.Abs(got-2.5) > eps {
		t.Errorf("expected 2.5, got %f", got)
	}

	flipped := New(0, 10, 420, 0)
	if got := flipped.Map(0); math.Abs(got-420) > eps {
		t.Errorf("expected bottom of range for domain start, got %f", got)
	}
	if got := flipped.Map(10); math.Abs(got) > eps {
		t.Errorf("expected top of range for domain end, got %f", got)
	}
}

func TestMapDegenerate(t *testing.T) {
	l := New(5, 5, 0, 100)
	if got := l.Map(5); got != 50 {
		t.Errorf("expected midpoint 50, got %f", got)
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name   string
		d0, d1 float64
		n      int
		want   []float64
	}{
		{"unit", 0, 10, 5, []float64{0, 2, 4, 6, 8, 10}},
		{"padded poverty", 8.455, 24.2, 8, []float64{10, 12, 14, 16, 18, 20, 22, 24}},
		{"fractional", 0, 1, 4, []float64{0, 0.25, 0.5, 0.75, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.d0, tt.d1, 0, 1).Ticks(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("tick %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}

	if New(3, 3, 0, 1).Ticks(5) != nil {
		t.Error("expected no ticks for a degenerate domain")
	}
}

func TestTickFormat(t *testing.T) {
	if got := New(0, 10, 0, 1).TickFormat(5)(4); got != "4" {
		t.Errorf("expected \"4\", got %q", got)
	}
	if got := New(0, 1, 0, 1).TickFormat(4)(0.25); got != "0.25" {
		t.Errorf("expected \"0.25\", got %q", got)
	}
}

func TestEaseCubicInOut(t *testing.T) {
	if EaseCubicInOut(0) != 0 || EaseCubicInOut(1) != 1 {
		t.Error("easing must start at 0 and end at 1")
	}
	if math.Abs(EaseCubicInOut(0.5)-0.5) > eps {
		t.Errorf("expected 0.5 at midpoint, got %f", EaseCubicInOut(0.5))
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseCubicInOut(float64(i) / 100)
		if v < prev {
			t.Fatalf("easing not monotone at %d", i)
		}
		prev = v
	}
}
