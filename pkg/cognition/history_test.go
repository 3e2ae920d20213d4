package cognition

import (
	"math"
	"testing"
)

func TestRingEvictsOldest(t *testing.T) {
	r := NewRing[int](3)
	for i := 1; i <= 5; i++ {
		r.Push(i)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	want := []int{3, 4, 5}
	for i, v := range r.Items() {
		if v != want[i] {
			t.Errorf("Items()[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestRingTail(t *testing.T) {
	r := NewRing[int](5)
	for i := 1; i <= 4; i++ {
		r.Push(i)
	}
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"partial", 2, []int{3, 4}},
		{"overlong", 10, []int{1, 2, 3, 4}},
		{"zero", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Tail(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Tail(%d) len = %d, want %d", tt.n, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tail(%d)[%d] = %d, want %d", tt.n, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHistorySkipsNonFinite(t *testing.T) {
	h := NewHistory(10)
	h.Push(1, 0)
	h.Push(math.NaN(), 1)
	h.Push(math.Inf(1), 2)
	h.Push(2, 3)
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if got := h.Mean(10); !almostEqual(got, 1.5, 1e-12) {
		t.Errorf("Mean() = %v, want 1.5", got)
	}
}

func TestHistorySlope(t *testing.T) {
	t.Run("two point fallback", func(t *testing.T) {
		h := NewHistory(10)
		h.Push(0, 0)
		h.Push(10, 2)
		if got := h.Slope(10); !almostEqual(got, 5, 1e-12) {
			t.Errorf("Slope() = %v, want 5", got)
		}
	})
	t.Run("regression", func(t *testing.T) {
		h := NewHistory(10)
		for i := 0; i < 6; i++ {
			h.Push(float64(i)*2, float64(i))
		}
		if got := h.Slope(10); !almostEqual(got, 2, 1e-9) {
			t.Errorf("Slope() = %v, want 2", got)
		}
	})
	t.Run("constant", func(t *testing.T) {
		h := NewHistory(10)
		for i := 0; i < 5; i++ {
			h.Push(7, float64(i))
		}
		if got := h.Slope(10); got != 0 {
			t.Errorf("Slope() = %v, want 0", got)
		}
	})
}

func TestHistoryTrend(t *testing.T) {
	rising := NewHistory(20)
	falling := NewHistory(20)
	flat := NewHistory(20)
	for i := 0; i < 10; i++ {
		rising.Push(float64(i), float64(i))
		falling.Push(float64(-i), float64(i))
		flat.Push(5, float64(i))
	}
	short := NewHistory(20)
	short.Push(1, 0)

	tests := []struct {
		name          string
		h             *History
		lowerIsBetter bool
		want          string
	}{
		{"rising", rising, false, TrendImproving},
		{"rising lower is better", rising, true, TrendDeclining},
		{"falling", falling, false, TrendDeclining},
		{"flat", flat, false, TrendStable},
		{"too short", short, false, TrendInsufficient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.h.Trend(10, 5, 0.001, tt.lowerIsBetter)
			if got != tt.want {
				t.Errorf("Trend() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHistoryModeRatio(t *testing.T) {
	h := NewHistory(10)
	values := []float64{1, 1, 1, 2, 3}
	for i, v := range values {
		h.Push(v, float64(i))
	}
	if got := h.ModeRatio(5); !almostEqual(got, 0.6, 1e-12) {
		t.Errorf("ModeRatio() = %v, want 0.6", got)
	}
}
