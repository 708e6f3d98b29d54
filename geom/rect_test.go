package geom

import (
	"math"
	"testing"
)

func TestRect_Empty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"positive", XYWH(0, 0, 10, 5), false},
		{"zero width", XYWH(0, 0, 0, 5), true},
		{"negative height", XYWH(0, 0, 10, -1), true},
		{"NaN width", XYWH(0, 0, math.NaN(), 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.want {
				t.Errorf("%v.Empty() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", XYWH(0, 0, 10, 10), XYWH(5, 5, 10, 10), XYWH(5, 5, 5, 5)},
		{"contained", XYWH(0, 0, 10, 10), XYWH(2, 3, 4, 5), XYWH(2, 3, 4, 5)},
		{"disjoint", XYWH(0, 0, 10, 10), XYWH(20, 20, 5, 5), Rect{}},
		{"touching edge", XYWH(0, 0, 10, 10), XYWH(10, 0, 5, 5), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	got := XYWH(0, 0, 2, 2).Union(XYWH(5, 5, 1, 1))
	if want := LTRB(0, 0, 6, 6); got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
	if got := (Rect{}).Union(XYWH(1, 1, 1, 1)); got != XYWH(1, 1, 1, 1) {
		t.Errorf("Union with empty = %v", got)
	}
}

func TestRect_ScaleOffset(t *testing.T) {
	r := XYWH(1, 2, 3, 4).Offset(1, 1).Scale(2)
	if want := XYWH(4, 6, 6, 8); r != want {
		t.Errorf("got %v, want %v", r, want)
	}
	if c := r.Center(); c != Pt(7, 10) {
		t.Errorf("Center() = %v", c)
	}
}
