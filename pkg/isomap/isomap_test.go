package isomap

import (
	"math"
	"testing"
	"time"

	"iso-zombie/pkg/geom"
)

func newTestMap(origin geom.Vec2) *IsoMap {
	return New(10, 10, 64, 32, origin, 1337)
}

func TestWorldScreenRoundTrip(t *testing.T) {
	origins := []geom.Vec2{{}, {X: 120, Y: 80}, {X: -333.5, Y: 12.25}}
	for _, o := range origins {
		m := newTestMap(o)
		for x := -5.0; x <= 15; x += 0.75 {
			for y := -5.0; y <= 15; y += 1.25 {
				w := geom.V(x, y)
				back := m.ScreenToWorld(m.WorldToScreen(w))
				if back.Sub(w).Len() >= 1e-3 {
					t.Fatalf("origin %v: round trip of %v gave %v", o, w, back)
				}
			}
		}
	}
}

func TestOriginOffsetIsPureTranslation(t *testing.T) {
	base := newTestMap(geom.Vec2{})
	offset := newTestMap(geom.V(120, 80))
	for _, w := range []geom.Vec2{{X: 2, Y: 7}, {X: 0, Y: 0}, {X: 9.5, Y: 3.25}} {
		d := offset.WorldToScreen(w).Sub(base.WorldToScreen(w))
		if d != geom.V(120, 80) {
			t.Fatalf("world %v: offset delta %v, want (120,80)", w, d)
		}
	}
}

func TestWorldToScreenFormula(t *testing.T) {
	m := newTestMap(geom.V(10, 20))
	got := m.WorldToScreen(geom.V(3.5, 4))
	want := geom.V((3.5-4)*32+10, (3.5+4)*16+20)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFollowPutsFocusAtScreenCenter(t *testing.T) {
	m := newTestMap(geom.Vec2{})
	center := geom.V(512, 384)
	for _, focus := range []geom.Vec2{{X: 5, Y: 5}, {X: 0, Y: 9}, {X: 7.3, Y: 1.1}} {
		m.Follow(focus, center)
		if d := m.WorldToScreen(focus).Sub(center).Len(); d > 1e-9 {
			t.Fatalf("focus %v drawn %v px from center", focus, d)
		}
	}
}

func TestDecorationsDeterministic(t *testing.T) {
	for _, seed := range []int64{1337, 0, -7} {
		a := GenerateDecorations(30, 30, seed)
		// Zero must not fall back to a clock seed.
		time.Sleep(time.Millisecond)
		b := GenerateDecorations(30, 30, seed)
		if len(a) != len(b) {
			t.Fatalf("seed %d: lengths differ: %d vs %d", seed, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seed %d: decoration %d differs: %v vs %v", seed, i, a[i], b[i])
			}
		}
		if len(a) == 0 {
			t.Fatalf("seed %d: expected some decorations on a 30x30 map", seed)
		}
	}
}

func TestDecorationsAvoidClearing(t *testing.T) {
	for _, size := range [][2]int{{30, 30}, {10, 10}, {7, 13}} {
		for _, d := range GenerateDecorations(size[0], size[1], 1337) {
			if math.Abs(d.Pos.X-float64(size[0])/2) < 2 && math.Abs(d.Pos.Y-float64(size[1])/2) < 2 {
				t.Fatalf("size %v: decoration %v inside center clearing", size, d)
			}
			if d.Kind == DecorationNone {
				t.Fatalf("none-kind decoration emitted: %v", d)
			}
		}
	}
}

func TestDecorationsOrderedRowMajor(t *testing.T) {
	ds := GenerateDecorations(30, 30, 1337)
	for i := 1; i < len(ds); i++ {
		prev, cur := ds[i-1].Pos, ds[i].Pos
		if cur.Y < prev.Y || (cur.Y == prev.Y && cur.X <= prev.X) {
			t.Fatalf("decorations out of generation order at %d: %v after %v", i, cur, prev)
		}
	}
}

func TestClassifyRollBuckets(t *testing.T) {
	tests := []struct {
		roll float64
		want DecorationKind
	}{
		{0.0, DecorationTree},
		{0.059, DecorationTree},
		{0.061, DecorationRock},
		{0.099, DecorationRock},
		{0.101, DecorationFlower},
		{0.179, DecorationFlower},
		{0.181, DecorationNone},
		{0.99, DecorationNone},
	}
	for _, tt := range tests {
		if got := ClassifyRoll(tt.roll); got != tt.want {
			t.Errorf("ClassifyRoll(%v) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}
