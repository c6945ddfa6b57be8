package system

import "testing"

func TestRectIntersectsIsStrict(t *testing.T) {
	platform := rect{X: 100, Y: 400, W: 200, H: 20}
	cases := []struct {
		name string
		r    rect
		want bool
	}{
		{"standing_on_top", rect{X: 150, Y: 360, W: 30, H: 40}, false},
		{"touching_left_edge", rect{X: 70, Y: 390, W: 30, H: 40}, false},
		{"touching_right_edge", rect{X: 300, Y: 390, W: 30, H: 40}, false},
		{"touching_underside", rect{X: 150, Y: 420, W: 30, H: 40}, false},
		{"sunk_one_unit", rect{X: 150, Y: 361, W: 30, H: 40}, true},
		{"inside", rect{X: 150, Y: 395, W: 30, H: 10}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.r.Intersects(platform); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
			if got := platform.Intersects(c.r); got != c.want {
				t.Fatalf("reverse Intersects = %v, want %v", got, c.want)
			}
		})
	}
}
