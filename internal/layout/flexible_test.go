package layout

import "testing"

func collect(n int) ([]Rect, func(int, Rect)) {
	out := make([]Rect, n)
	return out, func(i int, r Rect) { out[i] = r }
}

func TestFlexible(t *testing.T) {
	type tc struct {
		items    []Item
		area     Rect
		axis     Axis
		spacing  Scale
		expected []Rect
	}

	tests := map[string]tc{
		"horizontal weights": {
			items:    []Item{{Width: Weight(1)}, {Width: Weight(3)}},
			area:     NewRect(0, 0, 100, 20),
			axis:     Horizontal,
			expected: []Rect{NewRect(0, 0, 25, 20), NewRect(25, 0, 75, 20)},
		},
		"vertical auto children share evenly": {
			items:    []Item{{}, {}},
			area:     NewRect(10, 10, 50, 100),
			axis:     Vertical,
			expected: []Rect{NewRect(10, 10, 50, 50), NewRect(10, 60, 50, 50)},
		},
		"pixel child with spacing": {
			items:    []Item{{Height: Pixel(15)}, {Height: Weight(1)}},
			area:     NewRect(0, 0, 80, 100),
			axis:     Vertical,
			spacing:  Pixel(3),
			expected: []Rect{NewRect(0, 0, 80, 15), NewRect(0, 18, 80, 82)},
		},
		"pixel child slot includes padding": {
			items: []Item{
				{Width: Pixel(20), Padding: PadAll(Pixel(2))},
				{Width: Weight(1)},
			},
			area:     NewRect(0, 0, 100, 30),
			axis:     Horizontal,
			expected: []Rect{NewRect(2, 2, 20, 26), NewRect(24, 0, 76, 30)},
		},
		"weighted child padding applied inside slot": {
			items: []Item{
				{Width: Weight(1), Padding: PadAll(Pixel(5))},
				{Width: Weight(1)},
			},
			area:     NewRect(0, 0, 100, 40),
			axis:     Horizontal,
			expected: []Rect{NewRect(5, 5, 40, 30), NewRect(50, 0, 50, 40)},
		},
		"pixel child capped by its maximum": {
			items:    []Item{{Width: Pixel(100), MaxWidth: 60}, {Width: Weight(1)}},
			area:     NewRect(0, 0, 200, 10),
			axis:     Horizontal,
			expected: []Rect{NewRect(0, 0, 60, 10), NewRect(60, 0, 100, 10)},
		},
		"pixel child raised to its minimum": {
			items:    []Item{{Width: Pixel(20), MinWidth: 50}, {Width: Weight(1)}},
			area:     NewRect(0, 0, 100, 10),
			axis:     Horizontal,
			expected: []Rect{NewRect(0, 0, 50, 10), NewRect(50, 0, 80, 10)},
		},
		"pixel child bounds keep padding outside": {
			items:    []Item{{Height: Pixel(40), MaxHeight: 30, Padding: PadAll(Pixel(5))}},
			area:     NewRect(0, 0, 20, 100),
			axis:     Vertical,
			expected: []Rect{NewRect(5, 5, 10, 20)},
		},
		"percentage main axis": {
			items:    []Item{{Height: Percent(25)}, {}},
			area:     NewRect(0, 0, 10, 200),
			axis:     Vertical,
			expected: []Rect{NewRect(0, 0, 10, 50), NewRect(0, 50, 10, 150)},
		},
		"pixel cross axis keeps the start": {
			items:    []Item{{Height: Pixel(10)}},
			area:     NewRect(0, 0, 100, 40),
			axis:     Horizontal,
			expected: []Rect{NewRect(0, 0, 100, 10)},
		},
		"max width clamps the slot": {
			items:    []Item{{MaxWidth: 30}, {}},
			area:     NewRect(0, 0, 100, 10),
			axis:     Horizontal,
			expected: []Rect{NewRect(0, 0, 30, 10), NewRect(30, 0, 50, 10)},
		},
		"min height on cross axis": {
			items:    []Item{{Height: Pixel(4), MinHeight: 12}},
			area:     NewRect(0, 0, 100, 40),
			axis:     Horizontal,
			expected: []Rect{NewRect(0, 0, 100, 12)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, apply := collect(len(tt.items))
			Flexible(tt.items, tt.area, tt.axis, tt.spacing, apply)
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("item[%d] = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestFlexible_Empty(t *testing.T) {
	called := false
	Flexible(nil, NewRect(0, 0, 10, 10), Vertical, Pixel(0), func(int, Rect) { called = true })
	if called {
		t.Error("apply should not be called without items")
	}
}

func TestAbsolute(t *testing.T) {
	type tc struct {
		items    []Item
		area     Rect
		expected []Rect
	}

	tests := map[string]tc{
		"pixel size at offset": {
			items:    []Item{{X: 10, Y: 5, Width: Pixel(30), Height: Pixel(12)}},
			area:     NewRect(100, 100, 200, 100),
			expected: []Rect{NewRect(110, 105, 30, 12)},
		},
		"auto size stretches to far edge": {
			items:    []Item{{X: 20, Y: 10}},
			area:     NewRect(0, 0, 100, 50),
			expected: []Rect{NewRect(20, 10, 80, 40)},
		},
		"auto size in an offset area": {
			items:    []Item{{X: 20, Y: 30}},
			area:     NewRect(10, 10, 100, 100),
			expected: []Rect{NewRect(30, 40, 80, 70)},
		},
		"percentage of area": {
			items:    []Item{{Width: Percent(50), Height: Percent(10)}},
			area:     NewRect(0, 0, 200, 100),
			expected: []Rect{NewRect(0, 0, 100, 10)},
		},
		"padding offsets pixel content": {
			items:    []Item{{Width: Pixel(10), Height: Pixel(10), Padding: PadAll(Pixel(3))}},
			area:     NewRect(0, 0, 100, 100),
			expected: []Rect{NewRect(3, 3, 10, 10)},
		},
		"overlapping items": {
			items: []Item{
				{Width: Pixel(50), Height: Pixel(50)},
				{X: 25, Y: 25, Width: Pixel(50), Height: Pixel(50)},
			},
			area:     NewRect(0, 0, 100, 100),
			expected: []Rect{NewRect(0, 0, 50, 50), NewRect(25, 25, 50, 50)},
		},
		"bounds clamp": {
			items:    []Item{{MaxWidth: 40, MinHeight: 200}},
			area:     NewRect(0, 0, 100, 100),
			expected: []Rect{NewRect(0, 0, 40, 200)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, apply := collect(len(tt.items))
			Absolute(tt.items, tt.area, apply)
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("item[%d] = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
