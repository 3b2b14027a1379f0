package layout

import "testing"

func TestScale_Constructors(t *testing.T) {
	type tc struct {
		value  Scale
		isAuto bool
		unit   Unit
		amount float64
	}

	tests := map[string]tc{
		"Auto": {
			value:  Auto(),
			isAuto: true,
			unit:   UnitAuto,
			amount: 0,
		},
		"Pixel": {
			value:  Pixel(100),
			unit:   UnitPixel,
			amount: 100,
		},
		"Weight": {
			value:  Weight(2),
			unit:   UnitWeight,
			amount: 2,
		},
		"Percent": {
			value:  Percent(50),
			unit:   UnitPercent,
			amount: 50,
		},
		"zero value is auto": {
			value:  Scale{},
			isAuto: true,
			unit:   UnitAuto,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
		})
	}
}

func TestScale_Resolve(t *testing.T) {
	type tc struct {
		value     Scale
		available int
		fallback  int
		expected  int
	}

	tests := map[string]tc{
		"pixel ignores available": {
			value:     Pixel(50),
			available: 100,
			fallback:  999,
			expected:  50,
		},
		"percent of available": {
			value:     Percent(25),
			available: 200,
			expected:  50,
		},
		"percent rounds to nearest": {
			value:     Percent(50),
			available: 77,
			expected:  39,
		},
		"weight uses fallback": {
			value:     Weight(3),
			available: 100,
			fallback:  7,
			expected:  7,
		},
		"auto uses fallback": {
			value:     Auto(),
			available: 100,
			fallback:  12,
			expected:  12,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.available, tt.fallback); got != tt.expected {
				t.Errorf("Resolve(%d, %d) = %d, want %d", tt.available, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestParseScale(t *testing.T) {
	type tc struct {
		input    string
		expected Scale
		wantErr  bool
	}

	tests := map[string]tc{
		"bare number is pixels": {input: "25", expected: Pixel(25)},
		"px suffix":             {input: "14px", expected: Pixel(14)},
		"percentage":            {input: "50%", expected: Percent(50)},
		"weight":                {input: "3w", expected: Weight(3)},
		"fractional weight":     {input: "0.5w", expected: Weight(0.5)},
		"auto keyword":          {input: "auto", expected: Auto()},
		"empty is auto":         {input: "", expected: Auto()},
		"surrounding spaces":    {input: "  10% ", expected: Percent(10)},
		"negative rejected":     {input: "-4w", wantErr: true},
		"garbage rejected":      {input: "wide", wantErr: true},
		"unknown unit rejected": {input: "10em", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseScale(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseScale(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScale(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseScale(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseScaleValue(t *testing.T) {
	type tc struct {
		input    any
		expected Scale
		wantErr  bool
	}

	tests := map[string]tc{
		"int":       {input: 40, expected: Pixel(40)},
		"float":     {input: 12.0, expected: Pixel(12)},
		"string":    {input: "2w", expected: Weight(2)},
		"nil":       {input: nil, expected: Auto()},
		"negative":  {input: -3, wantErr: true},
		"bool":      {input: true, wantErr: true},
		"pre-built": {input: Percent(20), expected: Percent(20)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseScaleValue(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseScaleValue(%v) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScaleValue(%v) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseScaleValue(%v) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestScale_String_RoundTrips(t *testing.T) {
	for _, s := range []Scale{Pixel(10), Weight(1.5), Percent(33), Auto()} {
		parsed, err := ParseScale(s.String())
		if err != nil {
			t.Fatalf("ParseScale(%q) error = %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("ParseScale(%q) = %+v, want %+v", s.String(), parsed, s)
		}
	}
}
