package layout

import "testing"

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value     Value
		unit      Unit
		amount    float32
		undefined bool
	}

	tests := map[string]tc{
		"Auto":              {value: Auto(), unit: UnitAuto, undefined: true},
		"UndefinedValue":    {value: UndefinedValue(), unit: UnitUndefined, undefined: true},
		"Point":             {value: Point(100), unit: UnitPoint, amount: 100},
		"negative Point":    {value: Point(-4), unit: UnitPoint, amount: -4},
		"Percent":           {value: Percent(50), unit: UnitPercent, amount: 50},
		"Point of NaN":      {value: Point(Undefined), unit: UnitUndefined, undefined: true},
		"Percent of NaN":    {value: Percent(Undefined), unit: UnitUndefined, undefined: true},
		"zero value struct": {value: Value{}, unit: UnitUndefined, undefined: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.value.Unit() != tt.unit {
				t.Errorf("Unit() = %v, want %v", tt.value.Unit(), tt.unit)
			}
			if tt.undefined {
				if !IsUndefined(tt.value.Amount()) {
					t.Errorf("Amount() = %v, want NaN", tt.value.Amount())
				}
				return
			}
			if tt.value.Amount() != tt.amount {
				t.Errorf("Amount() = %v, want %v", tt.value.Amount(), tt.amount)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		reference float32
		want      float32
	}

	tests := map[string]tc{
		"point ignores reference":      {value: Point(50), reference: 100, want: 50},
		"percent of reference":         {value: Percent(50), reference: 200, want: 100},
		"percent of zero":              {value: Percent(50), reference: 0, want: 0},
		"percent of undefined":         {value: Percent(50), reference: Undefined, want: Undefined},
		"auto is undefined":            {value: Auto(), reference: 100, want: Undefined},
		"undefined is undefined":       {value: UndefinedValue(), reference: 100, want: Undefined},
		"point with undefined ref":     {value: Point(7), reference: Undefined, want: 7},
		"fractional percent":           {value: Percent(12.5), reference: 80, want: 10},
		"negative percent is resolved": {value: Percent(-10), reference: 50, want: -5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.reference); !FloatsEqual(got, tt.want) {
				t.Errorf("Resolve(%v) = %v, want %v", tt.reference, got, tt.want)
			}
		})
	}
}

func TestValue_Equal(t *testing.T) {
	type tc struct {
		a, b Value
		want bool
	}

	tests := map[string]tc{
		"undefined equals undefined":  {a: UndefinedValue(), b: Value{}, want: true},
		"auto equals auto":            {a: Auto(), b: Auto(), want: true},
		"points within tolerance":     {a: Point(1), b: Point(1.00001), want: true},
		"points outside tolerance":    {a: Point(1), b: Point(1.01), want: false},
		"point differs from percent":  {a: Point(10), b: Percent(10), want: false},
		"auto differs from undefined": {a: Auto(), b: UndefinedValue(), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	type tc struct {
		input   string
		want    Value
		wantErr bool
	}

	tests := map[string]tc{
		"empty":          {input: "", want: UndefinedValue()},
		"undefined":      {input: "undefined", want: UndefinedValue()},
		"auto":           {input: "AUTO", want: Auto()},
		"bare number":    {input: "12.5", want: Point(12.5)},
		"pt suffix":      {input: "10pt", want: Point(10)},
		"px suffix":      {input: " 3px ", want: Point(3)},
		"percent":        {input: "50%", want: Percent(50)},
		"negative":       {input: "-4", want: Point(-4)},
		"garbage":        {input: "wide", wantErr: true},
		"bad percentage": {input: "x%", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValue_StringParsesBack(t *testing.T) {
	for _, v := range []Value{Auto(), UndefinedValue(), Point(3.25), Percent(40)} {
		got, err := ParseValue(v.String())
		if err != nil {
			t.Fatalf("ParseValue(%q) error = %v", v.String(), err)
		}
		if !got.Equal(v) {
			t.Errorf("ParseValue(%q) = %v, want %v", v.String(), got, v)
		}
	}
}

func TestFloatHelpers(t *testing.T) {
	if !FloatsEqual(Undefined, Undefined) {
		t.Error("FloatsEqual(NaN, NaN) = false, want true")
	}
	if FloatsEqual(Undefined, 0) {
		t.Error("FloatsEqual(NaN, 0) = true, want false")
	}
	if got := maxOrDefined(Undefined, 3); got != 3 {
		t.Errorf("maxOrDefined(NaN, 3) = %v, want 3", got)
	}
	if got := minOrDefined(2, Undefined); got != 2 {
		t.Errorf("minOrDefined(2, NaN) = %v, want 2", got)
	}
	if got := maxOrDefined(-1, 4); got != 4 {
		t.Errorf("maxOrDefined(-1, 4) = %v, want 4", got)
	}
}
