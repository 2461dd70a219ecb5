package ocr

import "testing"

func TestPickUnitToken(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain unit", "kg/cm2", "kg/cm2"},
		{"unit among dial text", "PRESSURE 0 2 4 6 8 10 kg/cm2 MADE IN JAPAN", "kg/cm2"},
		{"superscript spelling", "KG/CM² class 1.6", "kg/cm2"},
		{"psi uppercase", "0 30 60 PSI", "psi"},
		{"canonicalized mpa", "0.0 1.0 MPa", "MPa"},
		{"trailing punctuation", "range: bar.", "bar"},
		{"numbers only", "0 2 4 6 8 10", ""},
		{"no unit text", "ACME INSTRUMENT CO", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickUnitToken(tt.text); got != tt.want {
				t.Errorf("pickUnitToken(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
