package normalize

import "testing"

func TestMoney(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1250", 1250, true},
		{"1,250.50", 1250.50, true},
		{"$1,250.50", 1250.50, true},
		{"$ 300", 300, true},
		{"0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"n/a", 0, false},
		{"$", 0, false},
	}

	for _, tc := range cases {
		got, ok := Money(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("Money(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"50", 50, true},
		{"50%", 50, true},
		{"50.5 %", 50.5, true},
		{" 40 ", 40, true},
		{"", 0, false},
		{"%", 0, false},
		{"half", 0, false},
	}

	for _, tc := range cases {
		got, ok := Percent(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("Percent(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
