package normalize

import "testing"

func TestBoolish(t *testing.T) {
	cases := []struct {
		in   string
		want Tristate
	}{
		{"si", True},
		{"Si", True},
		{"SI", True},
		{"sí", True},
		{"Sí", True},
		{"yes", True},
		{"TRUE", True},
		{"1", True},
		{" si ", True},
		{"no", False},
		{"No", False},
		{"false", False},
		{"0", False},
		{"", Unknown},
		{"tal vez", Unknown},
		{"si claro", Unknown},   // whole-string match only
		{"sin seguro", Unknown}, // substring "si" must not match
		{"yessir", Unknown},
		{"10", Unknown},
	}

	for _, tc := range cases {
		if got := Boolish(tc.in); got != tc.want {
			t.Errorf("Boolish(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTristateIsTrue(t *testing.T) {
	if !True.IsTrue() {
		t.Error("True.IsTrue() = false")
	}
	if False.IsTrue() {
		t.Error("False.IsTrue() = true")
	}
	if Unknown.IsTrue() {
		t.Error("Unknown.IsTrue() = true, unknown must collapse to no")
	}
}
