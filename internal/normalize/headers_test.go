package normalize

import "testing"

func TestHeader(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Pago por Seguro", "pago_por_seguro"},
		{"  Doctor a Pagar ", "doctor_a_pagar"},
		{"% de Pago", "%_de_pago"},
		{"laboratorio", "laboratorio"},
		{"Monto  a   Pagar", "monto_a_pagar"},
	}

	for _, tc := range cases {
		if got := Header(tc.in); got != tc.want {
			t.Errorf("Header(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
