package components_test

import (
	"testing"

	"github.com/Nickgiresse/aurastyle/internal/ui/components"
)

func TestFCFA(t *testing.T) {
	t.Parallel()
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0 FCFA"},
		{950, "950 FCFA"},
		{2000, "2 000 FCFA"},
		{15000, "15 000 FCFA"},
		{1234567, "1 234 567 FCFA"},
		{-2000, "-2 000 FCFA"},
	}
	for _, tc := range cases {
		if got := components.FCFA(tc.amount); got != tc.want {
			t.Errorf("FCFA(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
