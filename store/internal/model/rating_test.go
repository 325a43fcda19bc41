package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAverageRate(t *testing.T) {
	t.Parallel()
	str := func(s string) *string { return &s }

	tests := []struct {
		name  string
		rates []int
		want  *string
	}{
		{
			name:  "no rates",
			rates: nil,
			want:  nil,
		},
		{
			name:  "single",
			rates: []int{4},
			want:  str("4.00"),
		},
		{
			name:  "rounds half up",
			rates: []int{5, 5, 4},
			want:  str("4.67"),
		},
		{
			name:  "even mean keeps two decimals",
			rates: []int{3, 4},
			want:  str("3.50"),
		},
		{
			name:  "truncates repeating third",
			rates: []int{1, 1, 2},
			want:  str("1.33"),
		},
		{
			// 39x1 + 1x2 over 40 raters is exactly 1.025; the tie
			// rounds up like round(avg(rate), 2) does in Postgres.
			name:  "exact half cent rounds up",
			rates: append(repeatRate(1, 39), 2),
			want:  str("1.03"),
		},
		{
			name:  "exact half cent rounds up at upper range",
			rates: append(repeatRate(5, 39), 4),
			want:  str("4.98"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AverageRate(tt.rates)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, *tt.want, *got)
		})
	}
}

func repeatRate(rate, n int) []int {
	rates := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		rates = append(rates, rate)
	}
	return rates
}

func TestAverageRateIdempotent(t *testing.T) {
	t.Parallel()
	rates := []int{5, 5, 4}
	first := AverageRate(rates)
	second := AverageRate(rates)
	require.Equal(t, *first, *second)
}
