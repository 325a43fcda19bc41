package model

import "fmt"

// AverageRate is the arithmetic mean of the given rates rounded to two
// decimal places, formatted with exactly two decimals. The rounding is done
// in integer cents with ties going up, which for positive rates agrees with
// round(avg(rate), 2) on a Postgres numeric. Returns nil when no relation
// carries a rate: the displayed rating is absent, not zero.
func AverageRate(rates []int) *string {
	if len(rates) == 0 {
		return nil
	}
	sum := 0
	for _, rate := range rates {
		sum += rate
	}
	cents := (200*sum + len(rates)) / (2 * len(rates))
	s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	return &s
}
