package costs

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCost renders a monthly cost for display:
// exactly zero -> "$0", >= $1000 -> whole dollars with thousands
// separators, $100-999 -> whole dollars, below $100 -> cents.
func FormatCost(cost float64) string {
	switch {
	case cost == 0:
		return "$0"
	case cost >= 1000:
		return "$" + groupThousands(int64(math.Round(cost)))
	case cost >= 100:
		return fmt.Sprintf("$%.0f", cost)
	default:
		return fmt.Sprintf("$%.2f", cost)
	}
}

// groupThousands inserts commas into a non-negative integer: 2944 -> "2,944".
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
