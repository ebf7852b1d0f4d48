package camera

import (
	"fmt"
	"slices"
	"strings"
)

// OrderSeparator joins entries of a formatted composite order
const OrderSeparator = " -> "

// Order returns the active cameras ascending by priority
// Equal priorities keep their relative input order
func Order(cams []Camera) []Camera {
	out := make([]Camera, 0, len(cams))
	for _, c := range cams {
		if c.Active {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b Camera) int {
		return a.Priority - b.Priority
	})
	return out
}

// FormatOrder renders the composite order of cams as "Role(layer) -> ..."
func FormatOrder(cams []Camera) string {
	ordered := Order(cams)
	parts := make([]string, len(ordered))
	for i, c := range ordered {
		parts[i] = fmt.Sprintf("%s(%d)", c.Role, c.Layer)
	}
	return strings.Join(parts, OrderSeparator)
}
