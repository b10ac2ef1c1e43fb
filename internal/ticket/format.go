package ticket

import "fmt"

// Format renders a ticket number as a public name identifier token,
// e.g. 42 -> "nm0000042". Tickets above seven digits widen naturally.
func Format(n int64) string {
	return fmt.Sprintf("%s%07d", Prefix, n)
}
