// Package utils contains small transport-layer helpers shared by handlers.
package utils

import "strconv"

// AtoiDefault parses s as a base-10 integer, returning def when s is empty
// or not a valid number. Used for optional numeric query parameters.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
