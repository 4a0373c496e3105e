// Package strutil provides small string helpers shared across the harness.
package strutil

import (
	"encoding/hex"
)

// EncodeHex encodes in as lowercase hexadecimal, two characters per byte,
// with no separators.
func EncodeHex(in []byte) string {
	return hex.EncodeToString(in)
}
