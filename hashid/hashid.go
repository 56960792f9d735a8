// Package hashid mints the short identifiers used in PPOD entity IRIs.
//
// Free-text labels in the workbook ("Yuba County Resource Conservation
// District") are far too long to abbreviate by hand, so every entity and
// vocabulary term gets a fixed-width digest suffix instead. Cross-sheet
// references resolve purely by hashing the same label text to the same
// identifier, so MakeID must stay bit-for-bit stable across runs and
// platforms.
package hashid

import (
	"fmt"
	"hash/crc32"
)

// MakeID returns a 24-bit digest of s as 6 lowercase hex characters.
//
// The digest is the IEEE CRC-32 of the UTF-8 bytes truncated to its low
// 24 bits and zero-padded. 24 bits is plenty for a workbook of a few
// thousand names; identical labels colliding onto the same identifier is
// the mechanism that ties references together, not a defect.
func MakeID(s string) string {
	return fmt.Sprintf("%06x", crc32.ChecksumIEEE([]byte(s))&0xFFFFFF)
}
