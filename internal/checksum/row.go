// Package checksum computes per-row checksums for bulk data export.
//
// The checksum is not an integrity check. It exists purely to decide batch
// boundaries: closing an INSERT statement on a pseudo-random subset of rows
// keeps statements from growing unbounded without a fixed-size cliff that
// would make every regeneration diff the same way.
package checksum

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// Row computes the checksum of one exported row from its key-column values
// in priority order. Callers coalesce NULL values to the empty string before
// hashing. The result is a pure function of the input sequence.
func Row(values []string) uint32 {
	h := sha256.New()
	for _, v := range values {
		h.Write([]byte(v))
		// Separator keeps ("ab","c") distinct from ("a","bc").
		h.Write([]byte{0x1f})
	}
	sum := h.Sum(nil)
	return binary.BigEndian.Uint32(sum[:4])
}

// IsBatchBoundary reports whether a row with this checksum closes its batch.
func IsBatchBoundary(sum uint32) bool {
	return sum%rsscripter.BatchChecksumModulus == rsscripter.BatchChecksumBoundary
}
