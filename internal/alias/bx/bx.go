// stand for bytes helper
package bx

import (
	"bytes"
	"encoding/binary"
)

var LE = binary.LittleEndian

// --- LE: read / write ---
func U32(b []byte) uint32       { return LE.Uint32(b) }
func PutU32(b []byte, v uint32) { LE.PutUint32(b, v) }

// --- LE: At (offset) ---
func U32At(b []byte, off int) uint32       { return U32(b[off:]) }
func PutU32At(b []byte, off int, v uint32) { PutU32(b[off:], v) }

// --- fixed width, zero terminated ---

// PutFixedAt copies s into b[off:off+width] and zero fills the rest of the field.
// s longer than width is cut at width.
func PutFixedAt(b []byte, off, width int, s string) {
	field := b[off : off+width]
	n := copy(field, s)
	clear(field[n:])
}

// FixedAt reads the field b[off:off+width] up to its first zero byte.
func FixedAt(b []byte, off, width int) string {
	field := b[off : off+width]
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}
