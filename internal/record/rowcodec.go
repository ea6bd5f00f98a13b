package record

import (
	"fmt"

	"github.com/tuannm99/novarow/internal/alias/bx"
)

// ---- EncodeRow(row, dst) ----
// Format (RowSize bytes, no header), one field per UsersSchema column:
// [id: u32 LE @0] [username: 33 bytes @4] [email: 256 bytes @37]
// Text fields are zero padded to their width.
// dst must hold at least RowSize bytes.
func EncodeRow(r Row, dst []byte) {
	encodeValues(UsersSchema, r.Values(), dst)
}

// ---- DecodeRow(src) -> Row ----
func DecodeRow(src []byte) Row {
	return rowFromValues(decodeValues(UsersSchema, src))
}

func encodeValues(s Schema, values []any, dst []byte) {
	for i, col := range s.Cols {
		switch col.Type {
		case ColUint32:
			bx.PutU32At(dst, col.Offset, values[i].(uint32))
		case ColFixedText:
			bx.PutFixedAt(dst, col.Offset, col.Size, values[i].(string))
		default:
			panic(fmt.Errorf("%w: column %s type %d", ErrSchemaValue, col.Name, col.Type))
		}
	}
}

func decodeValues(s Schema, src []byte) []any {
	out := make([]any, len(s.Cols))
	for i, col := range s.Cols {
		switch col.Type {
		case ColUint32:
			out[i] = bx.U32At(src, col.Offset)
		case ColFixedText:
			out[i] = bx.FixedAt(src, col.Offset, col.Size)
		default:
			panic(fmt.Errorf("%w: column %s type %d", ErrSchemaValue, col.Name, col.Type))
		}
	}
	return out
}
