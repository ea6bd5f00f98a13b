package record

import (
	"errors"
	"fmt"
	"strings"
)

const (
	IDSize       = 4
	UsernameSize = 33 // 32 usable + terminator
	EmailSize    = 256

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = IDSize + UsernameSize + EmailSize // 293
)

var (
	ErrStringTooLong = errors.New("record: string is too long")
	ErrNulByte       = errors.New("record: string contains a NUL byte")
	ErrSchemaValue   = errors.New("record: value does not match column type")
)

// UsersSchema is the only table layout: (id, username, email).
var UsersSchema = Schema{
	Cols: []Column{
		{Name: "id", Type: ColUint32, Offset: IDOffset, Size: IDSize},
		{Name: "username", Type: ColFixedText, Offset: UsernameOffset, Size: UsernameSize},
		{Name: "email", Type: ColFixedText, Offset: EmailOffset, Size: EmailSize},
	},
}

type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Validate checks every text field against its column: it must keep room for the
// terminator and must not contain one, or decoding would cut it short.
func (r Row) Validate() error {
	for i, v := range r.Values() {
		col := UsersSchema.Cols[i]
		if col.Type != ColFixedText {
			continue
		}
		s := v.(string)
		if len(s) > col.MaxLen() {
			return fmt.Errorf("%w: %s has %d bytes, max %d", ErrStringTooLong, col.Name, len(s), col.MaxLen())
		}
		if strings.IndexByte(s, 0) >= 0 {
			return fmt.Errorf("%w: %s", ErrNulByte, col.Name)
		}
	}
	return nil
}

// Values returns the fields in column order.
func (r Row) Values() []any {
	return []any{r.ID, r.Username, r.Email}
}

func rowFromValues(vals []any) Row {
	return Row{
		ID:       vals[0].(uint32),
		Username: vals[1].(string),
		Email:    vals[2].(string),
	}
}

func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}
