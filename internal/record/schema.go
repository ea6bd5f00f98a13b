package record

type ColumnType uint8

const (
	ColUint32 ColumnType = iota + 1
	ColFixedText         // zero terminated, fixed width
)

// Column describes where one field lives inside an encoded row.
type Column struct {
	Name   string
	Type   ColumnType
	Offset int
	Size   int
}

// MaxLen is the longest value the column accepts, one byte is kept for the terminator.
func (c Column) MaxLen() int {
	if c.Type == ColFixedText {
		return c.Size - 1
	}
	return c.Size
}

type Schema struct {
	Cols []Column
}

func (s Schema) Names() []string {
	names := make([]string, len(s.Cols))
	for i, c := range s.Cols {
		names[i] = c.Name
	}
	return names
}

// Width is the number of bytes a row occupies on a page.
func (s Schema) Width() int {
	w := 0
	for _, c := range s.Cols {
		if end := c.Offset + c.Size; end > w {
			w = end
		}
	}
	return w
}
