package storage

import "fmt"

// Address is where one row index is encoded: page + byte offset inside that page.
type Address struct {
	PageIndex  int
	ByteOffset int
}

func (a Address) String() string {
	return fmt.Sprintf("page=%d off=%d", a.PageIndex, a.ByteOffset)
}

// Locate maps a row index to its address. Pure arithmetic, no page is touched.
func Locate(rowIndex int, l Layout) Address {
	perPage := l.RowsPerPage()
	return Address{
		PageIndex:  rowIndex / perPage,
		ByteOffset: (rowIndex % perPage) * l.RowSize,
	}
}
