package storage

import (
	"errors"
	"fmt"
)

const (
	OneKB = 1 << 10 // 1,024

	PageSize      = 4 * OneKB // 4,096 (4 KiB)
	TableMaxPages = 100
)

var (
	ErrInvalidLayout = errors.New("storage: invalid layout")
	ErrStoreReleased = errors.New("storage: page store released")
)

// Layout fixes how rows are packed into pages. Rows never span two pages,
// the tail of every page that cannot hold a whole row stays unused.
type Layout struct {
	PageSize int
	MaxPages int
	RowSize  int
}

func DefaultLayout(rowSize int) Layout {
	return Layout{PageSize: PageSize, MaxPages: TableMaxPages, RowSize: rowSize}
}

func (l Layout) RowsPerPage() int {
	if l.RowSize <= 0 {
		return 0
	}
	return l.PageSize / l.RowSize
}

func (l Layout) MaxRows() int { return l.RowsPerPage() * l.MaxPages }

func (l Layout) Validate() error {
	switch {
	case l.RowSize <= 0:
		return fmt.Errorf("%w: row size %d", ErrInvalidLayout, l.RowSize)
	case l.MaxPages <= 0:
		return fmt.Errorf("%w: max pages %d", ErrInvalidLayout, l.MaxPages)
	case l.RowsPerPage() == 0:
		return fmt.Errorf("%w: page size %d cannot hold a %d byte row", ErrInvalidLayout, l.PageSize, l.RowSize)
	}
	return nil
}
