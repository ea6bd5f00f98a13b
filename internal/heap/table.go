package heap

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/tuannm99/novarow/internal/record"
	"github.com/tuannm99/novarow/internal/storage"
)

var (
	ErrTableFull   = errors.New("heap: table full")
	ErrTableClosed = errors.New("heap: table closed")
)

// Table is an append-only heap of fixed width rows: name, schema, page store and row count.
// Row i is always at storage.Locate(i, layout).
type Table struct {
	Name   string
	Schema record.Schema

	pages   *storage.PageStore
	numRows int
}

// DefaultLayout is 4 KiB pages, 100 pages, one users row per slot.
func DefaultLayout() storage.Layout {
	return storage.DefaultLayout(record.UsersSchema.Width())
}

// NewTable creates an empty table. l.RowSize must match the users schema.
func NewTable(name string, l storage.Layout) (*Table, error) {
	if w := record.UsersSchema.Width(); l.RowSize != w {
		return nil, fmt.Errorf("%w: row size %d, schema needs %d", storage.ErrInvalidLayout, l.RowSize, w)
	}
	ps, err := storage.NewPageStore(l)
	if err != nil {
		return nil, err
	}
	return &Table{
		Name:   name,
		Schema: record.UsersSchema,
		pages:  ps,
	}, nil
}

func (t *Table) NumRows() int { return t.numRows }

func (t *Table) Layout() storage.Layout { return t.pages.Layout() }

func (t *Table) AllocatedPages() int { return t.pages.AllocatedPages() }

func (t *Table) Closed() bool { return t.pages.Released() }

// Append encodes row at index NumRows. On error nothing is written.
func (t *Table) Append(row record.Row) error {
	if t.Closed() {
		return ErrTableClosed
	}
	if t.numRows >= t.pages.Layout().MaxRows() {
		return fmt.Errorf("%w: %d rows", ErrTableFull, t.numRows)
	}
	if err := row.Validate(); err != nil {
		return err
	}

	record.EncodeRow(row, t.pages.Slot(t.numRows))
	t.numRows++
	return nil
}

// Rows yields rows 0..NumRows-1 in insertion order, decoding lazily.
// The row count is taken when Rows is called; the sequence can be ranged over again.
func (t *Table) Rows() iter.Seq[record.Row] {
	n := t.numRows
	return func(yield func(record.Row) bool) {
		for i := 0; i < n; i++ {
			if t.Closed() {
				return
			}
			if !yield(record.DecodeRow(t.pages.Slot(i))) {
				return
			}
		}
	}
}

// Scan iterates through all rows in insertion order and stops at the first error from fn.
func (t *Table) Scan(fn func(idx int, row record.Row) error) error {
	if t.Closed() {
		return ErrTableClosed
	}
	idx := 0
	for row := range t.Rows() {
		if err := fn(idx, row); err != nil {
			return err
		}
		idx++
	}
	return nil
}

// Close releases every page. Calling it again is a no-op.
func (t *Table) Close() error {
	if t.Closed() {
		return nil
	}
	slog.Debug("heap: close table",
		"table", t.Name,
		"rows", t.numRows,
		"pages", t.pages.AllocatedPages(),
	)
	t.pages.Release()
	return nil
}
