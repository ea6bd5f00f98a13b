package executor

import (
	"fmt"
	"log/slog"

	"github.com/tuannm99/novarow/internal/heap"
	"github.com/tuannm99/novarow/internal/record"
	"github.com/tuannm99/novarow/internal/sql/parser"
)

// rowTable is a small seam for unit-testing Executor without a real heap table.
type rowTable interface {
	Append(row record.Row) error
	Scan(fn func(idx int, row record.Row) error) error
}

// Executor runs validated statements against one table.
type Executor struct {
	table  rowTable
	schema record.Schema
}

func New(tbl *heap.Table) *Executor {
	return &Executor{table: tbl, schema: tbl.Schema}
}

func newExecutorForTest(tbl rowTable) *Executor {
	return &Executor{table: tbl, schema: record.UsersSchema}
}

func (e *Executor) Execute(stmt parser.Statement) (*Result, error) {
	switch s := stmt.(type) {
	case *parser.InsertStmt:
		return e.execInsert(s)
	case *parser.SelectStmt:
		return e.execSelect(s)
	default:
		return nil, fmt.Errorf("executor: unsupported statement %T", stmt)
	}
}

func (e *Executor) execInsert(s *parser.InsertStmt) (*Result, error) {
	if err := e.table.Append(s.Row); err != nil {
		slog.Debug("executor: insert refused", "id", s.Row.ID, "err", err)
		return nil, fmt.Errorf("insert: %w", err)
	}
	return &Result{AffectedRows: 1}, nil
}

func (e *Executor) execSelect(_ *parser.SelectStmt) (*Result, error) {
	res := &Result{Columns: e.schema.Names()}
	err := e.table.Scan(func(_ int, row record.Row) error {
		res.Rows = append(res.Rows, row.Values())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	res.AffectedRows = int64(len(res.Rows))
	return res, nil
}
