package executor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/novarow/internal/heap"
	"github.com/tuannm99/novarow/internal/record"
	"github.com/tuannm99/novarow/internal/sql/parser"
)

// ---- fakes ----

type fakeTable struct {
	appendErr error
	scanErr   error
	appended  []record.Row
}

func (f *fakeTable) Append(row record.Row) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, row)
	return nil
}

func (f *fakeTable) Scan(fn func(idx int, row record.Row) error) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	for i, r := range f.appended {
		if err := fn(i, r); err != nil {
			return err
		}
	}
	return nil
}

func mustParse(t *testing.T, line string) parser.Statement {
	t.Helper()
	stmt, err := parser.Parse(line)
	require.NoError(t, err)
	return stmt
}

func TestExecute_InsertThenSelect(t *testing.T) {
	tbl, err := heap.NewTable("users", heap.DefaultLayout())
	require.NoError(t, err)
	defer tbl.Close()

	e := New(tbl)

	res, err := e.Execute(mustParse(t, "insert 1 user1 person1@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.AffectedRows)
	assert.Empty(t, res.Columns)

	_, err = e.Execute(mustParse(t, "insert 2 user2 person2@example.com"))
	require.NoError(t, err)

	res, err = e.Execute(mustParse(t, "select"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "username", "email"}, res.Columns)
	assert.Equal(t, [][]any{
		{uint32(1), "user1", "person1@example.com"},
		{uint32(2), "user2", "person2@example.com"},
	}, res.Rows)
	assert.Equal(t, int64(2), res.AffectedRows)
}

func TestExecute_SelectEmpty(t *testing.T) {
	e := newExecutorForTest(&fakeTable{})

	res, err := e.Execute(&parser.SelectStmt{})
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Equal(t, int64(0), res.AffectedRows)
}

func TestExecute_InsertErrorPassesThrough(t *testing.T) {
	ft := &fakeTable{appendErr: heap.ErrTableFull}
	e := newExecutorForTest(ft)

	_, err := e.Execute(&parser.InsertStmt{Row: record.Row{ID: 1}})
	require.Error(t, err)
	require.True(t, errors.Is(err, heap.ErrTableFull))
	assert.Empty(t, ft.appended)
}

func TestExecute_NilStatement(t *testing.T) {
	_, err := newExecutorForTest(&fakeTable{}).Execute(nil)
	require.Error(t, err)
}

func TestExecute_TableFull(t *testing.T) {
	tbl, err := heap.NewTable("users", heap.DefaultLayout())
	require.NoError(t, err)
	defer tbl.Close()

	for i := 0; i < tbl.Layout().MaxRows(); i++ {
		require.NoError(t, tbl.Append(record.Row{ID: uint32(i), Username: "u", Email: "e"}))
	}

	_, err = New(tbl).Execute(mustParse(t, "insert 9999 late late@example.com"))
	require.ErrorIs(t, err, heap.ErrTableFull)
	assert.Equal(t, 1300, tbl.NumRows())
}

func TestExecute_SelectOnClosedTable(t *testing.T) {
	tbl, err := heap.NewTable("users", heap.DefaultLayout())
	require.NoError(t, err)
	require.NoError(t, tbl.Append(record.Row{ID: 1, Username: "u", Email: "e"}))
	require.NoError(t, tbl.Close())

	res, err := New(tbl).Execute(mustParse(t, "select"))
	require.ErrorIs(t, err, heap.ErrTableClosed)
	assert.Nil(t, res)
}

func TestExecute_SelectScanError(t *testing.T) {
	boom := errors.New("boom")
	_, err := newExecutorForTest(&fakeTable{scanErr: boom}).Execute(&parser.SelectStmt{})
	require.ErrorIs(t, err, boom)
}
