package executor

// Result is what one statement produced.
// select fills Columns and Rows (one []any per row, in column order) and sets
// AffectedRows to the row count; insert only sets AffectedRows to 1.
type Result struct {
	Columns []string
	Rows    [][]any

	AffectedRows int64
}
