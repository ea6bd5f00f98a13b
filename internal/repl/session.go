package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tuannm99/novarow/internal/heap"
	"github.com/tuannm99/novarow/internal/record"
	"github.com/tuannm99/novarow/internal/sql/executor"
	"github.com/tuannm99/novarow/internal/sql/parser"
)

const helpText = `meta commands:
  .exit        quit
  .constants   print storage layout
  .help        show help

statements:
  insert <id> <username> <email>
  select`

// Session is one interpreter run over a single table. It owns the table and closes it once.
type Session struct {
	tbl    *heap.Table
	exec   *executor.Executor
	out    io.Writer
	styles Styles
}

func NewSession(tbl *heap.Table, out io.Writer, styles Styles) *Session {
	return &Session{
		tbl:    tbl,
		exec:   executor.New(tbl),
		out:    out,
		styles: styles,
	}
}

// Handle runs one trimmed input line. done is true once the session should stop.
func (s *Session) Handle(line string) (done bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ".") {
		return s.doMeta(line)
	}

	stmt, err := parser.Parse(line)
	if err != nil {
		s.printError(prepareMessage(line, err))
		return false
	}

	res, err := s.exec.Execute(stmt)
	if err != nil {
		s.printError(executeMessage(err))
		return false
	}

	for _, row := range res.Rows {
		s.println(s.styles.Row.Render(formatRow(row)))
	}
	s.println("Executed.")
	return false
}

// Close tears the table down. Safe to call more than once.
func (s *Session) Close() error {
	return s.tbl.Close()
}

func (s *Session) doMeta(line string) bool {
	switch line {
	case ".exit":
		if err := s.Close(); err != nil {
			slog.Warn("repl: close table", "err", err)
		}
		return true
	case ".help":
		s.printInfo(strings.Split(helpText, "\n")...)
	case ".constants":
		s.printConstants()
	default:
		s.printError(fmt.Sprintf("Unrecognized command '%s'.", line))
	}
	return false
}

func (s *Session) printConstants() {
	l := s.tbl.Layout()
	lines := []string{
		"Constants:",
		fmt.Sprintf("ROW_SIZE: %d", l.RowSize),
		fmt.Sprintf("PAGE_SIZE: %d", l.PageSize),
		fmt.Sprintf("ROWS_PER_PAGE: %d", l.RowsPerPage()),
		fmt.Sprintf("TABLE_MAX_PAGES: %d", l.MaxPages),
		fmt.Sprintf("TABLE_MAX_ROWS: %d", l.MaxRows()),
		fmt.Sprintf("ROWS: %d", s.tbl.NumRows()),
		fmt.Sprintf("PAGES_ALLOCATED: %d", s.tbl.AllocatedPages()),
	}
	s.printInfo(lines...)
}

func prepareMessage(line string, err error) string {
	switch {
	case errors.Is(err, parser.ErrNegativeID):
		return "ID must be positive."
	case errors.Is(err, record.ErrStringTooLong):
		return "String is too long."
	case errors.Is(err, parser.ErrSyntax):
		return "Syntax error. Could not parse statement."
	case errors.Is(err, parser.ErrUnrecognizedStatement):
		return fmt.Sprintf("Unrecognized keyword at start of '%s'.", line)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func executeMessage(err error) string {
	switch {
	case errors.Is(err, heap.ErrTableFull):
		return "Error: Table full."
	case errors.Is(err, heap.ErrTableClosed):
		return "Error: Table closed."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func formatRow(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (s *Session) printError(msg string) {
	s.println(s.styles.Error.Render(msg))
}

// printInfo styles line by line, a multi-line Render would pad every line to the widest one.
func (s *Session) printInfo(lines ...string) {
	for _, l := range lines {
		s.println(s.styles.Info.Render(l))
	}
}

func (s *Session) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}
