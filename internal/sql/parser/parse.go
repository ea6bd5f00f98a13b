package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tuannm99/novarow/internal/record"
)

var (
	ErrSyntax                = errors.New("parser: syntax error")
	ErrNegativeID            = errors.New("parser: id must be positive")
	ErrStringTooLong         = record.ErrStringTooLong
	ErrUnrecognizedStatement = errors.New("parser: unrecognized statement")
)

const (
	kwInsert = "insert"
	kwSelect = "select"
)

// Parse turns one input line into a validated statement. It never touches storage.
func Parse(line string) (Statement, error) {
	toks := strings.Fields(line)
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty statement", ErrUnrecognizedStatement)
	}

	switch strings.ToLower(toks[0]) {
	case kwInsert:
		return parseInsert(toks[1:])
	case kwSelect:
		return parseSelect(toks[1:])
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedStatement, toks[0])
	}
}

// insert <id> <username> <email>
func parseInsert(args []string) (Statement, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("%w: insert wants 3 values, got %d", ErrSyntax, len(args))
	}

	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}

	row := record.Row{
		ID:       id,
		Username: args[1],
		Email:    args[2],
	}
	if err := row.Validate(); err != nil {
		if errors.Is(err, record.ErrNulByte) {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		return nil, err
	}
	return &InsertStmt{Row: row}, nil
}

func parseID(s string) (uint32, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", ErrSyntax, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeID, v)
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: id %d out of range", ErrSyntax, v)
	}
	return uint32(v), nil
}

func parseSelect(args []string) (Statement, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: select takes no arguments", ErrSyntax)
	}
	return &SelectStmt{}, nil
}
