package parser

import "github.com/tuannm99/novarow/internal/record"

// Statement is the root interface for all statements.
type Statement interface {
	stmtNode()
}

// ----- INSERT -----
type InsertStmt struct {
	Row record.Row // already validated
}

func (*InsertStmt) stmtNode() {}

// ----- SELECT -----
// Always a full scan, there is no filter.
type SelectStmt struct{}

func (*SelectStmt) stmtNode() {}
